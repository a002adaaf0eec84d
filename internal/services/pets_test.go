package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"petshop/internal/models"
	"petshop/internal/services"
)

func newPetService(t *testing.T) (*services.PetService, *services.MockPetReader, *services.MockPetWriter, *services.MockImageFetcher, *services.MockKafkaWriter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := services.NewMockPetReader(ctrl)
	mockWriter := services.NewMockPetWriter(ctrl)
	mockImages := services.NewMockImageFetcher(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewPetService(mockReader, mockWriter, mockImages, mockKafka)
	return svc, mockReader, mockWriter, mockImages, mockKafka
}

func validFields() models.NewPetFields {
	return models.NewPetFields{
		Name:        "Buddy",
		Age:         3,
		Breed:       "Golden Retriever",
		Weight:      30,
		KidFriendly: true,
		Price:       500,
	}
}

func TestPetService_AddPet(t *testing.T) {
	t.Run("success with image", func(t *testing.T) {
		svc, _, mockWriter, mockImages, mockKafka := newPetService(t)

		mockImages.EXPECT().
			FetchRandomImage(gomock.Any(), "Golden Retriever").
			Return("https://images.dog.ceo/1.jpg", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pet models.PetDB) (int64, error) {
				assert.Equal(t, "Buddy", pet.Name)
				assert.Equal(t, models.SizeMedium, pet.Size)
				assert.Equal(t, "https://images.dog.ceo/1.jpg", pet.Image)
				return 42, nil
			})
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		petID, err := svc.AddPet(context.Background(), validFields(), "testuser")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), petID)
	})

	t.Run("image lookup failure does not block creation", func(t *testing.T) {
		svc, _, mockWriter, mockImages, mockKafka := newPetService(t)

		mockImages.EXPECT().
			FetchRandomImage(gomock.Any(), "Golden Retriever").
			Return("", errors.New("dog api down"))
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pet models.PetDB) (int64, error) {
				assert.Empty(t, pet.Image)
				return 43, nil
			})
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		petID, err := svc.AddPet(context.Background(), validFields(), "testuser")
		assert.NoError(t, err)
		assert.Equal(t, int64(43), petID)
	})

	t.Run("kafka failure does not fail the request", func(t *testing.T) {
		svc, _, mockWriter, mockImages, mockKafka := newPetService(t)

		mockImages.EXPECT().
			FetchRandomImage(gomock.Any(), gomock.Any()).
			Return("", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(int64(44), nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unavailable"))

		petID, err := svc.AddPet(context.Background(), validFields(), "testuser")
		assert.NoError(t, err)
		assert.Equal(t, int64(44), petID)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc, _, _, _, _ := newPetService(t)

		tests := []struct {
			name   string
			mutate func(*models.NewPetFields)
		}{
			{"empty name", func(f *models.NewPetFields) { f.Name = "  " }},
			{"zero age", func(f *models.NewPetFields) { f.Age = 0 }},
			{"negative age", func(f *models.NewPetFields) { f.Age = -1 }},
			{"empty breed", func(f *models.NewPetFields) { f.Breed = "" }},
			{"zero weight", func(f *models.NewPetFields) { f.Weight = 0 }},
			{"negative price", func(f *models.NewPetFields) { f.Price = -1 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				fields := validFields()
				tt.mutate(&fields)

				_, err := svc.AddPet(context.Background(), fields, "testuser")
				assert.ErrorIs(t, err, services.ErrValidation)
			})
		}
	})

	t.Run("writer error", func(t *testing.T) {
		svc, _, mockWriter, mockImages, _ := newPetService(t)

		mockImages.EXPECT().
			FetchRandomImage(gomock.Any(), gomock.Any()).
			Return("", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("db error"))

		_, err := svc.AddPet(context.Background(), validFields(), "testuser")
		assert.Error(t, err)
	})
}

func TestPetService_ListPets(t *testing.T) {
	svc, mockReader, _, _, _ := newPetService(t)

	pets := []models.PetDB{
		{PetID: 1, Name: "Buddy"},
		{PetID: 2, Name: "Rex"},
	}
	mockReader.EXPECT().List(gomock.Any()).Return(pets, nil)

	got, err := svc.ListPets(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, pets, got)
}

func TestPetService_GetPet(t *testing.T) {
	svc, mockReader, _, _, _ := newPetService(t)

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(1)).
			Return(&models.PetDB{PetID: 1, Name: "Buddy"}, nil)

		pet, err := svc.GetPet(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Buddy", pet.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			GetByID(gomock.Any(), int64(999)).
			Return(nil, nil)

		_, err := svc.GetPet(context.Background(), 999)
		assert.ErrorIs(t, err, services.ErrPetNotFound)
	})
}

func TestPetService_UpdatePrice(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, mockWriter, _, mockKafka := newPetService(t)

		mockWriter.EXPECT().
			UpdatePrice(gomock.Any(), int64(1), 550.0).
			Return(true, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.UpdatePrice(context.Background(), 1, 550, "testuser")
		assert.NoError(t, err)
	})

	t.Run("negative price rejected without touching the store", func(t *testing.T) {
		svc, _, _, _, _ := newPetService(t)

		err := svc.UpdatePrice(context.Background(), 1, -5, "testuser")
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("zero price allowed", func(t *testing.T) {
		svc, _, mockWriter, _, mockKafka := newPetService(t)

		mockWriter.EXPECT().
			UpdatePrice(gomock.Any(), int64(1), 0.0).
			Return(true, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.UpdatePrice(context.Background(), 1, 0, "testuser")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, mockWriter, _, _ := newPetService(t)

		mockWriter.EXPECT().
			UpdatePrice(gomock.Any(), int64(999), 550.0).
			Return(false, nil)

		err := svc.UpdatePrice(context.Background(), 999, 550, "testuser")
		assert.ErrorIs(t, err, services.ErrPetNotFound)
	})
}

func TestPetService_DeletePet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, _, mockWriter, _, mockKafka := newPetService(t)

		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(1)).
			Return(true, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.DeletePet(context.Background(), 1, "testuser")
		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, mockWriter, _, _ := newPetService(t)

		mockWriter.EXPECT().
			Delete(gomock.Any(), int64(999)).
			Return(false, nil)

		err := svc.DeletePet(context.Background(), 999, "testuser")
		assert.ErrorIs(t, err, services.ErrPetNotFound)
	})
}
