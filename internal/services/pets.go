package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"petshop/internal/logger"
	"petshop/internal/models"
)

var (
	// ErrPetNotFound is returned when no pet exists with the requested ID.
	ErrPetNotFound = errors.New("pet not found")

	// ErrValidation marks invalid input fields. The wrapped message names
	// the offending field.
	ErrValidation = errors.New("validation failed")
)

// PetReader defines read-only operations for pets.
type PetReader interface {
	List(ctx context.Context) ([]models.PetDB, error)
	GetByID(ctx context.Context, petID int64) (*models.PetDB, error)
}

// PetWriter defines write operations for pets.
type PetWriter interface {
	Save(ctx context.Context, pet models.PetDB) (int64, error)
	UpdatePrice(ctx context.Context, petID int64, newPrice float64) (bool, error)
	Delete(ctx context.Context, petID int64) (bool, error)
}

// ImageFetcher fetches a representative photo URL for a breed.
type ImageFetcher interface {
	FetchRandomImage(ctx context.Context, breed string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PetService handles pet inventory operations and Kafka event publishing.
type PetService struct {
	reader      PetReader
	writer      PetWriter
	images      ImageFetcher
	kafkaWriter KafkaWriter
}

// NewPetService creates a new PetService.
func NewPetService(reader PetReader, writer PetWriter, images ImageFetcher, kafkaWriter KafkaWriter) *PetService {
	return &PetService{
		reader:      reader,
		writer:      writer,
		images:      images,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes an inventory change event to Kafka. Publishing is
// best-effort and never fails the originating request.
func (s *PetService) publishEvent(ctx context.Context, event models.InventoryEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal inventory event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish inventory event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Inventory event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}

func validatePetFields(fields models.NewPetFields) error {
	if strings.TrimSpace(fields.Name) == "" {
		return fmt.Errorf("%w: name must be a non-empty string", ErrValidation)
	}
	if fields.Age <= 0 {
		return fmt.Errorf("%w: age must be a positive integer", ErrValidation)
	}
	if strings.TrimSpace(fields.Breed) == "" {
		return fmt.Errorf("%w: breed must be a non-empty string", ErrValidation)
	}
	if fields.Weight <= 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrValidation)
	}
	if fields.Price < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}
	return nil
}

// AddPet validates the fields, derives the size classification, fetches a
// representative photo (best-effort), and persists the pet. Returns the
// new pet ID.
func (s *PetService) AddPet(ctx context.Context, fields models.NewPetFields, actor string) (int64, error) {
	if err := validatePetFields(fields); err != nil {
		return 0, err
	}

	image, err := s.images.FetchRandomImage(ctx, fields.Breed)
	if err != nil {
		// A missing photo never blocks pet creation.
		logger.Log.Warnw("image lookup failed, storing pet without image", "breed", fields.Breed, "error", err)
		image = ""
	}

	pet := models.PetDB{
		Name:        fields.Name,
		Age:         fields.Age,
		Breed:       fields.Breed,
		Weight:      fields.Weight,
		KidFriendly: fields.KidFriendly,
		Price:       fields.Price,
		Size:        models.SizeForWeight(fields.Weight),
		Image:       image,
	}

	petID, err := s.writer.Save(ctx, pet)
	if err != nil {
		logger.Log.Errorw("failed to save pet", "name", fields.Name, "error", err)
		return 0, err
	}

	s.publishEvent(ctx, models.InventoryEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		PetID:     petID,
		Operation: models.OpPetAdded,
		Actor:     actor,
		Price:     fields.Price,
	})

	return petID, nil
}

// ListPets returns all pets ordered by ID ascending.
func (s *PetService) ListPets(ctx context.Context) ([]models.PetDB, error) {
	pets, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pets", "error", err)
		return nil, err
	}
	return pets, nil
}

// GetPet returns the pet with the given ID.
func (s *PetService) GetPet(ctx context.Context, petID int64) (*models.PetDB, error) {
	pet, err := s.reader.GetByID(ctx, petID)
	if err != nil {
		logger.Log.Errorw("failed to get pet", "pet_id", petID, "error", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	return pet, nil
}

// UpdatePrice sets a new non-negative price for the pet.
func (s *PetService) UpdatePrice(ctx context.Context, petID int64, newPrice float64, actor string) error {
	if newPrice < 0 {
		return fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}

	ok, err := s.writer.UpdatePrice(ctx, petID, newPrice)
	if err != nil {
		logger.Log.Errorw("failed to update pet price", "pet_id", petID, "error", err)
		return err
	}
	if !ok {
		return ErrPetNotFound
	}

	s.publishEvent(ctx, models.InventoryEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		PetID:     petID,
		Operation: models.OpPetPriceUpdated,
		Actor:     actor,
		Price:     newPrice,
	})

	return nil
}

// DeletePet removes the pet. Its ID is never reassigned.
func (s *PetService) DeletePet(ctx context.Context, petID int64, actor string) error {
	ok, err := s.writer.Delete(ctx, petID)
	if err != nil {
		logger.Log.Errorw("failed to delete pet", "pet_id", petID, "error", err)
		return err
	}
	if !ok {
		return ErrPetNotFound
	}

	s.publishEvent(ctx, models.InventoryEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		PetID:     petID,
		Operation: models.OpPetDeleted,
		Actor:     actor,
	})

	return nil
}
