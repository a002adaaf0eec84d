package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"petshop/internal/logger"
	"petshop/internal/models"
)

// PetReadRepository reads pet records from Postgres.
type PetReadRepository struct {
	db *sqlx.DB
}

func NewPetReadRepository(db *sqlx.DB) *PetReadRepository {
	return &PetReadRepository{db: db}
}

// List returns all pets ordered by primary key ascending, which matches
// insertion order since pet_id is a sequence.
func (r *PetReadRepository) List(ctx context.Context) ([]models.PetDB, error) {
	const query = `
		SELECT pet_id, name, age, breed, weight, kid_friendly, price, size, image, created_at, updated_at
		FROM pets
		ORDER BY pet_id ASC
	`

	pets := []models.PetDB{}
	err := r.db.SelectContext(ctx, &pets, query)

	logger.Log.Infow("pet list",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(pets),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return pets, nil
}

// GetByID returns the pet with the given ID, or nil if no such pet exists.
func (r *PetReadRepository) GetByID(ctx context.Context, petID int64) (*models.PetDB, error) {
	const query = `
		SELECT pet_id, name, age, breed, weight, kid_friendly, price, size, image, created_at, updated_at
		FROM pets
		WHERE pet_id = $1
		LIMIT 1
	`

	var pet models.PetDB
	err := r.db.GetContext(ctx, &pet, query, petID)

	logger.Log.Infow("pet read",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{petID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// PetWriteRepository writes pet records to Postgres. When a transaction is
// present in the request context it is used instead of the pool.
type PetWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPetWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PetWriteRepository {
	return &PetWriteRepository{db: db, txGetter: txGetter}
}

func (r *PetWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new pet record and returns its generated ID.
func (r *PetWriteRepository) Save(ctx context.Context, pet models.PetDB) (int64, error) {
	query := `
		INSERT INTO pets (name, age, breed, weight, kid_friendly, price, size, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING pet_id
	`
	args := []any{pet.Name, pet.Age, pet.Breed, pet.Weight, pet.KidFriendly, pet.Price, pet.Size, pet.Image}

	var petID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &petID, query, args...)

	logger.Log.Infow("pet save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", petID,
		"error", err,
	)

	return petID, err
}

// UpdatePrice sets a new price for the pet. Returns false if the pet does
// not exist.
func (r *PetWriteRepository) UpdatePrice(ctx context.Context, petID int64, newPrice float64) (bool, error) {
	query := `
		UPDATE pets
		SET price = $2, updated_at = NOW()
		WHERE pet_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, petID, newPrice)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("pet update price",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{petID, newPrice},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// Delete removes the pet record. Returns false if the pet does not exist.
// The pet_id sequence is never rewound, so deleted IDs are not reused.
func (r *PetWriteRepository) Delete(ctx context.Context, petID int64) (bool, error) {
	query := `
		DELETE FROM pets
		WHERE pet_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, petID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("pet delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{petID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
