package models

import "time"

// Pet size classifications derived from weight.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Weight thresholds (pounds) for the size classification.
// Below 20 is small, 20 up to 55 is medium, 55 and above is large.
const (
	mediumWeightThreshold = 20.0
	largeWeightThreshold  = 55.0
)

// SizeForWeight returns the size classification for a given weight.
func SizeForWeight(weight float64) string {
	switch {
	case weight >= largeWeightThreshold:
		return SizeLarge
	case weight >= mediumWeightThreshold:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// PetDB represents a pet record in the database
type PetDB struct {
	PetID       int64     `json:"id" db:"pet_id"`                   // Primary key, never reused after deletion
	Name        string    `json:"name" db:"name"`                   // Pet name
	Age         int       `json:"age" db:"age"`                     // Age in years
	Breed       string    `json:"breed" db:"breed"`                 // Dog breed, also the image lookup key
	Weight      float64   `json:"weight" db:"weight"`               // Weight in pounds
	KidFriendly bool      `json:"kid_friendly" db:"kid_friendly"`   // Whether the pet is kid friendly
	Price       float64   `json:"price" db:"price"`                 // Sale price
	Size        string    `json:"size" db:"size"`                   // Derived from weight, see SizeForWeight
	Image       string    `json:"image" db:"image"`                 // Representative photo URL, empty if lookup failed
	CreatedAt   time.Time `json:"created_at,omitempty" db:"created_at"` // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at,omitempty" db:"updated_at"` // Last update timestamp
}

// NewPetFields carries the validated input fields for creating a pet.
type NewPetFields struct {
	Name        string  `json:"name"`
	Age         int     `json:"age"`
	Breed       string  `json:"breed"`
	Weight      float64 `json:"weight"`
	KidFriendly bool    `json:"kid_friendly"`
	Price       float64 `json:"price"`
}
