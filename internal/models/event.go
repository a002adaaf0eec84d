package models

// Inventory event operation types published to Kafka.
const (
	OpPetAdded        = "added"
	OpPetPriceUpdated = "price_updated"
	OpPetDeleted      = "deleted"
)

// InventoryEvent represents a change to the pet inventory, published to Kafka.
type InventoryEvent struct {
	EventID   string  `json:"event_id"`        // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"`       // Timestamp is the Unix timestamp (in seconds) when the change occurred.
	PetID     int64   `json:"pet_id"`          // PetID is the identifier of the affected pet.
	Operation string  `json:"operation"`       // Operation is one of "added", "price_updated", "deleted".
	Actor     string  `json:"actor"`           // Actor is the username that made the change.
	Price     float64 `json:"price,omitempty"` // Price is the pet price after the change, where relevant.
}
