package models

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StatusResponse is the uniform response envelope:
// {"status":"success","message":"..."} or {"status":"error","message":"..."}
// swagger:model StatusResponse
type StatusResponse struct {
	// Status is "success" or "error"
	// example: success
	Status string `json:"status"`

	// Message is a human-readable description
	// example: Service is running
	Message string `json:"message"`
}

// Success builds a success envelope.
func Success(message string) StatusResponse {
	return StatusResponse{Status: StatusSuccess, Message: message}
}

// Error builds an error envelope.
func Error(message string) StatusResponse {
	return StatusResponse{Status: StatusError, Message: message}
}
