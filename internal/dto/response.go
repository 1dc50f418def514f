package dto

// Response is the envelope for every API reply: a human-readable message,
// a data payload, or both.
type Response struct {
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
