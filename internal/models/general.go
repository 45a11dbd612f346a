package models

import "encoding/json"

// ErrorResponse defines API error response format
type ErrorResponse struct {
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// AdmissionResponse is the envelope every admission endpoint answers with.
type AdmissionResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
