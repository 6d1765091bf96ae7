package model

import "github.com/google/uuid"

// Contractor is the subset of the contractor directory entry used for invoicing.
type Contractor struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	Region         string    `json:"region,omitempty"`
	RegistrationID string    `json:"registration_id,omitempty"`
}
