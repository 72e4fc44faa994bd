// Package qr defines the JSON payloads embedded in generated QR codes.
// These shapes are the wire contract for scanning clients and must not
// change field names or the type discriminants.
package qr

import (
	"encoding/json"
	"time"
)

const (
	TypeOfficeCheck          = "office_check"
	TypeEmployeeRegistration = "employee_registration"
)

// OfficeCheckPayload is rendered into the QR code posted at an office point.
type OfficeCheckPayload struct {
	Type         string  `json:"type"`
	Token        string  `json:"token"`
	OfficeName   string  `json:"office_name"`
	Address      *string `json:"address"`
	Organization string  `json:"organization"`
}

// EmployeeRegistrationPayload is rendered into a time-limited registration QR.
type EmployeeRegistrationPayload struct {
	Type         string `json:"type"`
	Token        string `json:"token"`
	Organization string `json:"organization"`
	ExpiresAt    string `json:"expires_at"`
}

func NewOfficeCheckPayload(token, officeName string, address *string, organization string) OfficeCheckPayload {
	return OfficeCheckPayload{
		Type:         TypeOfficeCheck,
		Token:        token,
		OfficeName:   officeName,
		Address:      address,
		Organization: organization,
	}
}

func NewEmployeeRegistrationPayload(token, organization string, expiresAt time.Time) EmployeeRegistrationPayload {
	return EmployeeRegistrationPayload{
		Type:         TypeEmployeeRegistration,
		Token:        token,
		Organization: organization,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
	}
}

// Encode returns the JSON string embedded in the QR image.
func (p OfficeCheckPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}

func (p EmployeeRegistrationPayload) Encode() (string, error) {
	b, err := json.Marshal(p)
	return string(b), err
}
