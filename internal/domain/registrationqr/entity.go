package registrationqr

import "time"

type RegistrationQR struct {
	ID             string
	OrganizationID string
	Token          string
	ExpiresAt      time.Time
	IsActive       bool
	CreatedAt      time.Time
}

// IsValid reports whether the QR can still be used for registration.
// Deactivation is one way, and expiry is computed at read time rather
// than flipped by a background job.
func (q *RegistrationQR) IsValid() bool {
	return q.IsActive && time.Now().Before(q.ExpiresAt)
}
