package employee

import "time"

type Status string

const (
	StatusPending  Status = "pending"  // Registered via QR, awaiting approval
	StatusActive   Status = "active"   // Approved, can check in and out
	StatusInactive Status = "inactive" // Deactivated by the owner
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive:
		return true
	}
	return false
}

// Employee belongs to exactly one organization. UserID links the employee
// to an account of their own and stays empty for QR registrations.
type Employee struct {
	ID             string
	OrganizationID string
	UserID         *string
	FullName       string
	Position       *string
	Phone          *string
	Email          *string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanCheck reports whether the employee may produce check logs.
func (e *Employee) CanCheck() bool {
	return e.Status == StatusActive
}
