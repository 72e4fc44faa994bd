package organization

import "time"

// Settings is the per-organization attendance policy, stored as JSONB.
type Settings struct {
	GeolocationRequired bool `json:"geolocation_required"`
	GeolocationRadius   int  `json:"geolocation_radius"`
	AutoCloseDay        bool `json:"auto_close_day"`
}

// DefaultSettings returns the settings assigned to a newly created organization.
func DefaultSettings() Settings {
	return Settings{
		GeolocationRequired: false,
		GeolocationRadius:   100,
		AutoCloseDay:        false,
	}
}

type Organization struct {
	ID        string
	UserID    string
	Name      string
	BIN       string
	Address   string
	Slug      string
	Settings  Settings
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the given account owns this organization.
// Every tenant-scoped mutation checks this before acting.
func (o *Organization) IsOwnedBy(userID string) bool {
	return o.UserID == userID
}
