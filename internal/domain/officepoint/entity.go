package officepoint

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
)

// MainOfficeName is the name given to the office point created together
// with its organization.
const MainOfficeName = "Главный офис"

type OfficePoint struct {
	ID             string
	OrganizationID string
	Name           string
	Address        *string
	QRToken        string
	IsMain         bool
	IsActive       bool
	Location       *geo.Point
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
