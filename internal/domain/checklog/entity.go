package checklog

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
)

type CheckType string

const (
	CheckTypeIn  CheckType = "check_in"
	CheckTypeOut CheckType = "check_out"
)

func (t CheckType) IsValid() bool {
	return t == CheckTypeIn || t == CheckTypeOut
}

// CheckLog is an append-only attendance record. Logs are never updated
// or deleted. CheckedAt is the attendance instant; CreatedAt is when the
// row was written, and the two differ for backdated entries such as the
// auto-close job's closing check_out.
type CheckLog struct {
	ID            string
	EmployeeID    string
	OfficePointID string
	CheckType     CheckType
	CheckedAt     time.Time
	CreatedAt     time.Time
	GeoLocation   *geo.Point
	DeviceInfo    *string

	// Join
	EmployeeName    string
	OfficePointName string
}
