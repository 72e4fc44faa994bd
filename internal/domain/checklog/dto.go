package checklog

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type CheckLogResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	EmployeeName    string     `json:"employee_name"`
	OfficePointID   string     `json:"office_point_id"`
	OfficePointName string     `json:"office_point_name"`
	CheckType       CheckType  `json:"check_type"`
	CheckedAt       time.Time  `json:"checked_at"`
	CreatedAt       time.Time  `json:"created_at"`
	GeoLocation     *geo.Point `json:"geo_location,omitempty"`
	DeviceInfo      *string    `json:"device_info,omitempty"`
}

func ToResponse(log CheckLog) CheckLogResponse {
	return CheckLogResponse{
		ID:              log.ID,
		EmployeeID:      log.EmployeeID,
		EmployeeName:    log.EmployeeName,
		OfficePointID:   log.OfficePointID,
		OfficePointName: log.OfficePointName,
		CheckType:       log.CheckType,
		CheckedAt:       log.CheckedAt,
		CreatedAt:       log.CreatedAt,
		GeoLocation:     log.GeoLocation,
		DeviceInfo:      log.DeviceInfo,
	}
}

func ToResponses(logs []CheckLog) []CheckLogResponse {
	responses := make([]CheckLogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, ToResponse(log))
	}
	return responses
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type ListFilter struct {
	Date          *string
	EmployeeID    *string
	OfficePointID *string
	CheckType     *CheckType
	Limit         int
	Offset        int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.CheckType != nil && !f.CheckType.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "check_type",
			Message: "check_type must be either check_in or check_out",
		})
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not be negative",
		})
	}
	if f.Offset < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "offset",
			Message: "offset must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Normalize applies the default page size and the hard cap.
func (f *ListFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit > maxListLimit {
		f.Limit = maxListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// DateRange converts a YYYY-MM-DD date filter into the half-open UTC
// interval [00:00:00, next day).
func DateRange(date string) (from, to time.Time, err error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	from = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, 1)
	return from, to, nil
}

type ListCheckLogsResponse struct {
	Logs  []CheckLogResponse `json:"logs"`
	Total int                `json:"total"`
}

type TodayStatsResponse struct {
	TotalCheckIns   int `json:"total_check_ins"`
	TotalCheckOuts  int `json:"total_check_outs"`
	UniqueEmployees int `json:"unique_employees"`
}
