package scan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/registrationqr"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/scan"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
	"github.com/jackc/pgx/v5"
)

type ScanServiceImpl struct {
	officepoint.OfficePointRepository
	organization.OrganizationRepository
	employee.EmployeeRepository
	registrationqr.RegistrationQRRepository
	checkLogService checklog.CheckLogService
}

func NewScanService(
	officePointRepository officepoint.OfficePointRepository,
	organizationRepository organization.OrganizationRepository,
	employeeRepository employee.EmployeeRepository,
	registrationQRRepository registrationqr.RegistrationQRRepository,
	checkLogService checklog.CheckLogService,
) scan.ScanService {
	return &ScanServiceImpl{
		OfficePointRepository:    officePointRepository,
		OrganizationRepository:   organizationRepository,
		EmployeeRepository:       employeeRepository,
		RegistrationQRRepository: registrationQRRepository,
		checkLogService:          checkLogService,
	}
}

// Check implements scan.ScanService. Possession of a live office QR token
// is the only credential; everything else is cross-checked server side.
func (s *ScanServiceImpl) Check(ctx context.Context, req scan.CheckRequest) (scan.CheckResponse, error) {
	if err := req.Validate(); err != nil {
		return scan.CheckResponse{}, err
	}

	point, err := s.OfficePointRepository.GetByQRToken(ctx, req.Token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return scan.CheckResponse{}, scan.ErrInvalidQRToken
		}
		return scan.CheckResponse{}, fmt.Errorf("failed to get office point by token: %w", err)
	}
	// A deactivated point keeps its token but stops accepting checks.
	if !point.IsActive {
		return scan.CheckResponse{}, scan.ErrInvalidQRToken
	}

	org, err := s.OrganizationRepository.GetByID(ctx, point.OrganizationID)
	if err != nil {
		return scan.CheckResponse{}, fmt.Errorf("failed to get organization: %w", err)
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return scan.CheckResponse{}, employee.ErrEmployeeNotFound
		}
		return scan.CheckResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if emp.OrganizationID != org.ID {
		return scan.CheckResponse{}, scan.ErrEmployeeOrganization
	}
	if !emp.CanCheck() {
		return scan.CheckResponse{}, employee.ErrEmployeeNotActive
	}

	if org.Settings.GeolocationRequired {
		if req.GeoLocation == nil {
			return scan.CheckResponse{}, scan.ErrGeolocationRequired
		}
		if point.Location != nil {
			radius := float64(org.Settings.GeolocationRadius)
			if !geo.WithinRadius(*point.Location, *req.GeoLocation, radius) {
				return scan.CheckResponse{}, scan.ErrOutsideGeofence
			}
		}
	}

	log, err := s.checkLogService.Record(ctx, org.ID, checklog.CheckLog{
		EmployeeID:    emp.ID,
		OfficePointID: point.ID,
		CheckType:     req.CheckType,
		CheckedAt:     time.Now().UTC(),
		GeoLocation:   req.GeoLocation,
		DeviceInfo:    req.DeviceInfo,
	})
	if err != nil {
		return scan.CheckResponse{}, err
	}

	return scan.CheckResponse{Log: log}, nil
}

// Register implements scan.ScanService. A valid registration QR creates a
// pending employee; the owner approves or rejects it later.
func (s *ScanServiceImpl) Register(ctx context.Context, req scan.RegisterRequest) (scan.RegisterResponse, error) {
	if err := req.Validate(); err != nil {
		return scan.RegisterResponse{}, err
	}

	qr, err := s.RegistrationQRRepository.GetByToken(ctx, req.Token)
	if err != nil {
		if err == pgx.ErrNoRows {
			return scan.RegisterResponse{}, registrationqr.ErrRegistrationQRNotFound
		}
		return scan.RegisterResponse{}, fmt.Errorf("failed to get registration qr: %w", err)
	}
	if !qr.IsValid() {
		return scan.RegisterResponse{}, registrationqr.ErrRegistrationQRExpired
	}

	org, err := s.OrganizationRepository.GetByID(ctx, qr.OrganizationID)
	if err != nil {
		return scan.RegisterResponse{}, fmt.Errorf("failed to get organization: %w", err)
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		OrganizationID: org.ID,
		FullName:       strings.TrimSpace(req.FullName),
		Position:       req.Position,
		Phone:          req.Phone,
		Email:          req.Email,
		Status:         employee.StatusPending,
	})
	if err != nil {
		return scan.RegisterResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return scan.RegisterResponse{
		Employee:     employee.ToResponse(created),
		Organization: org.Name,
	}, nil
}
