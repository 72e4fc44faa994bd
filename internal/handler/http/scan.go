package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/scan"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
)

// ScanHandler serves the public endpoints hit after a QR code is scanned.
type ScanHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type ScanHandlerImpl struct {
	scanService scan.ScanService
}

func NewScanHandler(scanService scan.ScanService) ScanHandler {
	return &ScanHandlerImpl{
		scanService: scanService,
	}
}

// Check implements ScanHandler.
func (s *ScanHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	var checkReq scan.CheckRequest

	if err := json.NewDecoder(r.Body).Decode(&checkReq); err != nil {
		slog.Error("Scan check decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if checkReq.DeviceInfo == nil {
		if ua := r.UserAgent(); ua != "" {
			checkReq.DeviceInfo = &ua
		}
	}

	result, err := s.scanService.Check(r.Context(), checkReq)
	if err != nil {
		slog.Error("Scan check service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Check recorded",
		"employee_id", checkReq.EmployeeID,
		"check_type", checkReq.CheckType)
	response.Created(w, "Check recorded successfully", result)
}

// Register implements ScanHandler.
func (s *ScanHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq scan.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Scan register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := s.scanService.Register(r.Context(), registerReq)
	if err != nil {
		slog.Error("Scan register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee registration submitted", "employee_id", result.Employee.ID)
	response.Created(w, "Registration submitted for approval", result)
}
