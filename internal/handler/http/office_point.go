package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OfficePointHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	RegenerateToken(w http.ResponseWriter, r *http.Request)
	QRPayload(w http.ResponseWriter, r *http.Request)
}

type OfficePointHandlerImpl struct {
	officePointService officepoint.OfficePointService
}

func NewOfficePointHandler(officePointService officepoint.OfficePointService) OfficePointHandler {
	return &OfficePointHandlerImpl{
		officePointService: officePointService,
	}
}

// List implements OfficePointHandler.
func (o *OfficePointHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	organizationID := chi.URLParam(r, "id")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	points, err := o.officePointService.List(r.Context(), userID, organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, points)
}

// Create implements OfficePointHandler.
func (o *OfficePointHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	organizationID := chi.URLParam(r, "id")
	if organizationID == "" {
		response.BadRequest(w, "Organization ID is required", nil)
		return
	}

	var createReq officepoint.CreateOfficePointRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create office point decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	point, err := o.officePointService.Create(r.Context(), userID, organizationID, createReq)
	if err != nil {
		slog.Error("Create office point service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Office point created successfully", "office_point_id", point.ID)
	response.Created(w, "Office point created successfully", point)
}

// Delete implements OfficePointHandler.
func (o *OfficePointHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pointID := chi.URLParam(r, "pointID")
	if pointID == "" {
		response.BadRequest(w, "Office point ID is required", nil)
		return
	}

	if err := o.officePointService.Delete(r.Context(), userID, pointID); err != nil {
		slog.Error("Delete office point service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Office point deleted successfully", nil)
}

// RegenerateToken implements OfficePointHandler.
func (o *OfficePointHandlerImpl) RegenerateToken(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pointID := chi.URLParam(r, "pointID")
	if pointID == "" {
		response.BadRequest(w, "Office point ID is required", nil)
		return
	}

	point, err := o.officePointService.RegenerateToken(r.Context(), userID, pointID)
	if err != nil {
		slog.Error("Regenerate QR token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("QR token regenerated", "office_point_id", point.ID)
	response.SuccessWithMessage(w, "QR token regenerated successfully", point)
}

// QRPayload implements OfficePointHandler.
func (o *OfficePointHandlerImpl) QRPayload(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	pointID := chi.URLParam(r, "pointID")
	if pointID == "" {
		response.BadRequest(w, "Office point ID is required", nil)
		return
	}

	payload, err := o.officePointService.QRPayload(r.Context(), userID, pointID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payload)
}
