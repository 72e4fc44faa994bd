package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/registrationqr"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RegistrationQRHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type RegistrationQRHandlerImpl struct {
	registrationQRService registrationqr.RegistrationQRService
}

func NewRegistrationQRHandler(registrationQRService registrationqr.RegistrationQRService) RegistrationQRHandler {
	return &RegistrationQRHandlerImpl{
		registrationQRService: registrationQRService,
	}
}

// Issue implements RegistrationQRHandler.
func (h *RegistrationQRHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
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

	var issueReq registrationqr.IssueRegistrationQRRequest
	if err := json.NewDecoder(r.Body).Decode(&issueReq); err != nil {
		slog.Error("Issue registration QR decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	issued, err := h.registrationQRService.Issue(r.Context(), userID, organizationID, issueReq)
	if err != nil {
		slog.Error("Issue registration QR service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Registration QR issued", "registration_qr_id", issued.ID)
	response.Created(w, "Registration QR issued successfully", issued)
}

// List implements RegistrationQRHandler.
func (h *RegistrationQRHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	qrs, err := h.registrationQRService.List(r.Context(), userID, organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, qrs)
}

// Deactivate implements RegistrationQRHandler.
func (h *RegistrationQRHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	qrID := chi.URLParam(r, "qrID")
	if qrID == "" {
		response.BadRequest(w, "Registration QR ID is required", nil)
		return
	}

	if err := h.registrationQRService.Deactivate(r.Context(), userID, qrID); err != nil {
		slog.Error("Deactivate registration QR service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Registration QR deactivated successfully", nil)
}
