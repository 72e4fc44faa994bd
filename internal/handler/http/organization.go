package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler interface {
	GetOwn(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetBySlug(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type OrganizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &OrganizationHandlerImpl{
		organizationService: organizationService,
	}
}

// GetOwn implements OrganizationHandler.
func (o *OrganizationHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	org, err := o.organizationService.GetOwn(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, org)
}

// Create implements OrganizationHandler.
func (o *OrganizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var createReq organization.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create organization decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	org, err := o.organizationService.Create(r.Context(), userID, createReq)
	if err != nil {
		slog.Error("Create organization service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Organization created successfully", "organization_id", org.ID)
	response.Created(w, "Organization created successfully", org)
}

// GetBySlug implements OrganizationHandler.
func (o *OrganizationHandlerImpl) GetBySlug(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		response.BadRequest(w, "Organization slug is required", nil)
		return
	}

	org, err := o.organizationService.GetBySlug(r.Context(), userID, slug)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, org)
}

// UpdateSettings implements OrganizationHandler.
func (o *OrganizationHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
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

	var updateReq organization.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	settings, err := o.organizationService.UpdateSettings(r.Context(), userID, organizationID, updateReq)
	if err != nil {
		slog.Error("Update settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated successfully", settings)
}
