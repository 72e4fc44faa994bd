package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Count(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (e *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
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

	var status *employee.Status
	if s := r.URL.Query().Get("status"); s != "" {
		parsed := employee.Status(s)
		status = &parsed
	}

	employees, err := e.employeeService.List(r.Context(), userID, organizationID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// Approve implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	approved, err := e.employeeService.Approve(r.Context(), userID, employeeID)
	if err != nil {
		slog.Error("Approve employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee approved", "employee_id", approved.ID)
	response.SuccessWithMessage(w, "Employee approved successfully", approved)
}

// Reject implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := e.employeeService.Reject(r.Context(), userID, employeeID); err != nil {
		slog.Error("Reject employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee rejected", "employee_id", employeeID)
	response.SuccessWithMessage(w, "Employee rejected successfully", nil)
}

// SetStatus implements EmployeeHandler.
func (e *EmployeeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var statusReq employee.SetEmployeeStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Set employee status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := e.employeeService.SetStatus(r.Context(), userID, employeeID, statusReq)
	if err != nil {
		slog.Error("Set employee status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee status updated successfully", updated)
}

// Update implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	userID := getUserIDFromContext(r)
	if userID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := e.employeeService.Update(r.Context(), userID, employeeID, updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Count implements EmployeeHandler.
func (e *EmployeeHandlerImpl) Count(w http.ResponseWriter, r *http.Request) {
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

	counts, err := e.employeeService.Count(r.Context(), userID, organizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}
