package employee

import (
	"context"
	"fmt"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	organization.OrganizationRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, organizationRepository organization.OrganizationRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:     employeeRepository,
		OrganizationRepository: organizationRepository,
	}
}

func (e *EmployeeServiceImpl) guardOrganization(ctx context.Context, userID, organizationID string) error {
	org, err := e.OrganizationRepository.GetByID(ctx, organizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsOwnedBy(userID) {
		return employee.ErrNotOwner
	}
	return nil
}

// guardEmployee loads an employee and verifies the caller owns its organization.
func (e *EmployeeServiceImpl) guardEmployee(ctx context.Context, userID, employeeID string) (employee.Employee, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := e.guardOrganization(ctx, userID, emp.OrganizationID); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, userID, organizationID string, status *employee.Status) ([]employee.EmployeeResponse, error) {
	if status != nil && !status.IsValid() {
		return nil, employee.ErrInvalidStatus
	}
	if err := e.guardOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	employees, err := e.EmployeeRepository.ListByOrganizationID(ctx, organizationID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ToResponses(employees), nil
}

// Approve implements employee.EmployeeService. Only pending employees can
// be approved.
func (e *EmployeeServiceImpl) Approve(ctx context.Context, userID, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := e.guardEmployee(ctx, userID, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if emp.Status != employee.StatusPending {
		return employee.EmployeeResponse{}, employee.ErrInvalidStatusChange
	}

	if err := e.EmployeeRepository.UpdateStatus(ctx, emp.ID, employee.StatusActive); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to approve employee: %w", err)
	}

	emp.Status = employee.StatusActive
	return employee.ToResponse(emp), nil
}

// Reject implements employee.EmployeeService. Rejection deletes the record
// outright and is only allowed while the employee is still pending.
func (e *EmployeeServiceImpl) Reject(ctx context.Context, userID, employeeID string) error {
	emp, err := e.guardEmployee(ctx, userID, employeeID)
	if err != nil {
		return err
	}

	if emp.Status != employee.StatusPending {
		return employee.ErrInvalidStatusChange
	}

	if err := e.EmployeeRepository.Delete(ctx, emp.ID); err != nil {
		return fmt.Errorf("failed to reject employee: %w", err)
	}
	return nil
}

// SetStatus implements employee.EmployeeService. Only active and inactive
// swap through here; pending is entered at registration and left via
// approve or reject.
func (e *EmployeeServiceImpl) SetStatus(ctx context.Context, userID, employeeID string, req employee.SetEmployeeStatusRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.guardEmployee(ctx, userID, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if emp.Status == employee.StatusPending {
		return employee.EmployeeResponse{}, employee.ErrInvalidStatusChange
	}
	if emp.Status == req.Status {
		return employee.ToResponse(emp), nil
	}

	if err := e.EmployeeRepository.UpdateStatus(ctx, emp.ID, req.Status); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee status: %w", err)
	}

	emp.Status = req.Status
	return employee.ToResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, userID, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := e.guardEmployee(ctx, userID, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp.ID, req)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee.ToResponse(updated), nil
}

// Count implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Count(ctx context.Context, userID, organizationID string) (employee.EmployeeCountResponse, error) {
	if err := e.guardOrganization(ctx, userID, organizationID); err != nil {
		return employee.EmployeeCountResponse{}, err
	}

	counts, err := e.EmployeeRepository.CountByOrganizationID(ctx, organizationID)
	if err != nil {
		return employee.EmployeeCountResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return counts, nil
}
