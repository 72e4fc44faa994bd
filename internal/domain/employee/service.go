package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, userID, organizationID string, status *Status) ([]EmployeeResponse, error)
	Approve(ctx context.Context, userID, employeeID string) (EmployeeResponse, error)
	Reject(ctx context.Context, userID, employeeID string) error
	SetStatus(ctx context.Context, userID, employeeID string, req SetEmployeeStatusRequest) (EmployeeResponse, error)
	Update(ctx context.Context, userID, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Count(ctx context.Context, userID, organizationID string) (EmployeeCountResponse, error)
}
