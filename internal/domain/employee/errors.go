package employee

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeNotActive   = errors.New("employee is not active")
	ErrInvalidStatus       = errors.New("invalid employee status")
	ErrInvalidStatusChange = errors.New("employee status change is not allowed")
	ErrNotOwner            = errors.New("employee does not belong to this account")
)
