package officepoint

import "errors"

var (
	ErrOfficePointNotFound = errors.New("office point not found")
	ErrCannotDeleteMain    = errors.New("main office point cannot be deleted")
	ErrNotOwner            = errors.New("office point does not belong to this account")
)
