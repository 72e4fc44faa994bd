package registrationqr

import "errors"

var (
	ErrRegistrationQRNotFound = errors.New("registration qr not found")
	ErrRegistrationQRExpired  = errors.New("registration qr is expired or deactivated")
	ErrNotOwner               = errors.New("registration qr does not belong to this account")
)
