package scan

import "errors"

var (
	ErrInvalidQRToken       = errors.New("qr token is invalid or inactive")
	ErrGeolocationRequired  = errors.New("geolocation is required by organization settings")
	ErrOutsideGeofence      = errors.New("location is outside the allowed radius")
	ErrEmployeeOrganization = errors.New("employee does not belong to this organization")
)
