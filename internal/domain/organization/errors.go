package organization

import "errors"

var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrOrganizationExists   = errors.New("account already owns an organization")
	ErrBINExists            = errors.New("organization with this BIN already exists")
	ErrSlugExists           = errors.New("organization slug already exists")
	ErrNotOwner             = errors.New("organization does not belong to this account")
)
