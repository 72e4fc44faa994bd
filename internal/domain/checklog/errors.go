package checklog

import "errors"

var (
	ErrCheckLogNotFound = errors.New("check log not found")
	ErrInvalidCheckType = errors.New("invalid check type")
	ErrNotOwner         = errors.New("check logs do not belong to this account")
)
