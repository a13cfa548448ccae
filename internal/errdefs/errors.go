package errdefs

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrStillReferenced  = errors.New("record is still referenced")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation error")
	ErrAuthentication   = errors.New("authentication error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
