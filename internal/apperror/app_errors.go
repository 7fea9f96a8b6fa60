package apperror

import "errors"

var (
	ErrInvalidCell          = errors.New("invalid cell index")
	ErrInvalidFold          = errors.New("invalid fold index")
	ErrMatchNotFound        = errors.New("match not found")
	ErrUnknownStorageDriver = errors.New("unknown storage driver")
)
