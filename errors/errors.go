package errors

import "fmt"

var (
	ErrValidation      = fmt.Errorf("validation failed")
	ErrContactNotFound = fmt.Errorf("contact not found")
	ErrInvalidState    = fmt.Errorf("invalid session state")
	ErrEmptyMessage    = fmt.Errorf("message needs text or an attachment")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)
