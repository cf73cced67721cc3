package f1

import "errors"

// Sentinel error kinds for this package. Callers match them with errors.Is.
var (
	ErrDataUnavailable = errors.New("data unavailable")
	ErrSchemaMismatch  = errors.New("schema mismatch")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrAmbiguousDriver = errors.New("ambiguous driver")
	ErrSameDriver      = errors.New("cannot compare a driver with itself")
	ErrUnknownMode     = errors.New("unknown trend mode")
)
