package carwash

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when a pipeline run receives no rows.
var ErrEmptyTable = errors.New("table has no rows")

// ErrCatalogLoad indicates the reference catalog could not be loaded
// from storage. Matching degrades to pass-through when a run continues
// past it.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrCatalogLoad struct {
	Object string
	cause  error
}

func (e *ErrCatalogLoad) Error() string {
	return fmt.Sprintf("failed to load reference catalog %q: %v", e.Object, e.cause)
}

func (e *ErrCatalogLoad) Unwrap() error { return e.cause }

// ErrStep indicates a pipeline step failed.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrStep struct {
	Step  string
	cause error
}

func (e *ErrStep) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.cause)
}

func (e *ErrStep) Unwrap() error { return e.cause }
