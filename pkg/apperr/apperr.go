// Package apperr defines the error kinds services return so controllers
// can map them to HTTP statuses without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// NotFound reports that an entity does not exist.
type NotFound struct {
	Kind string
	ID   uint
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// InvalidInput reports a request the domain rules reject.
type InvalidInput struct {
	Reason string
}

func (e *InvalidInput) Error() string { return e.Reason }

func NotFoundf(kind string, id uint) error { return &NotFound{Kind: kind, ID: id} }

func Invalidf(format string, args ...any) error {
	return &InvalidInput{Reason: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var nf *NotFound
	return errors.As(err, &nf)
}

func IsInvalidInput(err error) bool {
	var ii *InvalidInput
	return errors.As(err, &ii)
}
