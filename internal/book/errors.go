package book

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no book exists for the requested id.
	ErrNotFound = errors.New("No records found for this ID")

	// ErrRequiredObjectIsNull is returned when create or update receive a nil VO.
	ErrRequiredObjectIsNull = errors.New("It is not allowed to persist a null object!")
)

// MappingError reports a conversion that could not be performed. It signals a
// programming defect rather than a runtime condition.
type MappingError struct {
	Source string
	Target string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s to %s: source is nil", e.Source, e.Target)
}
