package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// MalformedRecordError reports an attendance record missing a required field.
// Index is the record's position in the input batch.
type MalformedRecordError struct {
	Index int
	Field string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed attendance record at index %d: missing %s", e.Index, e.Field)
}
