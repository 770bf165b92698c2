package snowflake

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by New when the node ID or API version
	// does not fit its field.
	ErrInvalidConfig = errors.New("snowflake: invalid generator configuration")

	// ErrClockBeforeEpoch is returned by Generate when the clock reads earlier
	// than 2020-01-01T00:00:00Z.
	ErrClockBeforeEpoch = errors.New("snowflake: clock reads earlier than the epoch")

	// ErrFieldRange matches every *RangeError.
	ErrFieldRange = errors.New("snowflake: field value out of range")

	// ErrInvalidFormat indicates that an ID string could not be parsed
	ErrInvalidFormat = errors.New("snowflake: invalid id format")

	// ErrInvalidLength indicates that an ID byte slice has incorrect length
	ErrInvalidLength = errors.New("snowflake: invalid id length (expected 16 bytes)")
)

// RangeError reports a field value that does not fit its bit width.
type RangeError struct {
	Field string
	Value uint64
	Max   uint64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// Is makes errors.Is(err, ErrFieldRange) hold for any *RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrFieldRange
}

func checkRange(field string, value, max uint64) error {
	if value > max {
		return &RangeError{Field: field, Value: value, Max: max}
	}
	return nil
}
