package kernel

import (
	"fmt"
	"strconv"

	"deliveryapi/internal/pkg/errs"
)

// ErrIDIsNotConstructed indicates that an ID was not created through NewID.
// This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object wrapping the store-assigned entity identifier.
// Identifiers are opaque positive integers; the zero value is invalid and
// marks an entity that has not been persisted yet.
//
// ID is immutable and safe for concurrent use.
type ID struct {
	value int64
}

// NewID creates an ID from a store-assigned value. The value must be positive.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return ID{value: value}, nil
}

// IDFromString parses an ID from its decimal string representation.
// Used when reconstructing identifiers from route parameters.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Value returns the underlying integer identifier.
func (id ID) Value() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two identifiers for equality.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// Validate returns ErrIDIsNotConstructed for the zero value.
func (id ID) Validate() error {
	if id.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
