// Package storage defines the save backend property editors persist their
// contents to.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ja-he/quickedit/internal/model"
)

// ErrNotFound is returned when loading a property that has never been stored.
var ErrNotFound = errors.New("property not found")

// FieldStore is the abstracted save backend, which can be implemented over
// various storage systems.
type FieldStore interface {
	// Load returns the stored (untransformed) value of the property.
	Load(model.PropertyID) (string, error)

	// Save stores the value of the property.
	// A *ValidationError is returned when the backend refuses the value.
	Save(model.PropertyID, string) error
}

// ValidationError is returned when a value was refused, e.g. because a
// required field was left empty.
type ValidationError struct {
	Property model.PropertyID
	Messages []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value for '%s': %s", e.Property, strings.Join(e.Messages, "; "))
}
