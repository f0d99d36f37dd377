// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import "fmt"

// Recognized source field names, each mapping to one working field.
const (
	fieldMaximum  = "maximum"
	fieldMinimum  = "minimum"
	fieldAttempts = "attempts"
)

// Store collects integer overrides keyed by field name.
type Store interface {
	Set(field string, value int) error
}

// Source defines valid configuration sources as those who can
// apply their field overrides onto a [Store].
type Source interface {
	Apply(Store) error
}

// UnrecognizedFieldError occurs when a source carries a field name
// outside the three recognized ones. It is fatal for the whole source.
type UnrecognizedFieldError struct {
	Field string
}

// Error implements the error interface.
func (e UnrecognizedFieldError) Error() string {
	return fmt.Sprintf("field %q is not recognized", e.Field)
}

// fieldStore is the Store used by Build. Presence of a key records that
// a source actually set the field, which matters because zero is a
// legitimate override value here.
type fieldStore map[string]int

// Set implements the Store interface.
func (s fieldStore) Set(field string, value int) error {
	switch field {
	case fieldMaximum, fieldMinimum, fieldAttempts:
		s[field] = value
		return nil
	default:
		return UnrecognizedFieldError{Field: field}
	}
}
