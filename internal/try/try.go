// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package try provides helpers for guaranteeing scoped resource release.
package try

import (
	"errors"
	"fmt"
	"io"
)

// CloseError occurs when releasing a source stream fails.
type CloseError struct {
	Cause error
}

// Error implements the error interface.
func (e CloseError) Error() string {
	return fmt.Sprintf("failed to close: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CloseError) Unwrap() error {
	return e.Cause
}

// Close closes v if it is an io.Closer and joins any close failure into
// the named return error pointed to by err. It is meant to be deferred
// so the stream is released on every exit path:
//
//	func (src Lines) Apply(store Store) (err error) {
//		c, _ := src.r.(io.Closer)
//		defer try.Close(&err, c)
//		...
//	}
func Close(err *error, v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}

	cerr := c.Close()
	if cerr == nil {
		return
	}

	werr := CloseError{Cause: cerr}
	if *err == nil {
		*err = werr
		return
	}
	*err = errors.Join(*err, werr)
}
