// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/z5labs/boundconf/internal/try"
)

// Lines represents a Source in the line-oriented field:value format.
type Lines struct {
	r io.Reader
}

// FromLines returns a source which will apply its overrides from
// field:value lines read from the given io.Reader. If r is also an
// io.Closer it is closed once Apply returns, on every path.
func FromLines(r io.Reader) Lines {
	return Lines{r: r}
}

var errMissingSeparator = errors.New("missing ':' separator")

// MalformedLineError occurs if a line cannot be split into a field name
// and an integer value. It aborts the entire remaining source.
type MalformedLineError struct {
	Line  string
	Cause error
}

// Error implements the error interface.
func (e MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %q: %s", e.Line, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e MalformedLineError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
//
// Lines are processed strictly in order and each one must split on its
// first ':' into a recognized field name and a base-10 integer. Later
// lines for the same field overwrite earlier ones. Values are applied as
// they are read, so on a malformed or unrecognized line everything
// applied up to that point stays applied while the rest of the source is
// discarded. No trimming and no comment syntax: an empty or padded line
// is malformed like any other.
func (src Lines) Apply(store Store) (err error) {
	c, _ := src.r.(io.Closer)
	defer try.Close(&err, c)

	sc := bufio.NewScanner(src.r)
	for sc.Scan() {
		line := sc.Text()
		field, value, ok := strings.Cut(line, ":")
		if !ok {
			return MalformedLineError{Line: line, Cause: errMissingSeparator}
		}
		n, perr := strconv.Atoi(value)
		if perr != nil {
			return MalformedLineError{Line: line, Cause: perr}
		}
		serr := store.Set(field, n)
		if serr != nil {
			return serr
		}
	}
	return sc.Err()
}
