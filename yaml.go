// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"fmt"
	"io"

	"github.com/z5labs/boundconf/internal/try"

	"gopkg.in/yaml.v3"
)

// Yaml represents a Source where its underlying format is YAML: a flat
// document mapping the recognized field names to integers.
type Yaml struct {
	r io.Reader
}

// FromYaml returns a source which will apply its overrides from a YAML
// document read from the given io.Reader. If r is also an io.Closer it
// is closed once Apply returns, on every path.
func FromYaml(r io.Reader) Yaml {
	return Yaml{r: r}
}

// InvalidYamlError occurs if the underlying io.Reader contains invalid
// YAML or a non-integer field value.
type InvalidYamlError struct {
	cause error
}

// Error implements the error interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// Apply implements the Source interface. Unlike [Lines.Apply], a decode
// failure here happens before any field is applied, so a syntactically
// invalid document never leaves partial overrides behind.
func (src Yaml) Apply(store Store) (err error) {
	c, _ := src.r.(io.Closer)
	defer try.Close(&err, c)

	b, err := io.ReadAll(src.r)
	if err != nil {
		return err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return InvalidYamlError{cause: err}
	}

	for field, v := range m {
		n, ok := v.(int)
		if !ok {
			return InvalidYamlError{cause: fmt.Errorf("field %q is not an integer", field)}
		}
		serr := store.Set(field, n)
		if serr != nil {
			return serr
		}
	}
	return nil
}
