// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix is the namespace shared by all environment variables
// recognized by [FromEnv].
const EnvPrefix = "BOUNDCONF_"

// Env represents a Source where its underlying values are extracted
// from environment variables.
type Env struct {
	environ func() []string
}

// FromEnv returns a source which will apply its overrides from the
// environment variables available to the current process. A variable
// named EnvPrefix plus an upper-cased field name, BOUNDCONF_MAXIMUM for
// example, overrides that field; unset variables leave fields untouched.
// Any other BOUNDCONF_ variable is fatal for the source.
func FromEnv() Env {
	return Env{
		environ: os.Environ,
	}
}

// InvalidEnvError occurs if a recognized environment variable does not
// hold a base-10 integer.
type InvalidEnvError struct {
	Var   string
	Cause error
}

// Error implements the error interface.
func (e InvalidEnvError) Error() string {
	return fmt.Sprintf("invalid environment variable %s: %s", e.Var, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidEnvError) Unwrap() error {
	return e.Cause
}

// Apply implements the Source interface.
func (src Env) Apply(store Store) error {
	for _, pair := range src.environ() {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		name, found := strings.CutPrefix(k, EnvPrefix)
		if !found {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return InvalidEnvError{Var: k, Cause: err}
		}
		serr := store.Set(strings.ToLower(name), n)
		if serr != nil {
			return serr
		}
	}
	return nil
}
