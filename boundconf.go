// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package boundconf builds an immutable [Configuration] of three tunable
// bounds (maximum, minimum, attempts) from compiled-in defaults, explicit
// overrides and an optional external source.
//
// Assembly happens through a single-use [Builder]:
//
//	cfg, err := boundconf.NewBuilder().
//		SetMin(1).
//		SetMax(10).
//		Build()
//
// Build reads the configured [Source] exactly once. A source which is absent
// or malformed never fails the build: the fields it did not successfully
// override simply keep their prior values, whether those came from the
// defaults or from setter calls. The only error Build ever returns is
// [ErrBuilderConsumed], raised when the same builder is built twice.
//
// Because source failures are absorbed, the resulting value is not validated
// at construction time. Callers decide how much to trust it by asking
// [Configuration.IsConsistent]. Note the built-in defaults themselves are
// deliberately inconsistent (min exceeds max) until overridden.
package boundconf

// Configuration is an immutable snapshot of the three tunable bounds.
// It is produced exclusively by [Builder.Build].
type Configuration struct {
	max      int
	min      int
	attempts int
}

// Max returns the maximum bound.
func (c Configuration) Max() int {
	return c.max
}

// Min returns the minimum bound.
func (c Configuration) Min() int {
	return c.min
}

// Attempts returns the attempts count.
func (c Configuration) Attempts() int {
	return c.attempts
}

// IsConsistent reports whether the snapshot describes a usable range,
// that is, a positive attempts count and a minimum strictly below the
// maximum. Consistency is a query, not a construction invariant: an
// inconsistent Configuration is a perfectly valid value.
func (c Configuration) IsConsistent() bool {
	return c.attempts > 0 && c.min < c.max
}
