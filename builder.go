// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/go-viper/mapstructure/v2"
)

// Default working values. Note they are internally inconsistent
// (DefaultMin exceeds DefaultMax) until overridden.
const (
	DefaultMax      = 0
	DefaultMin      = 100
	DefaultAttempts = 10
)

// ErrBuilderConsumed is returned by [Builder.Build] when the builder has
// already produced a [Configuration]. A Builder is strictly single-use;
// building twice is a programmer error and is never absorbed.
var ErrBuilderConsumed = errors.New("boundconf: builder has already been consumed")

type fields struct {
	Max      int `config:"maximum"`
	Min      int `config:"minimum"`
	Attempts int `config:"attempts"`
}

// Builder assembles a [Configuration] in named-parameter style. The zero
// value is not usable; construct one with [NewBuilder].
type Builder struct {
	fields   fields
	src      Source
	log      *slog.Logger
	consumed bool
}

// Option represents options for configuring a [Builder].
type Option func(*Builder)

// WithSource replaces the default working-directory file source with
// the given [Source].
func WithSource(src Source) Option {
	return func(b *Builder) {
		b.src = src
	}
}

// WithLogHandler registers a [slog.Handler] to receive a single record
// whenever Build absorbs a source failure. Without it absorbed failures
// are completely silent and the only visible signal left is
// [Configuration.IsConsistent] returning false.
func WithLogHandler(h slog.Handler) Option {
	return func(b *Builder) {
		if h != nil {
			b.log = slog.New(h)
		}
	}
}

// NewBuilder returns a fresh single-use Builder holding the default
// working values. Unless [WithSource] overrides it, Build will read
// [DefaultPath] relative to the current working directory.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		fields: fields{
			Max:      DefaultMax,
			Min:      DefaultMin,
			Attempts: DefaultAttempts,
		},
		src: FromLines(NewFileReader(os.DirFS("."), DefaultPath)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetMax overwrites the working maximum.
func (b *Builder) SetMax(max int) *Builder {
	b.fields.Max = max
	return b
}

// SetMin overwrites the working minimum.
func (b *Builder) SetMin(min int) *Builder {
	b.fields.Min = min
	return b
}

// SetAttempts overwrites the working attempts count.
func (b *Builder) SetAttempts(attempts int) *Builder {
	b.fields.Attempts = attempts
	return b
}

// Build consumes the builder and returns the Configuration snapshot.
//
// It applies the configured source onto the working fields, opening and
// closing the underlying stream exactly once regardless of outcome. A
// source failure of any kind, absent stream included, does not fail the
// build: fields the source set before failing are kept and the rest
// retain their prior values. Build fails only with [ErrBuilderConsumed],
// on the second and every later call.
func (b *Builder) Build() (Configuration, error) {
	if b.consumed {
		return Configuration{}, ErrBuilderConsumed
	}
	b.consumed = true

	store := make(fieldStore)
	err := b.src.Apply(store)
	if err != nil {
		b.report(err)
	}
	if len(store) > 0 {
		err = unmarshal(store, &b.fields)
		if err != nil {
			b.report(err)
		}
	}

	return Configuration{
		max:      b.fields.Max,
		min:      b.fields.Min,
		attempts: b.fields.Attempts,
	}, nil
}

func unmarshal(store fieldStore, v *fields) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "config",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]int(store))
}

func (b *Builder) report(err error) {
	if b.log == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		b.log.Debug("configuration source is absent, continuing with working values", slog.Any("error", err))
		return
	}
	b.log.Warn("configuration source rejected, keeping fields applied before the failure", slog.Any("error", err))
}
