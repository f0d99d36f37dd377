// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package boundconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func environOf(pairs ...string) func() []string {
	return func() []string {
		return pairs
	}
}

func TestEnv_Apply(t *testing.T) {
	t.Run("will apply every recognized variable", func(t *testing.T) {
		t.Run("if each one holds an integer", func(t *testing.T) {
			src := Env{environ: environOf(
				"BOUNDCONF_MAXIMUM=50",
				"BOUNDCONF_MINIMUM=1",
				"BOUNDCONF_ATTEMPTS=3",
			)}

			store := make(fieldStore)
			err := src.Apply(store)
			require.Nil(t, err)

			assert.Equal(t, fieldStore{
				fieldMaximum:  50,
				fieldMinimum:  1,
				fieldAttempts: 3,
			}, store)
		})
	})

	t.Run("will skip variables", func(t *testing.T) {
		t.Run("if they are outside the BOUNDCONF_ namespace", func(t *testing.T) {
			src := Env{environ: environOf(
				"PATH=/usr/bin",
				"MAXIMUM=50",
				"BOUNDCONF_MINIMUM=1",
			)}

			store := make(fieldStore)
			err := src.Apply(store)
			require.Nil(t, err)

			assert.Equal(t, fieldStore{fieldMinimum: 1}, store)
		})

		t.Run("if the environment holds entries without a separator", func(t *testing.T) {
			src := Env{environ: environOf("garbage")}

			store := make(fieldStore)
			err := src.Apply(store)
			require.Nil(t, err)
			assert.Empty(t, store)
		})
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if a recognized variable is not an integer", func(t *testing.T) {
			src := Env{environ: environOf("BOUNDCONF_MAXIMUM=fifty")}

			err := src.Apply(make(fieldStore))

			var eerr InvalidEnvError
			require.ErrorAs(t, err, &eerr)
			assert.Equal(t, "BOUNDCONF_MAXIMUM", eerr.Var)
		})

		t.Run("if a namespaced variable is not a recognized field", func(t *testing.T) {
			src := Env{environ: environOf("BOUNDCONF_TIMEOUT=5")}

			err := src.Apply(make(fieldStore))

			var ferr UnrecognizedFieldError
			require.ErrorAs(t, err, &ferr)
			assert.Equal(t, "timeout", ferr.Field)
		})
	})

	t.Run("will read the process environment", func(t *testing.T) {
		t.Run("if constructed with FromEnv", func(t *testing.T) {
			t.Setenv("BOUNDCONF_ATTEMPTS", "4")

			store := make(fieldStore)
			err := FromEnv().Apply(store)
			require.Nil(t, err)

			assert.Equal(t, 4, store[fieldAttempts])
		})
	})
}
