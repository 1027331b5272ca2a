package matcher

import (
	"errors"
	"testing"

	"comboselect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var banana = domain.Option{Text: "Banana", Value: "b", Alias: "Plantain"}

func TestSubstring(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.True(t, Substring(banana, "AN"))
		assert.True(t, Substring(banana, "nana"))
	})
	t.Run("Alias", func(t *testing.T) {
		assert.True(t, Substring(banana, "plant"))
	})
	t.Run("NoMatch", func(t *testing.T) {
		assert.False(t, Substring(banana, "zz"))
	})
	t.Run("NoAliasDoesNotMatchEverything", func(t *testing.T) {
		assert.False(t, Substring(domain.Option{Text: "Apple", Value: "a"}, "x"))
	})
}

func TestPrefix(t *testing.T) {
	assert.True(t, Prefix(banana, "ban"))
	assert.True(t, Prefix(banana, "PLA"))
	assert.False(t, Prefix(banana, "nana"))
}

func TestFuzzy(t *testing.T) {
	assert.True(t, Fuzzy(banana, "bna"))
	assert.True(t, Fuzzy(banana, "pln"))
	assert.False(t, Fuzzy(banana, "zz"))
}

func TestNamed(t *testing.T) {
	for _, name := range Names() {
		fn, err := Named(name)
		require.NoError(t, err, name)
		assert.NotNil(t, fn)
	}

	fn, err := Named("")
	require.NoError(t, err)
	assert.True(t, fn(banana, "nan"))

	_, err = Named("levenshtein")
	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Error(), "levenshtein")
}

type namedMatcher func(domain.Option, string) bool

func TestFromValue(t *testing.T) {
	t.Run("PlainFunc", func(t *testing.T) {
		fn, err := FromValue(func(o domain.Option, q string) bool { return o.Value == q })
		require.NoError(t, err)
		assert.True(t, fn(banana, "b"))
	})

	t.Run("NamedFuncType", func(t *testing.T) {
		fn, err := FromValue(namedMatcher(func(o domain.Option, q string) bool { return true }))
		require.NoError(t, err)
		assert.True(t, fn(banana, ""))
	})

	t.Run("BuiltIn", func(t *testing.T) {
		fn, err := FromValue(Func(Prefix))
		require.NoError(t, err)
		assert.True(t, fn(banana, "ba"))
	})

	bad := []struct {
		name string
		v    any
	}{
		{"Nil", nil},
		{"NilFunc", Func(nil)},
		{"NotAFunc", "substring"},
		{"OneArg", func(o domain.Option) bool { return true }},
		{"ThreeArgs", func(o domain.Option, q string, n int) bool { return true }},
		{"Variadic", func(o domain.Option, q ...string) bool { return true }},
		{"WrongParamTypes", func(a, b string) bool { return true }},
		{"WrongResult", func(o domain.Option, q string) int { return 0 }},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromValue(tt.v)
			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr), "expected ConfigurationError, got %v", err)
		})
	}
}
