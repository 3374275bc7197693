package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reeflective/cliargs/internal/errors"
	"github.com/reeflective/cliargs/internal/registry"
)

//
// Helpers -----------------------------------------------------------------------------------
//

func newRegistry(t *testing.T, names ...string) *registry.Registry {
	t.Helper()

	reg := registry.New()
	for _, name := range names {
		_, ok := reg.Add(name, name+" description")
		require.True(t, ok, "adding %s", name)
	}

	return reg
}

func count(t *testing.T, reg *registry.Registry, key string) int {
	t.Helper()

	opt, found := reg.Lookup(key)
	require.True(t, found, "looking up %s", key)

	return opt.Count
}

//
// Tests -----------------------------------------------------------------------------------
//

func TestIsFlag(t *testing.T) {
	t.Parallel()

	assert.True(t, IsFlag("-t"))
	assert.True(t, IsFlag("--test"))
	assert.True(t, IsFlag("-"))
	assert.True(t, IsFlag("-1"))
	assert.False(t, IsFlag("1"))
	assert.False(t, IsFlag(""))
	assert.False(t, IsFlag("a-b"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, "test1", "t2", "t3", "help")
	tokens := []string{"--test1", "1", "2", "--help", "--t2", "0.01", "ab"}

	require.NoError(t, Parse(reg, tokens))

	assert.Equal(t, 2, count(t, reg, "--test1"))
	assert.Equal(t, 0, count(t, reg, "--help"))
	assert.Equal(t, 2, count(t, reg, "--t2"))
	assert.Equal(t, registry.Unset, count(t, reg, "--t3"))

	test1, _ := reg.Lookup("--test1")
	assert.Equal(t, []string{"1", "2"}, test1.Args)

	t2, _ := reg.Lookup("--t2")
	assert.Equal(t, []string{"0.01", "ab"}, t2.Args)

	t3, _ := reg.Lookup("--t3")
	assert.Empty(t, t3.Args)
}

func TestParse_ShortOptions(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, "v", "o", "input")

	require.NoError(t, Parse(reg, []string{"-o", "out.txt", "--input", "a", "b", "c", "-v"}))

	assert.Equal(t, 1, count(t, reg, "-o"))
	assert.Equal(t, 3, count(t, reg, "--input"))
	assert.Equal(t, 0, count(t, reg, "-v"))
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, "test1")

	require.NoError(t, Parse(reg, nil))
	assert.Equal(t, registry.Unset, count(t, reg, "--test1"))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		tokens []string
		kind   errors.Kind
	}{
		{
			name:   "unknown option",
			tokens: []string{"--dne"},
			kind:   errors.UnknownOption,
		},
		{
			name:   "unnormalized key",
			tokens: []string{"--a"},
			kind:   errors.UnknownOption,
		},
		{
			name:   "option used twice",
			tokens: []string{"--test1", "--test1"},
			kind:   errors.OptionAlreadyUsed,
		},
		{
			name:   "option used twice with arguments in between",
			tokens: []string{"--test1", "1", "-a", "--test1"},
			kind:   errors.OptionAlreadyUsed,
		},
		{
			name:   "positional before any option",
			tokens: []string{"dne"},
			kind:   errors.NoActiveOption,
		},
		{
			name:   "empty token before any option",
			tokens: []string{"", "--test1"},
			kind:   errors.NoActiveOption,
		},
		{
			name:   "lone dash",
			tokens: []string{"--test1", "-"},
			kind:   errors.UnknownOption,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			reg := newRegistry(t, "test1", "a")

			err := Parse(reg, test.tokens)
			require.Error(t, err)
			assert.ErrorIs(t, err, test.kind)
		})
	}
}

func TestParse_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, "test1", "t2")

	err := Parse(reg, []string{"--test1", "1", "--dne", "--t2", "x"})
	require.ErrorIs(t, err, errors.UnknownOption)

	assert.Equal(t, 1, count(t, reg, "--test1"))
	assert.Equal(t, registry.Unset, count(t, reg, "--t2"), "tokens after the error are not processed")
}

func TestParse_UnknownOptionSuggestion(t *testing.T) {
	t.Parallel()

	reg := newRegistry(t, "test1", "help")

	err := Parse(reg, []string{"--tset1"})
	require.EqualError(t, err, "option --tset1 does not exist (did you mean --test1?)")

	err = Parse(reg, []string{"--zzzzzzzz"})
	require.EqualError(t, err, "option --zzzzzzzz does not exist")
}
