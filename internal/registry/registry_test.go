package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"t", "-t"},
		{"v", "-v"},
		{"é", "-é"},
		{"t2", "--t2"},
		{"test", "--test"},
		{"help", "--help"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.name), "for %v", tt.name)
	}
}

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	reg := New()

	opt, ok := reg.Add("test1", "Just a test option 1.")
	require.True(t, ok)
	assert.Equal(t, "--test1", opt.Name)
	assert.Equal(t, "Just a test option 1.", opt.Description)
	assert.Equal(t, Unset, opt.Count)
	assert.Empty(t, opt.Args)
	assert.False(t, opt.IsSet())

	_, ok = reg.Add("test1", "Another description.")
	require.False(t, ok)

	_, ok = reg.Add("t", "Short option.")
	require.True(t, ok)

	assert.Equal(t, 2, reg.Len())

	found, ok := reg.Lookup("-t")
	require.True(t, ok)
	assert.Equal(t, "Short option.", found.Description)

	_, ok = reg.Lookup("t")
	assert.False(t, ok, "lookups use the normalized key")
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := New()
	for _, name := range []string{"zeta", "a", "help", "t2"} {
		_, ok := reg.Add(name, "")
		require.True(t, ok)
	}

	assert.Equal(t, []string{"--help", "--t2", "--zeta", "-a"}, reg.Names())

	opts := reg.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, "--help", opts[0].Name)
	assert.Equal(t, "-a", opts[3].Name)
}

func TestOption_Arguments(t *testing.T) {
	t.Parallel()

	opt := &Option{Name: "--test1", Count: 2, Args: []string{"1", "2"}}

	args := opt.Arguments()
	args[0] = "changed"

	assert.Equal(t, []string{"1", "2"}, opt.Args)
}

func TestRegistry_Suggest(t *testing.T) {
	t.Parallel()

	reg := New()
	reg.Add("test1", "")
	reg.Add("help", "")
	secret, _ := reg.Add("secret", "")
	secret.Hidden = true

	match, ok := reg.Suggest("--tset1")
	require.True(t, ok)
	assert.Equal(t, "--test1", match)

	match, ok = reg.Suggest("--hlp")
	require.True(t, ok)
	assert.Equal(t, "--help", match)

	_, ok = reg.Suggest("--completely-different")
	assert.False(t, ok)

	_, ok = reg.Suggest("--secre")
	assert.False(t, ok, "hidden options are not suggested")
}

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src, tgt string
		want     int
	}{
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1},
		{"a", "ab", 1},
		{"--tset", "--test", 2},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levenshtein(tt.src, tt.tgt), "for %v -> %v", tt.src, tt.tgt)
	}
}
