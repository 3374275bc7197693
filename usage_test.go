package cliargs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintOptionDescriptions(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	p := newTestParser(WithOutput(&out))
	require.NoError(t, p.AddOption("test1", "Just a test option 1."))
	require.NoError(t, p.AddOption("t2", "Just a test option 2."))
	require.NoError(t, p.AddOption("a", "A short option."))
	require.NoError(t, p.AddOption("silent", "Not printed.", Hidden()))

	p.PrintOptionDescriptions()

	expected := "--t2 Just a test option 2.\n" +
		"--test1 Just a test option 1.\n" +
		"-a A short option.\n"
	assert.Equal(t, expected, out.String())

	// Stable output
	out.Reset()
	p.PrintOptionDescriptions()
	assert.Equal(t, expected, out.String())
}

func TestWriteUsage(t *testing.T) {
	t.Parallel()

	p := newTestParser(WithPreamble("This is the preamble.\nUse it for messages in help."))
	require.NoError(t, p.AddOption("help", "Prints the preamble and options list for the program."))

	var out bytes.Buffer
	require.NoError(t, p.WriteUsage(&out))

	expected := "This is the preamble.\nUse it for messages in help.\n" +
		"--help Prints the preamble and options list for the program.\n"
	assert.Equal(t, expected, out.String())
	assert.Equal(t, "This is the preamble.\nUse it for messages in help.", p.Preamble())

	// No preamble
	p = newTestParser()
	require.NoError(t, p.AddOption("h", "Help."))

	out.Reset()
	require.NoError(t, p.WriteUsage(&out))
	assert.Equal(t, "-h Help.\n", out.String())
}
