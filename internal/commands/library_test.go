package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLibrary_Session(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"1", "Dune", "Frank Herbert", "111", "fiction",
		"2", "Alice", "001",
		"3", "111", "001",
		"6", "001",
		"4", "111", "001",
		"5",
		"q",
	}, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, runLibrary(in, &out))

	s := out.String()
	assert.Contains(t, s, `Book "Dune" added to the library.`)
	assert.Contains(t, s, `Member "Alice" registered.`)
	assert.Contains(t, s, "Borrowed. Due date: ")
	assert.Contains(t, s, "1. Dune - due ")
	assert.Contains(t, s, "Returned. Thank you!")
	assert.Contains(t, s, "----- Available Books -----")
}

func TestRunLibrary_RejectsUnknownBook(t *testing.T) {
	in := strings.NewReader("3\n999\n001\nq\n")
	var out bytes.Buffer

	require.NoError(t, runLibrary(in, &out))
	assert.Contains(t, out.String(), "Denied: book not found")
}
