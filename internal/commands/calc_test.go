package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCalc_Session(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"2+3*4", "no", "yes",
		"10-3", "yes", "no",
	}, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, runCalc(in, &out))

	s := out.String()
	assert.Contains(t, s, "14")
	assert.Contains(t, s, "7")
	assert.Contains(t, s, "1. 14")
	assert.Contains(t, s, "2. 7")
}

func TestRunCalc_DivisionByZero(t *testing.T) {
	in := strings.NewReader("1/0\nno\nno\n")
	var out bytes.Buffer

	require.NoError(t, runCalc(in, &out))
	assert.Contains(t, out.String(), "Division by Zero!")
}
