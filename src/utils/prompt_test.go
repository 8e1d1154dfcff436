package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	t.Run("yes", func(t *testing.T) {
		var out bytes.Buffer

		ok, err := Confirm(strings.NewReader("Y\n"), &out, "Place order?")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Place order? [y/N]: ", out.String())
	})

	t.Run("anything else is no", func(t *testing.T) {
		for _, answer := range []string{"\n", "n\n", "maybe"} {
			ok, err := Confirm(strings.NewReader(answer), &bytes.Buffer{}, "?")

			require.NoError(t, err)
			assert.False(t, ok, answer)
		}
	})

	t.Run("closed input", func(t *testing.T) {
		_, err := Confirm(strings.NewReader(""), &bytes.Buffer{}, "?")

		assert.Error(t, err)
	})
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("hello\r\nworld\n"))

	require.NoError(t, err)
	assert.Equal(t, "hello", line)
}
