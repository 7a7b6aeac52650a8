package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSource_Lines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: []string{""}},
		{name: "single line", content: "1 + 2", want: []string{"1 + 2"}},
		{name: "trailing newline", content: "a\n", want: []string{"a", ""}},
		{name: "blank lines kept", content: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "crlf keeps carriage return", content: "a\r\nb", want: []string{"a\r", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource("test", tt.content)

			assert.Equal(t, tt.want, src.Lines())
			assert.Equal(t, tt.content, strings.Join(src.Lines(), "\n"), "joining lines must reconstruct content")
			assert.Equal(t, len(tt.want), src.LineCount())
		})
	}
}

func TestSource_Accessors(t *testing.T) {
	src := NewSource("<repl>", "é+1")

	assert.Equal(t, "<repl>", src.ID())
	assert.Equal(t, "é+1", src.Content())
	assert.Equal(t, 3, src.Len(), "length counts characters, not bytes")

	r, ok := src.At(0)
	require.True(t, ok)
	assert.Equal(t, 'é', r)

	_, ok = src.At(3)
	assert.False(t, ok)

	_, ok = src.At(-1)
	assert.False(t, ok)
}

func TestSource_LinesIsACopy(t *testing.T) {
	src := NewSource("test", "a\nb")

	lines := src.Lines()
	lines[0] = "changed"

	assert.Equal(t, "a", src.Line(0))
}

func TestSource_Location(t *testing.T) {
	src := NewSource("test", "(1 + 2)")

	t.Run("valid span", func(t *testing.T) {
		loc, err := src.Location(1, 5)
		require.NoError(t, err)
		assert.Equal(t, "1 + 2", loc.Text())
		assert.Equal(t, 6, loc.End())
		assert.Equal(t, "test:1+5", loc.String())
	})

	t.Run("empty span at end", func(t *testing.T) {
		loc, err := src.Location(7, 0)
		require.NoError(t, err)
		assert.Empty(t, loc.Text())
	})

	t.Run("out of bounds", func(t *testing.T) {
		_, err := src.Location(5, 3)
		require.Error(t, err)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := src.Location(-1, 1)
		require.Error(t, err)

		_, err = src.Location(0, -1)
		require.Error(t, err)
	})
}
