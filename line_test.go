package notes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/notes"
)

func TestLineString(t *testing.T) {
	t.Parallel()

	line := notes.Line{
		{Text: "# ", Style: notes.Style{Foreground: 8}},
		{Text: "Title", Style: notes.Style{Foreground: 1, Bold: true}},
	}
	assert.Equal(t, "# Title", line.String())
	assert.Empty(t, notes.Line{}.String())
}

func TestSourceLines(t *testing.T) {
	t.Parallel()

	t.Run("empty source yields nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, notes.SourceLines(""))
	})

	t.Run("trailing newline does not add an empty line", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "b"}, notes.SourceLines("a\nb\n"))
	})

	t.Run("interior blank lines survive", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"a", "", "b"}, notes.SourceLines("a\n\nb"))
	})
}

func TestPlainStyle(t *testing.T) {
	t.Parallel()

	s := notes.PlainStyle()
	assert.Equal(t, -1, s.Foreground)
	assert.Equal(t, -1, s.Background)
	assert.False(t, s.Bold)
}
