package notes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fwojciec/notes"
)

func TestDefaultTheme(t *testing.T) {
	t.Parallel()

	theme := notes.DefaultTheme()

	assert.Equal(t, 1, theme.Heading1)
	assert.Equal(t, 3, theme.Heading2)
	assert.Equal(t, 2, theme.Heading3)
	assert.Equal(t, 6, theme.HeadingRest)
	assert.Equal(t, 8, theme.Marker)
	assert.Equal(t, 2, theme.Code)
	assert.Equal(t, 0, theme.CodeBg)
	assert.Equal(t, 4, theme.Link)
	assert.Equal(t, 6, theme.Border)
}
