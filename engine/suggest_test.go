package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestions(t *testing.T) {
	t.Run("short input returns defaults", func(t *testing.T) {
		got := Suggestions("p")
		assert.Equal(t, commonIssueTitles[:5], got)
	})

	t.Run("substring match is case-insensitive", func(t *testing.T) {
		got := Suggestions("GARBAGE")
		assert.NotEmpty(t, got)
		for _, s := range got {
			assert.Contains(t, strings.ToLower(s), "garbage")
		}
	})

	t.Run("no match falls back to defaults", func(t *testing.T) {
		assert.Equal(t, commonIssueTitles[:5], Suggestions("zzzz"))
	})

	t.Run("never more than five", func(t *testing.T) {
		assert.LessOrEqual(t, len(Suggestions("road")), 5)
	})
}
