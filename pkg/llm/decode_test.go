package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Subtopics []string `json:"subtopics"`
	}

	t.Run("bare object", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON(`{"subtopics":["a","b"]}`, &p))
		assert.Equal(t, []string{"a", "b"}, p.Subtopics)
	})

	t.Run("fenced with language tag", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON("```json\n{\"subtopics\":[\"a\"]}\n```", &p))
		assert.Equal(t, []string{"a"}, p.Subtopics)
	})

	t.Run("object embedded in prose", func(t *testing.T) {
		var p payload
		require.NoError(t, DecodeJSON(
			"Here is the breakdown:\n{\"subtopics\":[\"x\"]}\nLet me know if you need more.", &p))
		assert.Equal(t, []string{"x"}, p.Subtopics)
	})

	t.Run("array payload", func(t *testing.T) {
		var items []string
		require.NoError(t, DecodeJSON("The list: [\"one\",\"two\"] as requested", &items))
		assert.Equal(t, []string{"one", "two"}, items)
	})

	t.Run("no JSON at all", func(t *testing.T) {
		var p payload
		assert.Error(t, DecodeJSON("I could not produce structured output.", &p))
	})

	t.Run("malformed", func(t *testing.T) {
		var p payload
		assert.Error(t, DecodeJSON(`{"subtopics":["a"`, &p))
	})
}
