package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSearchResults_WrappedObject(t *testing.T) {
	text := `{"results":[
		{"url":"https://a.example","title":"A","description":"first"},
		{"url":"https://b.example","title":"B","snippet":"second"}
	]}`

	results := parseSearchResults("linkup", text)
	require.Len(t, results, 2)
	assert.Equal(t, "https://a.example", results[0].URL)
	assert.Equal(t, "first", results[0].Description)
	assert.Equal(t, "second", results[1].Description) // snippet alias
	assert.Equal(t, "linkup", results[1].Provider)
}

func TestParseSearchResults_AlternateWrapperKeys(t *testing.T) {
	for _, key := range []string{"data", "items", "sources"} {
		text := `{"` + key + `":[{"link":"https://x.example","name":"X"}]}`
		results := parseSearchResults("exa", text)
		require.Len(t, results, 1, "wrapper key %s", key)
		assert.Equal(t, "https://x.example", results[0].URL)
		assert.Equal(t, "X", results[0].Title)
	}
}

func TestParseSearchResults_BareArray(t *testing.T) {
	text := `[{"url":"https://c.example","title":"C","text":"body"}]`

	results := parseSearchResults("firecrawl", text)
	require.Len(t, results, 1)
	assert.Equal(t, "https://c.example", results[0].URL)
	assert.Equal(t, "body", results[0].Description)
}

func TestParseSearchResults_FreeTextFallback(t *testing.T) {
	text := "AI agents are increasingly used in test generation [1]."

	results := parseSearchResults("perplexity", text)
	require.Len(t, results, 1)
	assert.Empty(t, results[0].URL)
	assert.Equal(t, text, results[0].Description)
	assert.Equal(t, "perplexity", results[0].Provider)
}

func TestParseSearchResults_FreeTextBounded(t *testing.T) {
	text := strings.Repeat("x", maxFallbackDescription+500)

	results := parseSearchResults("perplexity", text)
	require.Len(t, results, 1)
	assert.Len(t, results[0].Description, maxFallbackDescription)
}

func TestParseSearchResults_Empty(t *testing.T) {
	assert.Empty(t, parseSearchResults("linkup", ""))
	assert.Empty(t, parseSearchResults("linkup", "   "))
	assert.Empty(t, parseSearchResults("linkup", `{"results":[]}`))
}

func TestParseSearchResults_DropsEmptyItems(t *testing.T) {
	text := `{"results":[{"score":0.9},{"url":"https://keep.example"}]}`

	results := parseSearchResults("exa", text)
	require.Len(t, results, 1)
	assert.Equal(t, "https://keep.example", results[0].URL)
}

func TestParseSearchResults_MalformedJSONObjectFallsThrough(t *testing.T) {
	// An object without a recognized hit array is treated as free text.
	text := `{"answer":"42"}`

	results := parseSearchResults("perplexity", text)
	require.Len(t, results, 1)
	assert.Equal(t, text, results[0].Description)
}
