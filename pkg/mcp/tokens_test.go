package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("ab"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
	assert.Equal(t, 1000, EstimateTokens(strings.Repeat("x", 4000)))
}

func TestTruncateAtLineBoundary(t *testing.T) {
	t.Run("content under limit is untouched", func(t *testing.T) {
		content := "line one\nline two"
		assert.Equal(t, content, truncateAtLineBoundary(content, 100, "test"))
	})

	t.Run("cuts at last newline before limit", func(t *testing.T) {
		content := "aaaa\nbbbb\ncccc\ndddd"
		out := truncateAtLineBoundary(content, 12, "test")
		assert.True(t, strings.HasPrefix(out, "aaaa\nbbbb"))
		assert.NotContains(t, strings.SplitN(out, "[TRUNCATED", 2)[0], "cccc")
		assert.Contains(t, out, "[TRUNCATED: test")
	})

	t.Run("no newline falls back to hard cut", func(t *testing.T) {
		content := strings.Repeat("x", 50)
		out := truncateAtLineBoundary(content, 20, "test")
		assert.Contains(t, out, "[TRUNCATED")
		assert.True(t, strings.HasPrefix(out, strings.Repeat("x", 20)))
	})

	t.Run("does not split multi-byte runes", func(t *testing.T) {
		content := strings.Repeat("日", 20) // 3 bytes each
		out := truncateAtLineBoundary(content, 10, "test")
		head := strings.SplitN(out, "\n\n[TRUNCATED", 2)[0]
		assert.True(t, strings.HasPrefix(head, "日日日"))
		// 10 bytes lands mid-rune; cut backs off to 9 bytes (3 runes)
		assert.Len(t, head, 9)
	})

	t.Run("reports sizes in marker", func(t *testing.T) {
		content := strings.Repeat("x", 2048)
		out := truncateAtLineBoundary(content, 1024, "limit hit")
		assert.Contains(t, out, "Original size: 2KB")
		assert.Contains(t, out, "limit: 1KB")
	})
}

func TestTruncateForStorage(t *testing.T) {
	small := "a short search result"
	assert.Equal(t, small, TruncateForStorage(small))

	big := strings.Repeat("result line\n", 10000) // ~120KB > 32KB limit
	out := TruncateForStorage(big)
	assert.Less(t, len(out), len(big))
	assert.Contains(t, out, "evidence storage limit")
}

func TestTruncateForSummarization(t *testing.T) {
	// Storage-oversized content still fits the summarization limit.
	medium := strings.Repeat("fetched page text\n", 10000) // ~180KB < 400KB
	assert.Equal(t, medium, TruncateForSummarization(medium))

	huge := strings.Repeat("fetched page text\n", 30000) // ~540KB > 400KB
	out := TruncateForSummarization(huge)
	assert.Less(t, len(out), len(huge))
	assert.Contains(t, out, "summarization input limit")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512B", formatSize(512))
	assert.Equal(t, "1KB", formatSize(1024))
	assert.Equal(t, "64KB", formatSize(64*1024))
}
