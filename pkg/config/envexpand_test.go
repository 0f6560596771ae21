package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("NEXUS_TEST_KEY", "secret-123")
	t.Setenv("NEXUS_TEST_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple variable",
			input: "api_key: {{.NEXUS_TEST_KEY}}",
			want:  "api_key: secret-123",
		},
		{
			name:  "multiple variables on one line",
			input: "url: {{.NEXUS_TEST_HOST}}:{{.NEXUS_TEST_KEY}}",
			want:  "url: db.internal:secret-123",
		},
		{
			name:  "missing variable expands to empty",
			input: "api_key: {{.NEXUS_TEST_MISSING}}",
			want:  "api_key: ",
		},
		{
			name:  "dollar signs left alone",
			input: `pattern: "^secret.*$"`,
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "malformed template passes through",
			input: "value: {{.UNCLOSED",
			want:  "value: {{.UNCLOSED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
