package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trilogy-group/nexus-agents/pkg/llm"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Status
	}{
		{"nil", nil, StatusOK},
		{"canceled", context.Canceled, StatusPermanent},
		{"wrapped canceled", fmt.Errorf("call: %w", context.Canceled), StatusPermanent},
		{"deadline", context.DeadlineExceeded, StatusTransient},
		{"net error", &net.OpError{Op: "dial", Err: errors.New("refused")}, StatusTransient},
		{"429 text", errors.New("provider returned 429"), StatusTransient},
		{"rate limit text", errors.New("Rate Limit exceeded"), StatusTransient},
		{"503 text", errors.New("HTTP 503 Service Unavailable"), StatusTransient},
		{"overloaded text", errors.New("model overloaded, retry later"), StatusTransient},
		{"invalid query", errors.New("invalid query syntax"), StatusPermanent},
		{"auth failure", errors.New("401 unauthorized"), StatusPermanent},
		{"unknown", errors.New("something odd"), StatusPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyProviderError(tt.err))
		})
	}
}

func TestClassifyLLMError(t *testing.T) {
	t.Run("sidecar retryable verdict wins", func(t *testing.T) {
		err := &llm.CallError{Message: "quota", Code: "429", Retryable: true}
		assert.Equal(t, StatusTransient, classifyLLMError(err))
	})

	t.Run("sidecar non-retryable verdict wins", func(t *testing.T) {
		// Message contains "429" but the sidecar says don't retry.
		err := &llm.CallError{Message: "hard quota 429", Retryable: false}
		assert.Equal(t, StatusPermanent, classifyLLMError(err))
	})

	t.Run("non-CallError falls back to text classification", func(t *testing.T) {
		assert.Equal(t, StatusTransient, classifyLLMError(errors.New("rpc error: code = Unavailable")))
		assert.Equal(t, StatusPermanent, classifyLLMError(errors.New("invalid request")))
	})
}

func TestToolError(t *testing.T) {
	err := &toolError{provider: "exa", text: "quota exhausted"}
	assert.Contains(t, err.Error(), "exa")
	assert.Contains(t, err.Error(), "quota exhausted")
}
