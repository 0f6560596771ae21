package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

// timeoutError implements net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return false }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RecoveryAction
	}{
		{"nil error", nil, NoRetry},
		{"context canceled", context.Canceled, NoRetry},
		{"deadline exceeded", context.DeadlineExceeded, NoRetry},
		{"wrapped context canceled", fmt.Errorf("call failed: %w", context.Canceled), NoRetry},
		{"net timeout", timeoutError{}, NoRetry},
		{"net op error", &net.OpError{Op: "dial", Err: errors.New("refused")}, RetryNewSession},
		{"EOF", io.EOF, RetryNewSession},
		{"unexpected EOF", io.ErrUnexpectedEOF, RetryNewSession},
		{"connection refused text", errors.New("dial tcp: connection refused"), RetryNewSession},
		{"connection reset text", errors.New("read: Connection Reset by peer"), RetryNewSession},
		{"broken pipe text", errors.New("write: broken pipe"), RetryNewSession},
		{"protocol method not found", errors.New("jsonrpc: Method Not Found"), NoRetry},
		{"protocol invalid params", errors.New("invalid params: missing query"), NoRetry},
		{"unknown error", errors.New("something odd happened"), NoRetry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(io.EOF))
	assert.True(t, isConnectionError(errors.New("no such host")))
	assert.False(t, isConnectionError(errors.New("quota exceeded")))
}

func TestIsMCPProtocolError(t *testing.T) {
	assert.True(t, isMCPProtocolError(errors.New("parse error at offset 3")))
	assert.False(t, isMCPProtocolError(errors.New("connection refused")))
}
