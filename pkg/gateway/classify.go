package gateway

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"

	"github.com/trilogy-group/nexus-agents/pkg/llm"
)

// transientIndicators mark provider error text as retryable: rate limits,
// upstream 5xx and timeouts. Everything else is permanent by default — an
// unknown error re-sent to a paid provider is worse than a failed operation.
var transientIndicators = []string{
	"429",
	"rate limit",
	"too many requests",
	"timeout",
	"timed out",
	"deadline exceeded",
	"500",
	"502",
	"503",
	"504",
	"unavailable",
	"overloaded",
	"internal server error",
	"connection refused",
	"connection reset",
	"broken pipe",
	"temporarily",
}

// classifyProviderError maps a provider call error to transient or permanent.
// The caller handles nil errors and degraded providers before classification.
func classifyProviderError(err error) Status {
	if err == nil {
		return StatusOK
	}

	// The caller gave up — not the provider's fault, but retrying a
	// cancelled call is pointless.
	if errors.Is(err, context.Canceled) {
		return StatusPermanent
	}

	// Per-call deadline: the provider was too slow, a fresh call may succeed.
	if errors.Is(err, context.DeadlineExceeded) {
		return StatusTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return StatusTransient
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return StatusTransient
	}

	msg := strings.ToLower(err.Error())
	for _, indicator := range transientIndicators {
		if strings.Contains(msg, indicator) {
			return StatusTransient
		}
	}

	return StatusPermanent
}

// Classify maps an arbitrary external-call error to its result status class.
// Exposed for the coordinator, which applies the same transient/permanent
// split to errors surfaced by operation functions. The LLM sidecar's own
// retryability verdict wins when the error carries one.
func Classify(err error) Status {
	return classifyLLMError(err)
}

// classifyLLMError maps an LLM sidecar error to transient or permanent.
// The sidecar's own retryability verdict wins when present.
func classifyLLMError(err error) Status {
	var callErr *llm.CallError
	if errors.As(err, &callErr) {
		if callErr.Retryable {
			return StatusTransient
		}
		return StatusPermanent
	}
	return classifyProviderError(err)
}

// toolError wraps the text of an adapter IsError result so it can travel
// through classification like any other error.
type toolError struct {
	provider string
	text     string
}

func (e *toolError) Error() string {
	return "provider " + e.provider + " tool error: " + e.text
}
