// Package llm wraps the gRPC connection to the model sidecar. The sidecar
// owns provider SDKs and credentials; this package owns the shared rate and
// concurrency budget and exposes typed streaming chunks.
package llm

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	llmv1 "github.com/trilogy-group/nexus-agents/proto"
)

// Message is one turn of a completion conversation.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// GenerateInput describes a single completion call.
type GenerateInput struct {
	TaskID      string
	OperationID string

	// Role selects the configured model: reasoning for planning and
	// synthesis, task for high-volume fan-out calls.
	Role config.ModelRole

	Messages []Message

	// JSONOutput requests application/json structured output.
	JSONOutput bool
}

// Chunk is a typed streaming fragment from the sidecar.
type Chunk interface{ isChunk() }

// TextChunk carries a response text delta.
type TextChunk struct {
	Content string
}

// ThinkingChunk carries a reasoning-trace delta (not part of the answer).
type ThinkingChunk struct {
	Content string
}

// UsageChunk carries token accounting, sent once near the end of a stream.
type UsageChunk struct {
	InputTokens    int
	OutputTokens   int
	TotalTokens    int
	ThinkingTokens int
}

// ErrorChunk carries a sidecar-reported failure.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (*TextChunk) isChunk()     {}
func (*ThinkingChunk) isChunk() {}
func (*UsageChunk) isChunk()    {}
func (*ErrorChunk) isChunk()    {}

// CallError is returned by Complete when the sidecar reports a failure.
// Retryable mirrors the sidecar's classification (rate limits, transient
// provider errors) and feeds the coordinator's retry policy.
type CallError struct {
	Message   string
	Code      string
	Retryable bool
}

func (e *CallError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("llm call failed (%s): %s", e.Code, e.Message)
	}
	return "llm call failed: " + e.Message
}

// Completion is the collected result of a Complete call.
type Completion struct {
	Text  string
	Usage UsageChunk
}

// Client wraps the gRPC connection to the LLM sidecar.
// Safe for concurrent use; all calls share one RPS limiter and one
// concurrency semaphore so fan-out phases cannot starve planning calls.
type Client struct {
	conn    *grpc.ClientConn
	client  llmv1.LLMServiceClient
	cfg     *config.LLMConfig
	limiter *rate.Limiter
	sem     *semaphore.Weighted
}

// NewClient creates a new LLM client from configuration.
func NewClient(cfg *config.LLMConfig) (*Client, error) {
	conn, err := grpc.NewClient(cfg.ServiceAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", cfg.ServiceAddr, err)
	}
	return &Client{
		conn:    conn,
		client:  llmv1.NewLLMServiceClient(conn),
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), 1),
		sem:     semaphore.NewWeighted(int64(cfg.Concurrency)),
	}, nil
}

// Close releases the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Generate sends a conversation to the sidecar and returns a channel of
// typed chunks. The channel is closed when the stream ends. The call blocks
// until the shared rate and concurrency budget admits it.
func (c *Client) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("llm rate limit wait: %w", err)
	}
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("llm concurrency acquire: %w", err)
	}

	stream, err := c.client.Complete(ctx, c.toProtoRequest(input))
	if err != nil {
		c.sem.Release(1)
		return nil, fmt.Errorf("gRPC Complete call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer c.sem.Release(1)
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoResponse(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Complete runs a completion to the end and returns the collected text and
// usage. Thinking deltas are discarded. A sidecar-reported error surfaces
// as *CallError so callers can inspect retryability.
func (c *Client) Complete(ctx context.Context, input *GenerateInput) (*Completion, error) {
	callCtx := ctx
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	chunks, err := c.Generate(callCtx, input)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	result := &Completion{}
	for chunk := range chunks {
		switch ch := chunk.(type) {
		case *TextChunk:
			sb.WriteString(ch.Content)
		case *UsageChunk:
			result.Usage = *ch
		case *ErrorChunk:
			return nil, &CallError{Message: ch.Message, Code: ch.Code, Retryable: ch.Retryable}
		}
	}
	if err := callCtx.Err(); err != nil {
		return nil, fmt.Errorf("llm completion interrupted: %w", err)
	}

	result.Text = sb.String()
	return result, nil
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func (c *Client) toProtoRequest(input *GenerateInput) *llmv1.CompleteRequest {
	req := &llmv1.CompleteRequest{
		TaskId:      input.TaskID,
		OperationId: input.OperationID,
		Model:       c.cfg.ModelFor(input.Role),
		Messages:    toProtoMessages(input.Messages),
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}
	if input.JSONOutput {
		req.ResponseMimeType = "application/json"
	}
	return req
}

func toProtoMessages(msgs []Message) []*llmv1.Message {
	out := make([]*llmv1.Message, len(msgs))
	for i, m := range msgs {
		out[i] = &llmv1.Message{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return out
}

func fromProtoResponse(resp *llmv1.CompleteResponse) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.CompleteResponse_Text:
		return &TextChunk{Content: c.Text.Content}
	case *llmv1.CompleteResponse_Thinking:
		return &ThinkingChunk{Content: c.Thinking.Content}
	case *llmv1.CompleteResponse_Usage:
		return &UsageChunk{
			InputTokens:    int(c.Usage.InputTokens),
			OutputTokens:   int(c.Usage.OutputTokens),
			TotalTokens:    int(c.Usage.TotalTokens),
			ThinkingTokens: int(c.Usage.ThinkingTokens),
		}
	case *llmv1.CompleteResponse_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
