package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trilogy-group/nexus-agents/pkg/config"
	llmv1 "github.com/trilogy-group/nexus-agents/proto"
)

func TestToProtoMessages(t *testing.T) {
	messages := []Message{
		{Role: RoleSystem, Content: "You are a research analyst"},
		{Role: RoleUser, Content: "Summarize this source"},
		{Role: RoleAssistant, Content: "Here is the summary"},
	}

	result := toProtoMessages(messages)
	require.Len(t, result, 3)

	assert.Equal(t, "system", result[0].Role)
	assert.Equal(t, "You are a research analyst", result[0].Content)
	assert.Equal(t, "user", result[1].Role)
	assert.Equal(t, "assistant", result[2].Role)
}

func TestToProtoRequest(t *testing.T) {
	temp := float32(0.2)
	maxTokens := int32(4096)
	c := &Client{cfg: &config.LLMConfig{
		ReasoningModel: "gemini-2.5-pro",
		TaskModel:      "gemini-2.5-flash",
		Temperature:    &temp,
		MaxTokens:      &maxTokens,
	}}

	t.Run("reasoning role resolves reasoning model", func(t *testing.T) {
		req := c.toProtoRequest(&GenerateInput{
			TaskID:      "task-1",
			OperationID: "op-1",
			Role:        config.ModelRoleReasoning,
			Messages:    []Message{{Role: RoleUser, Content: "plan"}},
		})
		assert.Equal(t, "task-1", req.TaskId)
		assert.Equal(t, "op-1", req.OperationId)
		assert.Equal(t, "gemini-2.5-pro", req.Model)
		require.NotNil(t, req.Temperature)
		assert.Equal(t, float32(0.2), *req.Temperature)
		require.NotNil(t, req.MaxTokens)
		assert.Equal(t, int32(4096), *req.MaxTokens)
		assert.Empty(t, req.ResponseMimeType)
	})

	t.Run("task role resolves task model", func(t *testing.T) {
		req := c.toProtoRequest(&GenerateInput{
			Role:     config.ModelRoleTask,
			Messages: []Message{{Role: RoleUser, Content: "summarize"}},
		})
		assert.Equal(t, "gemini-2.5-flash", req.Model)
	})

	t.Run("JSON output sets mime type", func(t *testing.T) {
		req := c.toProtoRequest(&GenerateInput{
			Role:       config.ModelRoleReasoning,
			JSONOutput: true,
		})
		assert.Equal(t, "application/json", req.ResponseMimeType)
	})
}

func TestFromProtoResponse(t *testing.T) {
	t.Run("text delta", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{
			Content: &llmv1.CompleteResponse_Text{
				Text: &llmv1.TextDelta{Content: "hello"},
			},
		}
		chunk := fromProtoResponse(resp)
		tc, ok := chunk.(*TextChunk)
		require.True(t, ok)
		assert.Equal(t, "hello", tc.Content)
	})

	t.Run("thinking delta", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{
			Content: &llmv1.CompleteResponse_Thinking{
				Thinking: &llmv1.ThinkingDelta{Content: "hmm"},
			},
		}
		chunk := fromProtoResponse(resp)
		tc, ok := chunk.(*ThinkingChunk)
		require.True(t, ok)
		assert.Equal(t, "hmm", tc.Content)
	})

	t.Run("usage info", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{
			Content: &llmv1.CompleteResponse_Usage{
				Usage: &llmv1.UsageInfo{
					InputTokens:    100,
					OutputTokens:   200,
					TotalTokens:    300,
					ThinkingTokens: 50,
				},
			},
		}
		chunk := fromProtoResponse(resp)
		uc, ok := chunk.(*UsageChunk)
		require.True(t, ok)
		assert.Equal(t, 100, uc.InputTokens)
		assert.Equal(t, 200, uc.OutputTokens)
		assert.Equal(t, 300, uc.TotalTokens)
		assert.Equal(t, 50, uc.ThinkingTokens)
	})

	t.Run("error info", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{
			Content: &llmv1.CompleteResponse_Error{
				Error: &llmv1.ErrorInfo{
					Message:   "rate limited",
					Code:      "429",
					Retryable: true,
				},
			},
		}
		chunk := fromProtoResponse(resp)
		ec, ok := chunk.(*ErrorChunk)
		require.True(t, ok)
		assert.Equal(t, "rate limited", ec.Message)
		assert.True(t, ec.Retryable)
	})

	t.Run("final-only response returns nil", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{IsFinal: true}
		assert.Nil(t, fromProtoResponse(resp))
	})

	t.Run("nil content non-final returns nil", func(t *testing.T) {
		resp := &llmv1.CompleteResponse{}
		assert.Nil(t, fromProtoResponse(resp))
	})
}

func TestCallError(t *testing.T) {
	t.Run("with code", func(t *testing.T) {
		err := &CallError{Message: "quota exceeded", Code: "429", Retryable: true}
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "quota exceeded")
	})

	t.Run("without code", func(t *testing.T) {
		err := &CallError{Message: "boom"}
		assert.Equal(t, "llm call failed: boom", err.Error())
	})
}
