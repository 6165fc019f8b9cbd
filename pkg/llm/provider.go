package llm

import "context"

// Provider produces a single chat completion, optionally calling tools.
type Provider interface {
	Complete(ctx context.Context, messages []Message, tools []Tool) (Completion, error)
}

// Completion is the model's reply: free text, tool call requests, or both.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

type Message struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	Name       string `json:"name,omitempty"`
	ToolCallID string `json:"tool_call_id,omitempty"`
}

type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters"`
}

type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}
