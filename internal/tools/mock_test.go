package tools

import (
	"context"
	"time"
)

// MockTool 测试用工具
type MockTool struct {
	name        string
	description string
	parameters  map[string]any
	result      string
	err         error
	delay       time.Duration
}

func (m *MockTool) Name() string               { return m.name }
func (m *MockTool) Description() string        { return m.description }
func (m *MockTool) Parameters() map[string]any { return m.parameters }

func (m *MockTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if m.err != nil {
		return "", m.err
	}
	if m.result != "" {
		return m.result, nil
	}
	if input, ok := args["input"].(string); ok {
		return input, nil
	}
	return "ok", nil
}

func createMockTool(name, description string) *MockTool {
	return &MockTool{
		name:        name,
		description: description,
		parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"input": map[string]any{
					"type":        "string",
					"description": "输入参数",
				},
			},
			"required": []string{"input"},
		},
	}
}
