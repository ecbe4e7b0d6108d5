package tools

import (
	"context"
	"fmt"
	"slices"
	"time"

	"ptable/internal/util"
)

// ToolManager 工具管理器接口
type ToolManager interface {
	// RegisterTool 注册工具
	RegisterTool(tool Tool) error

	// GetTools 获取所有工具
	GetTools() []Tool

	// GetTool 根据名称获取工具
	GetTool(name string) (Tool, error)

	// ExecuteToolCall 执行工具调用
	ExecuteToolCall(ctx context.Context, call ToolCall) (string, error)

	// GetToolDefinitions 获取工具定义列表
	GetToolDefinitions() []ToolDefinition
}

// 调用方需要区分的错误代码，执行失败时不再包装
var passthroughCodes = []string{
	util.ErrCodeInvalidArgument,
	util.ErrCodeInvalidArgumentType,
	util.ErrCodeElementNotFound,
	util.ErrCodeToolNotFound,
}

// DefaultToolManager 默认工具管理器实现
type DefaultToolManager struct {
	registry *ToolRegistry // 工具注册表
}

// NewToolManager 创建新的工具管理器
func NewToolManager() *DefaultToolManager {
	return &DefaultToolManager{
		registry: NewToolRegistry(),
	}
}

// RegisterTool 注册工具
func (m *DefaultToolManager) RegisterTool(tool Tool) error {
	return m.registry.RegisterTool(tool)
}

// GetTools 获取所有工具
func (m *DefaultToolManager) GetTools() []Tool {
	return m.registry.GetAllTools()
}

// GetTool 根据名称获取工具
func (m *DefaultToolManager) GetTool(name string) (Tool, error) {
	return m.registry.GetTool(name)
}

// GetToolDefinitions 获取工具定义列表
func (m *DefaultToolManager) GetToolDefinitions() []ToolDefinition {
	return m.registry.GetToolDefinitions()
}

// ExecuteToolCall 执行工具调用
func (m *DefaultToolManager) ExecuteToolCall(ctx context.Context, call ToolCall) (string, error) {
	startTime := time.Now()

	util.Debugw("开始执行工具调用", map[string]any{
		"tool_name": call.Name,
		"call_id":   call.ID,
		"arguments": call.Arguments,
	})

	tool, err := m.registry.GetTool(call.Name)
	if err != nil {
		util.LogErrorWithFields(err, "工具获取失败", map[string]any{
			"tool_name": call.Name,
			"call_id":   call.ID,
		})
		return "", err
	}

	args := call.Arguments
	if args == nil {
		args = map[string]any{}
	}

	result, err := tool.Execute(ctx, args)
	executionTime := time.Since(startTime)

	if err != nil {
		util.LogErrorWithFields(err, "工具执行失败", map[string]any{
			"tool_name":      call.Name,
			"call_id":        call.ID,
			"execution_time": executionTime,
		})

		if slices.Contains(passthroughCodes, util.GetErrorCode(err)) {
			return "", err
		}
		return "", util.WrapError(util.ErrCodeToolExecutionFailed,
			fmt.Sprintf("工具 %s 执行失败", call.Name), err)
	}

	util.Infow("工具执行成功", map[string]any{
		"tool_name":      call.Name,
		"call_id":        call.ID,
		"execution_time": executionTime,
		"result_length":  len(result),
	})

	return result, nil
}
