package tools

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ptable/internal/util"
	"ptable/pkg/registry"
)

// ToolRegistry 工具注册表
type ToolRegistry struct {
	tools *registry.BaseRegistry[Tool]
}

// NewToolRegistry 创建新的工具注册表
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: registry.NewBaseRegistry[Tool](func(t Tool) string { return t.Name() }),
	}
}

// RegisterTool 注册工具，同名工具只能注册一次
func (r *ToolRegistry) RegisterTool(tool Tool) error {
	if tool == nil {
		return util.NewInvalidParamError("tool", "工具不能为空")
	}

	name := tool.Name()
	if name == "" {
		return util.NewInvalidParamError("name", "工具名称不能为空")
	}

	if err := r.tools.Register(tool); err != nil {
		if errors.Is(err, registry.ErrDuplicateID) {
			return util.NewErrorWithDetail(util.ErrCodeInvalidArgument, "工具已存在",
				fmt.Sprintf("工具名称: %s", name))
		}
		return util.WrapError(util.ErrCodeInternalErr, "工具注册失败", err)
	}

	util.Debugw("工具注册成功", map[string]any{
		"tool_name": name,
	})
	return nil
}

// GetTool 根据名称获取工具
func (r *ToolRegistry) GetTool(name string) (Tool, error) {
	if name == "" {
		return nil, util.NewInvalidParamError("name", "工具名称不能为空")
	}

	tool, ok := r.tools.Get(name)
	if !ok {
		return nil, util.NewToolNotFoundError(name)
	}
	return tool, nil
}

// GetAllTools 获取所有工具，按名称排序
func (r *ToolRegistry) GetAllTools() []Tool {
	all := r.tools.List()
	slices.SortFunc(all, func(a, b Tool) int { return strings.Compare(a.Name(), b.Name()) })
	return all
}

// GetToolDefinitions 获取所有工具定义
func (r *ToolRegistry) GetToolDefinitions() []ToolDefinition {
	all := r.GetAllTools()
	definitions := make([]ToolDefinition, 0, len(all))
	for _, tool := range all {
		definitions = append(definitions, ToolDefinition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return definitions
}

// Count 已注册工具数量
func (r *ToolRegistry) Count() int {
	return r.tools.Len()
}

// Has 是否存在指定名称的工具
func (r *ToolRegistry) Has(name string) bool {
	return r.tools.Contains(name)
}
