// Package plugins 包含元素查询相关的工具实现
//
// 每个工具都实现 tools.Tool 接口，结果为 JSON 文本，由 RegisterPlugins 统一注册。
package plugins

import (
	"encoding/json"

	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// RegisterPlugins 把所有元素工具注册到工具管理器
func RegisterPlugins(manager tools.ToolManager, table *periodictable.Table) error {
	all := []tools.Tool{
		NewElementLookupTool(table),
		NewElementRangeTool(table),
		NewElementFilterTool(table),
		NewElementCategoryTool(table),
		NewElementSearchTool(table),
		NewTableStatsTool(table),
		NewRuntimeInfoTool(),
	}
	for _, tool := range all {
		if err := manager.RegisterTool(tool); err != nil {
			return err
		}
	}
	util.Debugw("插件注册完成", map[string]any{"tools": len(all)})
	return nil
}

// marshalResult 把工具结果序列化为缩进 JSON
func marshalResult(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", util.WrapToolError("结果序列化失败", err)
	}
	return string(data), nil
}

// elementList 工具返回的元素列表
type elementList struct {
	Count    int            `json:"count"`
	Elements []element.Flat `json:"elements"`
}

func newElementList(els []*element.Element) elementList {
	flat := make([]element.Flat, 0, len(els))
	for _, e := range els {
		flat = append(flat, e.Flatten())
	}
	return elementList{Count: len(flat), Elements: flat}
}

func names(els []*element.Element) []string {
	out := make([]string, 0, len(els))
	for _, e := range els {
		out = append(out, e.Name())
	}
	return out
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}
