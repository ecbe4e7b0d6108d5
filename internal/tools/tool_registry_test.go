package tools

import (
	"testing"

	"ptable/internal/util"
)

func TestNewToolRegistry(t *testing.T) {
	registry := NewToolRegistry()

	if registry.Count() != 0 {
		t.Errorf("新注册表应该为空，实际工具数量: %d", registry.Count())
	}
}

func TestToolRegistry_RegisterTool(t *testing.T) {
	registry := NewToolRegistry()
	tool := createMockTool("test_tool", "测试工具")

	if err := registry.RegisterTool(tool); err != nil {
		t.Errorf("注册工具时发生错误: %v", err)
	}
	if registry.Count() != 1 {
		t.Errorf("期望工具数量为1，实际为: %d", registry.Count())
	}
	if !registry.Has("test_tool") {
		t.Error("注册后应该能找到工具")
	}

	// 重复注册
	err := registry.RegisterTool(tool)
	if err == nil {
		t.Error("重复注册应该返回错误")
	}
	if !util.IsErrorCode(err, util.ErrCodeInvalidArgument) {
		t.Errorf("期望错误代码 %s，实际为: %s", util.ErrCodeInvalidArgument, util.GetErrorCode(err))
	}

	// 空工具和空名称
	if err := registry.RegisterTool(nil); err == nil {
		t.Error("注册空工具应该返回错误")
	}
	if err := registry.RegisterTool(createMockTool("", "无名")); err == nil {
		t.Error("注册空名称工具应该返回错误")
	}
}

func TestToolRegistry_GetTool(t *testing.T) {
	registry := NewToolRegistry()
	registry.RegisterTool(createMockTool("test_tool", "测试工具"))

	tool, err := registry.GetTool("test_tool")
	if err != nil {
		t.Fatalf("获取工具时发生错误: %v", err)
	}
	if tool.Name() != "test_tool" {
		t.Errorf("期望工具名称为 'test_tool'，实际为: %s", tool.Name())
	}

	_, err = registry.GetTool("nonexistent")
	if !util.IsErrorCode(err, util.ErrCodeToolNotFound) {
		t.Errorf("期望错误代码 %s，实际为: %v", util.ErrCodeToolNotFound, err)
	}

	if _, err := registry.GetTool(""); err == nil {
		t.Error("空名称应该返回错误")
	}
}

func TestToolRegistry_SortedListing(t *testing.T) {
	registry := NewToolRegistry()
	for _, name := range []string{"gamma", "alpha", "beta"} {
		registry.RegisterTool(createMockTool(name, name))
	}

	tools := registry.GetAllTools()
	want := []string{"alpha", "beta", "gamma"}
	for i, tool := range tools {
		if tool.Name() != want[i] {
			t.Errorf("位置 %d 期望 %s，实际为: %s", i, want[i], tool.Name())
		}
	}

	definitions := registry.GetToolDefinitions()
	if len(definitions) != 3 || definitions[0].Name != "alpha" {
		t.Errorf("工具定义应按名称排序，实际为: %+v", definitions)
	}
	if definitions[0].Parameters["type"] != "object" {
		t.Errorf("期望参数 schema 类型为 object，实际为: %v", definitions[0].Parameters["type"])
	}
}
