package tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"ptable/internal/util"
)

func TestDefaultToolManager_RegisterAndGet(t *testing.T) {
	manager := NewToolManager()

	if len(manager.GetTools()) != 0 {
		t.Errorf("新管理器应该没有工具，实际数量: %d", len(manager.GetTools()))
	}

	if err := manager.RegisterTool(createMockTool("test_tool", "测试工具")); err != nil {
		t.Fatalf("注册工具时发生错误: %v", err)
	}

	tool, err := manager.GetTool("test_tool")
	if err != nil {
		t.Fatalf("获取工具时发生错误: %v", err)
	}
	if tool.Description() != "测试工具" {
		t.Errorf("期望工具描述为 '测试工具'，实际为: %s", tool.Description())
	}

	if len(manager.GetToolDefinitions()) != 1 {
		t.Errorf("期望定义数量为1，实际为: %d", len(manager.GetToolDefinitions()))
	}
}

func TestDefaultToolManager_ExecuteToolCall(t *testing.T) {
	manager := NewToolManager()
	manager.RegisterTool(createMockTool("echo", "回显"))

	result, err := manager.ExecuteToolCall(context.Background(), ToolCall{
		ID:        "call_1",
		Name:      "echo",
		Arguments: map[string]any{"input": "hello"},
	})
	if err != nil {
		t.Fatalf("执行工具调用时发生错误: %v", err)
	}
	if result != "hello" {
		t.Errorf("期望结果为 'hello'，实际为: %s", result)
	}

	// nil 参数按空参数处理
	result, err = manager.ExecuteToolCall(context.Background(), ToolCall{Name: "echo"})
	if err != nil || result != "ok" {
		t.Errorf("期望结果为 'ok'，实际为: %s, %v", result, err)
	}
}

func TestDefaultToolManager_ExecuteToolCallErrors(t *testing.T) {
	manager := NewToolManager()

	_, err := manager.ExecuteToolCall(context.Background(), ToolCall{Name: "missing"})
	if !util.IsErrorCode(err, util.ErrCodeToolNotFound) {
		t.Errorf("期望错误代码 %s，实际为: %v", util.ErrCodeToolNotFound, err)
	}

	failing := createMockTool("failing", "总是失败")
	failing.err = errors.New("boom")
	manager.RegisterTool(failing)

	_, err = manager.ExecuteToolCall(context.Background(), ToolCall{Name: "failing"})
	if util.GetErrorCode(err) != util.ErrCodeToolExecutionFailed {
		t.Errorf("期望错误代码 %s，实际为: %s", util.ErrCodeToolExecutionFailed, util.GetErrorCode(err))
	}

	// 参数和查找错误保留原始代码
	notFound := createMockTool("not_found", "元素不存在")
	notFound.err = util.NewError(util.ErrCodeElementNotFound, "元素不存在")
	manager.RegisterTool(notFound)

	_, err = manager.ExecuteToolCall(context.Background(), ToolCall{Name: "not_found"})
	if util.GetErrorCode(err) != util.ErrCodeElementNotFound {
		t.Errorf("期望错误代码 %s，实际为: %s", util.ErrCodeElementNotFound, util.GetErrorCode(err))
	}
}

func TestToolCallExecutor_Timeout(t *testing.T) {
	manager := NewToolManager()
	slow := createMockTool("slow", "慢工具")
	slow.delay = time.Second
	manager.RegisterTool(slow)
	manager.RegisterTool(createMockTool("fast", "快工具"))

	executor := NewToolCallExecutor(manager, 20*time.Millisecond)

	_, err := executor.Execute(context.Background(), ToolCall{Name: "slow"})
	if !util.IsErrorCode(err, util.ErrCodeToolExecutionFailed) {
		t.Errorf("期望超时错误代码 %s，实际为: %v", util.ErrCodeToolExecutionFailed, err)
	}

	result, err := executor.Execute(context.Background(), ToolCall{Name: "fast", Arguments: map[string]any{"input": "x"}})
	if err != nil || result != "x" {
		t.Errorf("期望结果为 'x'，实际为: %s, %v", result, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := executor.Execute(ctx, ToolCall{Name: "fast"}); err == nil {
		t.Error("已取消的上下文应该返回错误")
	}

	unlimited := NewToolCallExecutor(manager, 0)
	if result, err := unlimited.Execute(context.Background(), ToolCall{Name: "fast"}); err != nil || result != "ok" {
		t.Errorf("不限时执行期望 'ok'，实际为: %s, %v", result, err)
	}
}
