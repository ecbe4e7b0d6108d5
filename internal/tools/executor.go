package tools

import (
	"context"
	"fmt"
	"time"

	"ptable/internal/util"
)

// ToolCallExecutor 为工具调用增加超时控制
type ToolCallExecutor struct {
	manager ToolManager
	timeout time.Duration
}

// NewToolCallExecutor 创建执行器，timeout <= 0 表示不限时
func NewToolCallExecutor(manager ToolManager, timeout time.Duration) *ToolCallExecutor {
	return &ToolCallExecutor{manager: manager, timeout: timeout}
}

type callResult struct {
	text string
	err  error
}

// Execute 执行工具调用，超时或上下文取消时立即返回
func (e *ToolCallExecutor) Execute(ctx context.Context, call ToolCall) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", util.WrapToolError("工具调用已取消", err)
	}
	if e.timeout <= 0 {
		return e.manager.ExecuteToolCall(ctx, call)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		text, err := e.manager.ExecuteToolCall(timeoutCtx, call)
		done <- callResult{text: text, err: err}
	}()

	select {
	case res := <-done:
		return res.text, res.err
	case <-timeoutCtx.Done():
		if ctx.Err() != nil {
			return "", util.WrapToolError("工具调用已取消", ctx.Err())
		}
		util.Warnw("工具执行超时", map[string]any{
			"tool_name": call.Name,
			"call_id":   call.ID,
			"timeout":   e.timeout,
		})
		return "", util.NewToolErrorWithDetails("工具执行超时",
			fmt.Sprintf("工具 %s 执行超过 %s", call.Name, e.timeout))
	}
}
