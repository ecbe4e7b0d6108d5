package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"ptable/internal/tools"
	"ptable/internal/util"

	"github.com/google/jsonschema-go/jsonschema"
)

// ToolResult 一次工具调用的结果，IsError 时 Text 为错误信息
type ToolResult struct {
	Text    string
	IsError bool
}

// dispatcher 把 MCP 工具调用转发给工具管理器，不依赖具体传输
type dispatcher struct {
	executor *tools.ToolCallExecutor
	calls    atomic.Int64
}

func newDispatcher(manager tools.ToolManager, timeout time.Duration) *dispatcher {
	return &dispatcher{executor: tools.NewToolCallExecutor(manager, timeout)}
}

// CallTool 执行工具调用，错误转换为 IsError 结果而不是协议错误
func (d *dispatcher) CallTool(ctx context.Context, name string, args map[string]any) ToolResult {
	id := "mcp-" + strconv.FormatInt(d.calls.Add(1), 10)
	call := tools.ToolCall{ID: id, Name: name, Arguments: args}

	text, err := d.executor.Execute(ctx, call)
	if err != nil {
		util.Warnw("MCP工具调用失败", map[string]any{
			"tool_name":  name,
			"error_code": util.GetErrorCode(err),
		})
		return ToolResult{Text: err.Error(), IsError: true}
	}
	return ToolResult{Text: text}
}

// toSchema 把工具参数 schema 转换为 jsonschema.Schema
func toSchema(params map[string]any) (*jsonschema.Schema, error) {
	if params == nil {
		params = map[string]any{"type": "object"}
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	if schema.Type == "" {
		schema.Type = "object"
	}
	return &schema, nil
}

// decodeArguments 服务端收到的参数是未解码的 JSON，进程内调用时也可能直接是 map
func decodeArguments(raw any) (map[string]any, error) {
	switch v := raw.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case json.RawMessage:
		if len(v) == 0 || string(v) == "null" {
			return map[string]any{}, nil
		}
		var args map[string]any
		if err := json.Unmarshal(v, &args); err != nil {
			return nil, util.NewInvalidParamError("arguments", "工具参数必须是 JSON 对象: "+err.Error())
		}
		return args, nil
	default:
		return nil, util.NewInvalidParamError("arguments", fmt.Sprintf("不支持的参数类型 %T", raw))
	}
}
