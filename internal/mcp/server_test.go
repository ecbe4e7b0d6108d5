package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"ptable/internal/config"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/tools/plugins"
	"ptable/internal/util"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := periodictable.Default()
	if err != nil {
		t.Fatalf("加载周期表失败: %v", err)
	}
	manager := tools.NewToolManager()
	if err := plugins.RegisterPlugins(manager, table); err != nil {
		t.Fatalf("注册插件失败: %v", err)
	}
	server, err := NewServer(manager, config.DefaultConfig().MCP)
	if err != nil {
		t.Fatalf("创建MCP服务失败: %v", err)
	}
	return server
}

func TestNewServerRegistersTools(t *testing.T) {
	server := newTestServer(t)

	names := server.ToolNames()
	if len(names) != 7 {
		t.Fatalf("期望 7 个工具，实际为: %v", names)
	}
	if names[0] != "element_category" {
		t.Errorf("工具应按名称排序，实际首个为: %s", names[0])
	}
}

func TestCallTool(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	res := server.CallTool(ctx, "element_lookup", map[string]any{"token": "Hg"})
	if res.IsError {
		t.Fatalf("查找失败: %s", res.Text)
	}
	var flat map[string]any
	if err := json.Unmarshal([]byte(res.Text), &flat); err != nil {
		t.Fatalf("解析结果失败: %v", err)
	}
	if flat["name"] != "mercury" || flat["state"] != "liquid" {
		t.Errorf("期望 mercury/liquid，实际为: %v/%v", flat["name"], flat["state"])
	}

	res = server.CallTool(ctx, "element_lookup", map[string]any{"token": "Xx"})
	if !res.IsError || !strings.Contains(res.Text, "ELEMENT_NOT_FOUND") {
		t.Errorf("期望 ELEMENT_NOT_FOUND 错误结果，实际为: %+v", res)
	}

	res = server.CallTool(ctx, "no_such_tool", nil)
	if !res.IsError || !strings.Contains(res.Text, "TOOL_NOT_FOUND") {
		t.Errorf("期望 TOOL_NOT_FOUND 错误结果，实际为: %+v", res)
	}
}

func TestToSchema(t *testing.T) {
	schema, err := toSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"token": map[string]any{"description": "element"},
		},
		"required": []string{"token"},
	})
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if schema.Type != "object" || len(schema.Required) != 1 || schema.Properties["token"] == nil {
		t.Errorf("schema 转换不正确: %+v", schema)
	}

	empty, err := toSchema(nil)
	if err != nil || empty.Type != "object" {
		t.Errorf("空参数应得到 object schema，实际为: %+v %v", empty, err)
	}
}

func TestInMemorySession(t *testing.T) {
	server := newTestServer(t)
	ctx := context.Background()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport)
	if err != nil {
		t.Fatalf("建立服务端会话失败: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "ptable-test", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("客户端连接失败: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "element_lookup",
		Arguments: map[string]any{"token": 26},
	})
	if err != nil {
		t.Fatalf("调用工具失败: %v", err)
	}
	if result.IsError || len(result.Content) == 0 {
		t.Fatalf("期望成功结果，实际为: %+v", result)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || !strings.Contains(text.Text, `"name": "iron"`) {
		t.Errorf("期望返回 iron，实际为: %+v", result.Content[0])
	}

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "element_lookup",
		Arguments: map[string]any{"token": "kryptonite"},
	})
	if err != nil {
		t.Fatalf("调用工具失败: %v", err)
	}
	text, ok = result.Content[0].(*mcp.TextContent)
	if !result.IsError || !ok || !strings.Contains(text.Text, "ELEMENT_NOT_FOUND") {
		t.Errorf("期望 ELEMENT_NOT_FOUND 错误结果，实际为: %+v", result)
	}
}

func TestDecodeArguments(t *testing.T) {
	args, err := decodeArguments(json.RawMessage(`{"token": 26, "unit": "c"}`))
	if err != nil {
		t.Fatalf("解码参数失败: %v", err)
	}
	if args["token"] != float64(26) || args["unit"] != "c" {
		t.Errorf("期望 token=26 unit=c，实际为: %v", args)
	}

	for _, raw := range []any{nil, json.RawMessage(nil), json.RawMessage("null")} {
		args, err := decodeArguments(raw)
		if err != nil || args == nil || len(args) != 0 {
			t.Errorf("%v: 期望空参数，实际为: %v %v", raw, args, err)
		}
	}

	direct := map[string]any{"start": 3}
	if args, err := decodeArguments(direct); err != nil || args["start"] != 3 {
		t.Errorf("期望原样返回 map，实际为: %v %v", args, err)
	}

	for _, raw := range []any{json.RawMessage(`[1, 2]`), json.RawMessage(`{`), 42} {
		_, err := decodeArguments(raw)
		if !util.IsErrorCode(err, util.ErrCodeInvalidArgument) {
			t.Errorf("%v: 期望 INVALID_ARGUMENT，实际为: %v", raw, err)
		}
	}
}
