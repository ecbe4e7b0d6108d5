package mcp

import (
	"context"
	"time"

	"ptable/internal/config"
	"ptable/internal/tools"
	"ptable/internal/util"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server 通过 MCP 暴露已注册的元素工具
type Server struct {
	server     *mcp.Server
	dispatcher *dispatcher
	toolNames  []string
}

// NewServer 为管理器中的每个工具注册一个 MCP 工具
func NewServer(manager tools.ToolManager, cfg config.MCPConfig) (*Server, error) {
	timeout := time.Duration(cfg.Timeout) * time.Second
	s := &Server{
		server:     mcp.NewServer(&mcp.Implementation{Name: cfg.Name, Version: cfg.Version}, nil),
		dispatcher: newDispatcher(manager, timeout),
	}

	for _, def := range manager.GetToolDefinitions() {
		schema, err := toSchema(def.Parameters)
		if err != nil {
			return nil, util.WrapError(util.ErrCodeInitializationFailed, "工具参数 schema 转换失败", err)
		}
		s.server.AddTool(&mcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: schema,
		}, s.handler(def.Name))
		s.toolNames = append(s.toolNames, def.Name)
	}

	util.Infow("MCP服务已创建", map[string]any{
		"name":    cfg.Name,
		"version": cfg.Version,
		"tools":   len(s.toolNames),
		"timeout": timeout,
	})
	return s, nil
}

func (s *Server) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw any
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}
		var res ToolResult
		if args, err := decodeArguments(raw); err != nil {
			res = ToolResult{Text: err.Error(), IsError: true}
		} else {
			res = s.dispatcher.CallTool(ctx, name, args)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: res.Text}},
			IsError: res.IsError,
		}, nil
	}
}

// ToolNames 已暴露的工具名称
func (s *Server) ToolNames() []string {
	return append([]string(nil), s.toolNames...)
}

// CallTool 直接执行一次工具调用，与 MCP 客户端看到的结果一致
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) ToolResult {
	return s.dispatcher.CallTool(ctx, name, args)
}

// Connect 在给定传输上建立一个会话
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	session, err := s.server.Connect(ctx, transport, nil)
	if err != nil {
		return nil, util.WrapError(util.ErrCodeMCPServeFailed, "MCP会话建立失败", err)
	}
	return session, nil
}

// Serve 在标准输入输出上运行，直到客户端断开或 ctx 取消
func (s *Server) Serve(ctx context.Context) error {
	util.Infow("MCP服务开始监听标准输入输出", map[string]any{"tools": len(s.toolNames)})
	if err := s.server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return util.WrapError(util.ErrCodeMCPServeFailed, "MCP服务运行失败", err)
	}
	util.Infow("MCP服务已停止", nil)
	return nil
}
