package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ptable/internal/config"
	"ptable/internal/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP服务",
	Long:  "通过 Model Context Protocol (MCP) 把元素查询工具提供给其他程序",
}

// mcpServeCmd 在标准输入输出上运行 MCP 服务
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "在标准输入输出上运行MCP服务",
	Long: `启动 MCP 服务，通过标准输入输出与客户端通信。
日志写入标准错误，标准输出只用于协议消息。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(toolManager, config.GetConfig().MCP)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return server.Serve(ctx)
	},
}

// mcpToolsCmd 列出 MCP 服务会暴露的工具
var mcpToolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "列出MCP服务暴露的工具",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.GetConfig().MCP
		server, err := mcp.NewServer(toolManager, cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "MCP服务: %s %s (单次调用超时 %ds)\n", cfg.Name, cfg.Version, cfg.Timeout)
		for _, name := range server.ToolNames() {
			fmt.Fprintf(out, "  • %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.AddCommand(mcpServeCmd, mcpToolsCmd)
}
