package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/config"
	"ptable/internal/tools"
)

// toolsCmd 元素查询工具
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "元素查询工具",
	Long:  "列出和调用通过 MCP 暴露的元素查询工具",
}

var toolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出可用工具",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, def := range toolManager.GetToolDefinitions() {
			fmt.Fprintf(out, "  • %s\n    %s\n", def.Name, def.Description)
			if verbose {
				schema, _ := json.MarshalIndent(def.Parameters, "    ", "  ")
				fmt.Fprintf(out, "    %s\n", schema)
			}
		}
		return nil
	},
}

var toolsCallCmd = &cobra.Command{
	Use:     "call [tool_name] [arguments_json]",
	Short:   "调用工具",
	Example: `  ptable tools call element_lookup '{"token": "Fe"}'` + "\n" + `  ptable tools call table_stats '{"stat": "densest"}'`,
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		arguments := map[string]any{}
		if len(args) == 2 {
			if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
				return errors.WrapErrorWithDetails(errors.ErrCodeInvalidArgument, "工具参数不是有效的 JSON 对象", err, args[1])
			}
		}

		timeout := time.Duration(config.GetConfig().MCP.Timeout) * time.Second
		executor := tools.NewToolCallExecutor(toolManager, timeout)
		result, err := executor.Execute(context.Background(), tools.ToolCall{
			ID:        "cli",
			Name:      args[0],
			Arguments: arguments,
		})
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
		return err
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	toolsCmd.AddCommand(toolsListCmd, toolsCallCmd)
}
