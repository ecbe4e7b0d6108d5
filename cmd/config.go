package cmd

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"ptable/internal/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "配置管理",
	Long:  "查看 ptable 的配置文件和生效的设置",
}

// configShowCmd represents the show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "显示当前配置",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showConfig(cmd)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}

// showConfig 以 TOML 形式输出生效的配置
func showConfig(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := configPath
	if path == "" {
		path = "(默认路径)"
	}
	fmt.Fprintf(out, "# 配置文件: %s\n", path)
	return toml.NewEncoder(out).Encode(config.GetConfig())
}
