package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/config"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/tools/plugins"
	"ptable/internal/util"
)

var (
	// configPath 是配置文件的路径
	configPath string
	// verbose 标志用于启用详细输出
	verbose bool
	// table 是全局的元素注册表
	table *periodictable.Table
	// toolManager 管理所有元素查询工具
	toolManager tools.ToolManager
)

// rootCmd 代表没有调用子命令时的基础命令
var rootCmd = &cobra.Command{
	Use:   "ptable",
	Short: "元素周期表查询工具",
	Long: `ptable 是一个内存中的元素周期表注册表，
支持按名称、符号、原子序数查询元素，按分类和属性过滤，导出数据，
以及通过 MCP 把查询能力提供给其他程序。`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeApp()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return showStatus(cmd)
	},
}

// Execute 将所有子命令添加到根命令并适当设置标志。
// 这是由 main.main() 调用的。它只需要对 rootCmd 调用一次。
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "命令执行失败: %v\n", err)
		util.LogError(err, "命令执行失败")
		os.Exit(1)
	}
}

func init() {
	// 全局标志
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径 (默认: $PTABLE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "详细输出")
}

// initializeApp 初始化应用
func initializeApp() error {
	// 1. 处理配置文件路径
	if configPath == "" {
		configPath = os.Getenv("PTABLE_CONFIG")
	}

	// 2. 加载配置文件
	if err := config.LoadConfig(configPath); err != nil {
		return err
	}

	// 3. 根据verbose标志调整日志级别
	cfg := config.GetConfig()
	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}

	// 4. 初始化日志系统
	if err := util.InitLogger(logLevel, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.File); err != nil {
		return errors.WrapError(errors.ErrCodeConfigInvalid, "日志系统初始化失败", err)
	}
	util.Debugw("配置详情", map[string]any{
		"log_level":        logLevel,
		"config_path":      configPath,
		"temperature_unit": cfg.Display.TemperatureUnit,
	})

	// 5. 加载元素注册表
	var err error
	table, err = periodictable.Default()
	if err != nil {
		return errors.WrapError(errors.ErrCodeInitializationFailed, "元素注册表加载失败", err)
	}

	// 6. 初始化工具管理器和插件
	return initializeTools()
}

// initializeTools 初始化工具管理器和插件
func initializeTools() error {
	manager := tools.NewToolManager()
	if err := plugins.RegisterPlugins(manager, table); err != nil {
		return errors.WrapError(errors.ErrCodeInitializationFailed, "工具管理器初始化失败", err)
	}
	toolManager = manager

	util.Debugw("工具状态", map[string]any{
		"registered_tools": len(toolManager.GetTools()),
	})
	return nil
}

// showStatus 显示应用状态
func showStatus(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "元素周期表注册表初始化完成")
	fmt.Fprintf(out, "元素数量: %d\n", table.Len())
	fmt.Fprintf(out, "分类数量: %d\n", len(periodictable.Categories()))
	fmt.Fprintf(out, "已注册工具: %d\n", len(toolManager.GetTools()))
	fmt.Fprintf(out, "日志级别: %s\n", config.GetConfig().Logging.Level)

	if info, err := util.CollectRuntimeInfo(context.Background(), ""); err == nil {
		fmt.Fprintf(out, "进程: pid %d, 内存 %.1f MB, CPU 核心 %d\n", info.PID, info.RSSMB, info.CPUCount)
	} else {
		util.Debugw("运行时信息不可用", map[string]any{"error": err.Error()})
	}

	fmt.Fprintln(out, "\n使用 'ptable --help' 查看可用命令")
	return nil
}
