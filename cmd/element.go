package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/config"
	"ptable/internal/display"
	"ptable/internal/element"
)

var (
	elementFormat string
	elementRandom bool
)

// elementCmd 查询单个元素
var elementCmd = &cobra.Command{
	Use:   "element [name|symbol|atomic_number]",
	Short: "查询单个元素",
	Long: `按名称（不区分大小写，支持 aluminum 等历史拼写）、符号或原子序数查询元素。

输出格式:
  card      彩色属性卡片（默认）
  text      纯文本摘要
  json      扁平化 JSON
  markdown  渲染后的 Markdown`,
	Example: `  ptable element iron
  ptable element Fe -f json
  ptable element 79 -u c
  ptable element --random`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var e *element.Element
		switch {
		case elementRandom:
			e = table.Random()
		case len(args) == 1:
			var err error
			if e, err = findElement(args[0]); err != nil {
				return err
			}
		default:
			return errors.NewInvalidArgumentError("缺少元素参数", "需要名称、符号、原子序数或 --random")
		}
		return printElement(cmd, e)
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
	elementCmd.Flags().StringVarP(&elementFormat, "format", "f", "card", "输出格式: card, text, json, markdown")
	elementCmd.Flags().BoolVar(&elementRandom, "random", false, "随机选择一个元素")
	elementCmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "温度单位: k, c, f (默认取配置)")
}

func printElement(cmd *cobra.Command, e *element.Element) error {
	out := cmd.OutOrStdout()
	cfg := config.GetConfig()

	switch elementFormat {
	case "card":
		unit, err := resolveUnit()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, display.Card(e, unit))
	case "text":
		fmt.Fprintln(out, e.DisplayData())
	case "json":
		text, err := e.ToJSON(cfg.Export.JSONIndent, cfg.Export.Compact)
		if err != nil {
			return errors.WrapExportError("元素序列化失败", err)
		}
		fmt.Fprintln(out, text)
	case "markdown":
		rendered, err := display.RenderMarkdown(display.Markdown(e), cfg.Display.Style, cfg.Display.WordWrap)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	default:
		return errors.NewInvalidArgumentError("不支持的输出格式", fmt.Sprintf("unknown format %q", elementFormat))
	}
	return nil
}
