package cmd

import (
	"github.com/spf13/cobra"

	"ptable/internal/browse"
	"ptable/internal/config"
)

// browseCmd 交互式浏览元素
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "交互式浏览元素",
	Long: `在终端中浏览全部元素。

快捷键:
  /          过滤列表
  tab        切换分类
  u          切换温度单位
  J/K        滚动详情
  q, ctrl+c  退出`,
	RunE: func(cmd *cobra.Command, args []string) error {
		unit, err := resolveUnit()
		if err != nil {
			return err
		}
		cfg := config.GetConfig().Display
		return browse.Run(table, browse.Options{
			Style:    cfg.Style,
			WordWrap: cfg.WordWrap,
			Unit:     unit,
		})
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringVarP(&unitFlag, "unit", "u", "", "初始温度单位: k, c, f (默认取配置)")
}
