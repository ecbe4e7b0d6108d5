package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ptable/internal/config"
	"ptable/internal/display"
	"ptable/internal/element"
	"ptable/internal/export"
)

// 列表输出格式
const formatTable = "table"

var (
	// outputFormat 元素列表的输出格式：table、json、csv、yaml
	outputFormat string
	// unitFlag 温度单位，为空时使用配置
	unitFlag string
)

// addListFlags 为输出元素列表的命令添加公共标志
func addListFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatTable, "输出格式: table, json, csv, yaml")
	cmd.PersistentFlags().StringVarP(&unitFlag, "unit", "u", "", "温度单位: k, c, f (默认取配置)")
}

// resolveUnit 解析温度单位标志
func resolveUnit() (element.Unit, error) {
	unit := unitFlag
	if unit == "" {
		unit = config.GetConfig().Display.TemperatureUnit
	}
	return element.ParseUnit(strings.TrimSpace(unit))
}

func exportOptions() export.Options {
	cfg := config.GetConfig().Export
	return export.Options{Indent: cfg.JSONIndent, Compact: cfg.Compact}
}

// writeElements 按 outputFormat 输出元素列表
func writeElements(w io.Writer, els []*element.Element) error {
	if outputFormat == "" || outputFormat == formatTable {
		unit, err := resolveUnit()
		if err != nil {
			return err
		}
		if len(els) == 0 {
			_, err := fmt.Fprintln(w, "没有匹配的元素")
			return err
		}
		fmt.Fprintln(w, display.Table(els, unit))
		_, err = fmt.Fprintf(w, "共 %d 个元素\n", len(els))
		return err
	}

	format, err := export.ParseFormat(outputFormat)
	if err != nil {
		return err
	}
	return export.Write(w, format, els, exportOptions())
}

// parseToken 把命令行参数解析为查找令牌，纯数字视为原子序数
func parseToken(arg string) any {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		return n
	}
	return arg
}

// findElement 按令牌查找元素
func findElement(arg string) (*element.Element, error) {
	switch token := parseToken(arg).(type) {
	case int:
		return table.GetByAtomicNumber(token)
	default:
		return table.Find(arg)
	}
}
