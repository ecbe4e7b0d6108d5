package cmd

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools/plugins"
	"ptable/internal/util"
)

var (
	statsRuntime  bool
	statsFromYear int
	statsToYear   int
)

// statsCmd 周期表统计
var statsCmd = &cobra.Command{
	Use:   "stats [stat]",
	Short: "周期表统计",
	Long: `计算周期表的统计信息，不带参数时输出概要。

可用统计项:
  ` + strings.Join(plugins.Stats, "\n  "),
	Example:   "  ptable stats densest\n  ptable stats discovered_between --from 1700 --to 1799\n  ptable stats --runtime",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: plugins.Stats,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		stat := plugins.StatSummary
		if len(args) == 1 {
			stat = args[0]
		}
		if err := printStat(cmd, out, stat); err != nil {
			return err
		}
		if statsRuntime {
			return printRuntime(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsRuntime, "runtime", false, "同时输出进程与主机的运行时信息")
	statsCmd.Flags().IntVar(&statsFromYear, "from", 0, "discovered_between 的最早年份")
	statsCmd.Flags().IntVar(&statsToYear, "to", 0, "discovered_between 的最晚年份")
	addListFlags(statsCmd)
}

func printStat(cmd *cobra.Command, out io.Writer, stat string) error {
	switch stat {
	case plugins.StatSummary:
		s := plugins.NewSummary(table)
		fmt.Fprintf(out, "元素数量: %d\n", s.Elements)
		fmt.Fprintf(out, "平均原子质量: %s\n", element.FormatFloat(s.MeanAtomicMass))
		fmt.Fprintf(out, "密度最大: %s\n", s.Densest)
		fmt.Fprintf(out, "熔点最低: %s\n", s.LowestMeltingPoint)
		fmt.Fprintln(out, "分类:")
		for _, c := range periodictable.Categories() {
			fmt.Fprintf(out, "  %-32s %d\n", c, s.Categories[string(c)])
		}
	case plugins.StatDensest:
		e := table.Densest()
		d, _ := e.Density()
		fmt.Fprintf(out, "%s (%s g/cm³)\n", e.DisplayName(), element.FormatFloat(d))
	case plugins.StatLowestMeltingPoint:
		e := table.LowestMeltingPoint()
		unit, err := resolveUnit()
		if err != nil {
			return err
		}
		v, _ := e.MeltingPoint(unit)
		fmt.Fprintf(out, "%s (%s %s)\n", e.DisplayName(), element.FormatFloat(v), unit.Symbol())
	case plugins.StatMeanAtomicMass:
		fmt.Fprintln(out, element.FormatFloat(table.MeanAtomicMass()))
	case plugins.StatPrimeAtomicNumbers:
		return writeElements(out, table.PrimeAtomicNumbers())
	case plugins.StatOneLetterSymbols:
		fmt.Fprintln(out, strings.Join(table.OneLetterSymbols(), " "))
	case plugins.StatDiscoveredBetween:
		from, to := math.MinInt, math.MaxInt
		if cmd.Flags().Changed("from") {
			from = statsFromYear
		}
		if cmd.Flags().Changed("to") {
			to = statsToYear
		}
		return writeElements(out, table.GetByDiscoveryYear(from, to))
	case plugins.StatSortedByBoilingPoint:
		return writeElements(out, table.SortedByBoilingPoint())
	default:
		return errors.NewInvalidArgumentError("不支持的统计项", fmt.Sprintf("unknown stat %q", stat))
	}
	return nil
}

func printRuntime(out io.Writer) error {
	info, err := util.CollectRuntimeInfo(context.Background(), util.ExpandHome("~"))
	if err != nil {
		return errors.WrapError(errors.ErrCodeInternalErr, "获取运行时信息失败", err)
	}
	fmt.Fprintln(out, "\n运行时信息:")
	fmt.Fprintf(out, "  PID: %d\n", info.PID)
	fmt.Fprintf(out, "  Go 版本: %s\n", info.GoVersion)
	fmt.Fprintf(out, "  Goroutine: %d\n", info.Goroutines)
	fmt.Fprintf(out, "  CPU 核心: %d (进程占用 %.1f%%)\n", info.CPUCount, info.CPUPercent)
	fmt.Fprintf(out, "  进程内存: %.1f MB (%.2f%%)\n", info.RSSMB, info.MemoryPercent)
	fmt.Fprintf(out, "  主机内存: %.1f GB (已用 %.1f%%)\n", info.HostMemoryGB, info.HostMemUsed)
	if info.DiskPath != "" {
		fmt.Fprintf(out, "  磁盘剩余 (%s): %.1f GB\n", info.DiskPath, info.DiskFreeGB)
	}
	return nil
}
