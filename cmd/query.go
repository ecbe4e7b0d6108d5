package cmd

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ptable/internal/common/errors"
	"ptable/internal/element"
	"ptable/internal/periodictable"
)

var (
	rangeStart, rangeStop, rangeStep int
	minValue, maxValue               float64
	fromYear, toYear                 int
	namePrefix, nameContains         string
	maxSymbolLength                  int
)

// queryCmd 按条件查询元素
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "按条件查询元素",
	Long:  "按原子序数区间、物态、族、周期、熔沸点、密度、发现年份或名称查询元素",
}

var queryRangeCmd = &cobra.Command{
	Use:     "range",
	Short:   "原子序数区间 [start, stop)",
	Example: "  ptable query range --start 1 --stop 11\n  ptable query range --start 118 --stop 100 --step -2",
	RunE: func(cmd *cobra.Command, args []string) error {
		stop := rangeStop
		if !cmd.Flags().Changed("stop") {
			stop = table.Len() + 1
			if rangeStep < 0 {
				stop = 0
			}
		}
		els, err := table.GetRangeByAtomicNumber(rangeStart, stop, rangeStep)
		if err != nil {
			return err
		}
		return writeElements(cmd.OutOrStdout(), els)
	},
}

var queryStateCmd = &cobra.Command{
	Use:       "state [solid|liquid|gas]",
	Short:     "室温物态",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"solid", "liquid", "gas"},
	RunE: func(cmd *cobra.Command, args []string) error {
		els, err := table.GetByState(args[0])
		if err != nil {
			return err
		}
		return writeElements(cmd.OutOrStdout(), els)
	},
}

var queryGroupCmd = &cobra.Command{
	Use:   "group [1-18|0]",
	Short: "族，0 表示没有族的元素",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group, err := intArg("group", args[0])
		if err != nil {
			return err
		}
		if group == periodictable.NoGroup {
			return writeElements(cmd.OutOrStdout(), table.GetUngrouped())
		}
		return writeElements(cmd.OutOrStdout(), table.GetByGroup(group))
	},
}

var queryPeriodCmd = &cobra.Command{
	Use:   "period [1-7]",
	Short: "周期",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		period, err := intArg("period", args[0])
		if err != nil {
			return err
		}
		return writeElements(cmd.OutOrStdout(), table.GetByPeriod(period))
	},
}

var queryMeltingCmd = &cobra.Command{
	Use:     "melting",
	Short:   "熔点区间（含端点）",
	Example: "  ptable query melting --max 0 -u c",
	RunE: func(cmd *cobra.Command, args []string) error {
		return temperatureQuery(cmd, table.GetByMeltingPoint)
	},
}

var queryBoilingCmd = &cobra.Command{
	Use:   "boiling",
	Short: "沸点区间（含端点）",
	RunE: func(cmd *cobra.Command, args []string) error {
		return temperatureQuery(cmd, table.GetByBoilingPoint)
	},
}

var queryDensityCmd = &cobra.Command{
	Use:   "density",
	Short: "密度区间 g/cm³（含端点）",
	RunE: func(cmd *cobra.Command, args []string) error {
		lo, hi := bounds(cmd)
		return writeElements(cmd.OutOrStdout(), table.GetByDensity(lo, hi))
	},
}

var queryDiscoveredCmd = &cobra.Command{
	Use:     "discovered",
	Short:   "发现年份区间（含端点，公元前为负数）",
	Example: "  ptable query discovered --from 1700 --to 1799",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, to := math.MinInt, math.MaxInt
		if cmd.Flags().Changed("from") {
			from = fromYear
		}
		if cmd.Flags().Changed("to") {
			to = toYear
		}
		return writeElements(cmd.OutOrStdout(), table.GetByDiscoveryYear(from, to))
	},
}

var queryNameCmd = &cobra.Command{
	Use:   "name",
	Short: "按名称前缀或子串过滤",
	RunE: func(cmd *cobra.Command, args []string) error {
		if namePrefix == "" && nameContains == "" {
			return errors.NewInvalidArgumentError("缺少过滤条件", "需要 --prefix 或 --contains")
		}
		prefix, contains := element.FoldName(namePrefix), element.FoldName(nameContains)
		els := table.FilterByName(func(name string) bool {
			return strings.HasPrefix(name, prefix) && strings.Contains(name, contains)
		})
		return writeElements(cmd.OutOrStdout(), els)
	},
}

var querySymbolCmd = &cobra.Command{
	Use:   "symbol",
	Short: "按符号长度过滤",
	RunE: func(cmd *cobra.Command, args []string) error {
		els := table.FilterBySymbol(func(symbol string) bool { return len(symbol) <= maxSymbolLength })
		return writeElements(cmd.OutOrStdout(), els)
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	addListFlags(queryCmd)

	queryRangeCmd.Flags().IntVar(&rangeStart, "start", 1, "起始原子序数")
	queryRangeCmd.Flags().IntVar(&rangeStop, "stop", 0, "结束原子序数（不含），默认到表尾")
	queryRangeCmd.Flags().IntVar(&rangeStep, "step", 1, "步长，不能为0")

	for _, c := range []*cobra.Command{queryMeltingCmd, queryBoilingCmd, queryDensityCmd} {
		c.Flags().Float64Var(&minValue, "min", 0, "下限（默认不限）")
		c.Flags().Float64Var(&maxValue, "max", 0, "上限（默认不限）")
	}
	queryDiscoveredCmd.Flags().IntVar(&fromYear, "from", 0, "最早年份（默认不限）")
	queryDiscoveredCmd.Flags().IntVar(&toYear, "to", 0, "最晚年份（默认不限）")
	queryNameCmd.Flags().StringVar(&namePrefix, "prefix", "", "名称前缀")
	queryNameCmd.Flags().StringVar(&nameContains, "contains", "", "名称包含的文本")
	querySymbolCmd.Flags().IntVar(&maxSymbolLength, "max-length", 1, "符号最大长度")

	queryCmd.AddCommand(queryRangeCmd, queryStateCmd, queryGroupCmd, queryPeriodCmd,
		queryMeltingCmd, queryBoilingCmd, queryDensityCmd, queryDiscoveredCmd, queryNameCmd, querySymbolCmd)
}

// bounds 读取 --min/--max，未指定的一端不设限
func bounds(cmd *cobra.Command) (float64, float64) {
	lo, hi := math.Inf(-1), math.Inf(1)
	if cmd.Flags().Changed("min") {
		lo = minValue
	}
	if cmd.Flags().Changed("max") {
		hi = maxValue
	}
	return lo, hi
}

func temperatureQuery(cmd *cobra.Command, query func(min, max float64, unit string) ([]*element.Element, error)) error {
	unit, err := resolveUnit()
	if err != nil {
		return err
	}
	lo, hi := bounds(cmd)
	els, err := query(lo, hi, string(unit))
	if err != nil {
		return err
	}
	return writeElements(cmd.OutOrStdout(), els)
}

func intArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.NewInvalidArgumentError("参数 "+name+" 必须是整数", value)
	}
	return n, nil
}
