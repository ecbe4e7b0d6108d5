package plugins

import (
	"context"
	"fmt"
	"math"

	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// 支持的统计项
const (
	StatSummary              = "summary"
	StatDensest              = "densest"
	StatLowestMeltingPoint   = "lowest_melting_point"
	StatMeanAtomicMass       = "mean_atomic_mass"
	StatPrimeAtomicNumbers   = "prime_atomic_numbers"
	StatOneLetterSymbols     = "one_letter_symbols"
	StatDiscoveredBetween    = "discovered_between"
	StatSortedByBoilingPoint = "sorted_by_boiling_point"
)

// Stats 全部统计项，按展示顺序
var Stats = []string{
	StatSummary, StatDensest, StatLowestMeltingPoint, StatMeanAtomicMass,
	StatPrimeAtomicNumbers, StatOneLetterSymbols, StatDiscoveredBetween, StatSortedByBoilingPoint,
}

// TableStatsTool 周期表统计
type TableStatsTool struct {
	table *periodictable.Table
}

// NewTableStatsTool 创建统计工具
func NewTableStatsTool(table *periodictable.Table) *TableStatsTool {
	return &TableStatsTool{table: table}
}

func (t *TableStatsTool) Name() string { return "table_stats" }
func (t *TableStatsTool) Description() string {
	return "Compute statistics over the periodic table: summary, densest element, lowest melting point, mean atomic mass, prime atomic numbers, one-letter symbols, discoveries between two years, elements sorted by boiling point"
}

func (t *TableStatsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"stat": map[string]any{
			"type":        "string",
			"description": "statistic to compute",
			"enum":        Stats,
			"default":     StatSummary,
		},
		"from": prop("integer", "first discovery year for discovered_between"),
		"to":   prop("integer", "last discovery year for discovered_between"),
	})
}

// Summary 周期表概要
type Summary struct {
	Elements           int            `json:"elements"`
	Categories         map[string]int `json:"categories"`
	MeanAtomicMass     float64        `json:"mean_atomic_mass"`
	Densest            string         `json:"densest"`
	LowestMeltingPoint string         `json:"lowest_melting_point"`
}

// NewSummary 计算周期表概要
func NewSummary(table *periodictable.Table) Summary {
	categories := make(map[string]int)
	for _, c := range periodictable.Categories() {
		els, _ := table.Category(c)
		categories[string(c)] = len(els)
	}
	return Summary{
		Elements:           table.Len(),
		Categories:         categories,
		MeanAtomicMass:     table.MeanAtomicMass(),
		Densest:            table.Densest().Name(),
		LowestMeltingPoint: table.LowestMeltingPoint().Name(),
	}
}

type boilingEntry struct {
	Name          string   `json:"name"`
	BoilingPointK *float64 `json:"boiling_point_k"`
}

func (t *TableStatsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	stat, ok, err := tools.StringArg(args, "stat")
	if err != nil {
		return "", err
	}
	if !ok || stat == "" {
		stat = StatSummary
	}

	switch stat {
	case StatSummary:
		return marshalResult(NewSummary(t.table))
	case StatDensest:
		return marshalResult(t.table.Densest().Flatten())
	case StatLowestMeltingPoint:
		return marshalResult(t.table.LowestMeltingPoint().Flatten())
	case StatMeanAtomicMass:
		return marshalResult(map[string]float64{"mean_atomic_mass": t.table.MeanAtomicMass()})
	case StatPrimeAtomicNumbers:
		return marshalResult(names(t.table.PrimeAtomicNumbers()))
	case StatOneLetterSymbols:
		return marshalResult(t.table.OneLetterSymbols())
	case StatDiscoveredBetween:
		from, hasFrom, err := tools.IntArg(args, "from")
		if err != nil {
			return "", err
		}
		to, hasTo, err := tools.IntArg(args, "to")
		if err != nil {
			return "", err
		}
		if !hasFrom {
			from = math.MinInt
		}
		if !hasTo {
			to = math.MaxInt
		}
		return marshalResult(names(t.table.GetByDiscoveryYear(from, to)))
	case StatSortedByBoilingPoint:
		sorted := t.table.SortedByBoilingPoint()
		out := make([]boilingEntry, 0, len(sorted))
		for _, e := range sorted {
			out = append(out, boilingEntry{Name: e.Name(), BoilingPointK: boilingPoint(e)})
		}
		return marshalResult(out)
	default:
		return "", util.NewInvalidParamError("stat", fmt.Sprintf("不支持的统计项: %s", stat))
	}
}

func boilingPoint(e *element.Element) *float64 {
	k, ok := e.BoilingPointK()
	if !ok {
		return nil
	}
	return &k
}
