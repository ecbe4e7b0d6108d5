package plugins

import (
	"context"
	"math"

	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// ElementFilterTool 按物态、族、周期和数值区间过滤元素，多个条件取交集
type ElementFilterTool struct {
	table *periodictable.Table
}

// NewElementFilterTool 创建过滤工具
func NewElementFilterTool(table *periodictable.Table) *ElementFilterTool {
	return &ElementFilterTool{table: table}
}

func (t *ElementFilterTool) Name() string { return "element_filter" }
func (t *ElementFilterTool) Description() string {
	return "Filter elements by state, group, period, melting/boiling point, density, or discovery year; criteria are combined with AND and ranges are inclusive"
}

func (t *ElementFilterTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"state": map[string]any{
			"type":        "string",
			"description": "state at room temperature",
			"enum":        []string{"solid", "liquid", "gas"},
		},
		"group":          prop("integer", "group 1-18, or 0 for elements without a group"),
		"period":         prop("integer", "period 1-7"),
		"unit":           map[string]any{"type": "string", "description": "temperature unit for melting/boiling bounds", "enum": []string{"k", "c", "f"}, "default": "k"},
		"melting_min":    prop("number", "lowest melting point"),
		"melting_max":    prop("number", "highest melting point"),
		"boiling_min":    prop("number", "lowest boiling point"),
		"boiling_max":    prop("number", "highest boiling point"),
		"density_min":    prop("number", "lowest density in g/cm³"),
		"density_max":    prop("number", "highest density in g/cm³"),
		"discovered_min": prop("integer", "earliest discovery year, negative for BC"),
		"discovered_max": prop("integer", "latest discovery year"),
	})
}

func (t *ElementFilterTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var sets [][]*element.Element

	if state, ok, err := tools.StringArg(args, "state"); err != nil {
		return "", err
	} else if ok {
		els, err := t.table.GetByState(state)
		if err != nil {
			return "", err
		}
		sets = append(sets, els)
	}

	if group, ok, err := tools.IntArg(args, "group"); err != nil {
		return "", err
	} else if ok && group == periodictable.NoGroup {
		sets = append(sets, t.table.GetUngrouped())
	} else if ok {
		sets = append(sets, t.table.GetByGroup(group))
	}

	if period, ok, err := tools.IntArg(args, "period"); err != nil {
		return "", err
	} else if ok {
		sets = append(sets, t.table.GetByPeriod(period))
	}

	unit, ok, err := tools.StringArg(args, "unit")
	if err != nil {
		return "", err
	}
	if !ok {
		unit = string(element.Kelvin)
	}

	if lo, hi, ok, err := floatRange(args, "melting"); err != nil {
		return "", err
	} else if ok {
		els, err := t.table.GetByMeltingPoint(lo, hi, unit)
		if err != nil {
			return "", err
		}
		sets = append(sets, els)
	}

	if lo, hi, ok, err := floatRange(args, "boiling"); err != nil {
		return "", err
	} else if ok {
		els, err := t.table.GetByBoilingPoint(lo, hi, unit)
		if err != nil {
			return "", err
		}
		sets = append(sets, els)
	}

	if lo, hi, ok, err := floatRange(args, "density"); err != nil {
		return "", err
	} else if ok {
		sets = append(sets, t.table.GetByDensity(lo, hi))
	}

	if lo, hi, ok, err := intRange(args, "discovered"); err != nil {
		return "", err
	} else if ok {
		sets = append(sets, t.table.GetByDiscoveryYear(lo, hi))
	}

	if len(sets) == 0 {
		return "", util.NewInvalidParamError("criteria", "至少需要一个过滤条件")
	}
	return marshalResult(newElementList(intersect(sets)))
}

// floatRange 读取 <prefix>_min/<prefix>_max，缺失的一端不设限
func floatRange(args map[string]any, prefix string) (lo, hi float64, ok bool, err error) {
	lo, hasLo, err := tools.FloatArg(args, prefix+"_min")
	if err != nil {
		return 0, 0, false, err
	}
	hi, hasHi, err := tools.FloatArg(args, prefix+"_max")
	if err != nil {
		return 0, 0, false, err
	}
	if !hasLo {
		lo = math.Inf(-1)
	}
	if !hasHi {
		hi = math.Inf(1)
	}
	return lo, hi, hasLo || hasHi, nil
}

func intRange(args map[string]any, prefix string) (lo, hi int, ok bool, err error) {
	lo, hasLo, err := tools.IntArg(args, prefix+"_min")
	if err != nil {
		return 0, 0, false, err
	}
	hi, hasHi, err := tools.IntArg(args, prefix+"_max")
	if err != nil {
		return 0, 0, false, err
	}
	if !hasLo {
		lo = math.MinInt
	}
	if !hasHi {
		hi = math.MaxInt
	}
	return lo, hi, hasLo || hasHi, nil
}

// intersect 保留出现在所有集合中的元素，顺序取第一个集合
func intersect(sets [][]*element.Element) []*element.Element {
	counts := make(map[int]int)
	for _, set := range sets {
		for _, e := range set {
			counts[e.AtomicNumber()]++
		}
	}
	out := []*element.Element{}
	for _, e := range sets[0] {
		if counts[e.AtomicNumber()] == len(sets) {
			out = append(out, e)
		}
	}
	return out
}
