package plugins

import (
	"context"

	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// ElementRangeTool 按原子序数区间取元素
type ElementRangeTool struct {
	table *periodictable.Table
}

// NewElementRangeTool 创建区间查询工具
func NewElementRangeTool(table *periodictable.Table) *ElementRangeTool {
	return &ElementRangeTool{table: table}
}

func (t *ElementRangeTool) Name() string { return "element_range" }
func (t *ElementRangeTool) Description() string {
	return "List elements with atomic numbers in the half-open range [start, stop) taken every step; out-of-range bounds are clamped"
}

func (t *ElementRangeTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"start": prop("integer", "first atomic number"),
		"stop":  prop("integer", "exclusive bound; defaults to the end of the table in the step direction"),
		"step":  prop("integer", "non-zero stride, default 1"),
	}, "start")
}

func (t *ElementRangeTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	start, ok, err := tools.IntArg(args, "start")
	if err != nil {
		return "", err
	}
	if !ok {
		return "", util.NewInvalidParamError("start", "缺少必填参数")
	}

	step, ok, err := tools.IntArg(args, "step")
	if err != nil {
		return "", err
	}
	if !ok {
		step = 1
	}

	stop, ok, err := tools.IntArg(args, "stop")
	if err != nil {
		return "", err
	}
	if !ok {
		stop = t.table.Len() + 1
		if step < 0 {
			stop = 0
		}
	}

	els, err := t.table.GetRangeByAtomicNumber(start, stop, step)
	if err != nil {
		return "", err
	}
	return marshalResult(newElementList(els))
}
