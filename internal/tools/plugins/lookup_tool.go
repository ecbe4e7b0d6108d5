package plugins

import (
	"context"

	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// ElementLookupTool 按名称、符号或原子序数查找单个元素
type ElementLookupTool struct {
	table *periodictable.Table
}

// NewElementLookupTool 创建元素查找工具
func NewElementLookupTool(table *periodictable.Table) *ElementLookupTool {
	return &ElementLookupTool{table: table}
}

func (t *ElementLookupTool) Name() string { return "element_lookup" }
func (t *ElementLookupTool) Description() string {
	return "Look up one element by name (case-insensitive, historical spellings accepted), symbol, or atomic number"
}

func (t *ElementLookupTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"token": map[string]any{
			"description": "element name, symbol, or atomic number (1-118)",
		},
	}, "token")
}

func (t *ElementLookupTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	token, err := tools.TokenArg(args, "token")
	if err != nil {
		return "", err
	}

	var e *element.Element
	switch v := token.(type) {
	case int:
		e, err = t.table.GetByAtomicNumber(v)
	case string:
		e, err = t.table.Find(v)
	}
	if err != nil {
		return "", err
	}

	util.Debugw("元素查找完成", map[string]any{"token": token, "element": e.Name()})
	return marshalResult(e.Flatten())
}
