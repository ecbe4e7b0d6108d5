package plugins

import (
	"context"

	"ptable/internal/periodictable"
	"ptable/internal/tools"
)

// ElementCategoryTool 返回某个预定义分类的元素
type ElementCategoryTool struct {
	table *periodictable.Table
}

// NewElementCategoryTool 创建分类查询工具
func NewElementCategoryTool(table *periodictable.Table) *ElementCategoryTool {
	return &ElementCategoryTool{table: table}
}

func (t *ElementCategoryTool) Name() string { return "element_category" }
func (t *ElementCategoryTool) Description() string {
	return "List the elements of a named category such as noble_gases or lanthanides"
}

func (t *ElementCategoryTool) Parameters() map[string]any {
	categories := periodictable.Categories()
	enum := make([]string, 0, len(categories))
	for _, c := range categories {
		enum = append(enum, string(c))
	}
	return objectSchema(map[string]any{
		"category": map[string]any{
			"type":        "string",
			"description": "category name",
			"enum":        enum,
		},
	}, "category")
}

func (t *ElementCategoryTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	name, err := tools.RequireString(args, "category")
	if err != nil {
		return "", err
	}
	c, err := periodictable.ParseCategory(name)
	if err != nil {
		return "", err
	}
	els, err := t.table.Category(c)
	if err != nil {
		return "", err
	}
	return marshalResult(newElementList(els))
}
