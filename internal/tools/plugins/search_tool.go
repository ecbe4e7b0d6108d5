package plugins

import (
	"context"
	"strings"
	"unicode/utf8"

	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/tools"
	"ptable/internal/util"
)

// ElementSearchTool 按名称或符号的文本条件搜索元素
type ElementSearchTool struct {
	table *periodictable.Table
}

// NewElementSearchTool 创建搜索工具
func NewElementSearchTool(table *periodictable.Table) *ElementSearchTool {
	return &ElementSearchTool{table: table}
}

func (t *ElementSearchTool) Name() string { return "element_search" }
func (t *ElementSearchTool) Description() string {
	return "Search elements whose name or symbol matches a prefix, a substring, or a maximum length (case-insensitive)"
}

func (t *ElementSearchTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"field": map[string]any{
			"type":        "string",
			"description": "field to match",
			"enum":        []string{"name", "symbol"},
			"default":     "name",
		},
		"prefix":     prop("string", "value must start with this text"),
		"contains":   prop("string", "value must contain this text"),
		"max_length": prop("integer", "value must be at most this many characters"),
	})
}

func (t *ElementSearchTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	field, ok, err := tools.StringArg(args, "field")
	if err != nil {
		return "", err
	}
	if !ok {
		field = "name"
	}
	if field != "name" && field != "symbol" {
		return "", util.NewInvalidParamError("field", "只支持 name 或 symbol")
	}

	var preds []func(string) bool
	if prefix, ok, err := tools.StringArg(args, "prefix"); err != nil {
		return "", err
	} else if ok {
		p := element.FoldName(prefix)
		preds = append(preds, func(s string) bool { return strings.HasPrefix(element.FoldName(s), p) })
	}
	if contains, ok, err := tools.StringArg(args, "contains"); err != nil {
		return "", err
	} else if ok {
		c := element.FoldName(contains)
		preds = append(preds, func(s string) bool { return strings.Contains(element.FoldName(s), c) })
	}
	if maxLen, ok, err := tools.IntArg(args, "max_length"); err != nil {
		return "", err
	} else if ok {
		preds = append(preds, func(s string) bool { return utf8.RuneCountInString(s) <= maxLen })
	}
	if len(preds) == 0 {
		return "", util.NewInvalidParamError("criteria", "至少需要 prefix、contains 或 max_length 之一")
	}

	match := func(s string) bool {
		for _, p := range preds {
			if !p(s) {
				return false
			}
		}
		return true
	}

	var els []*element.Element
	if field == "symbol" {
		els = t.table.FilterBySymbol(match)
	} else {
		els = t.table.FilterByName(match)
	}
	return marshalResult(newElementList(els))
}
