// Package periodictable 提供按原子序数排列的元素注册表，以及按名称、符号、物态、族、周期等维度的查询
//
// Table 构建完成后不可修改，所有查询都可以并发调用；返回的切片都是副本。
package periodictable

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"

	"ptable/internal/common/errors"
	"ptable/internal/element"
	"ptable/internal/util"
	"ptable/pkg/registry"
)

const (
	nameIndex   = "name"
	symbolIndex = "symbol"
)

// Table 元素注册表，elements[i] 的原子序数为 i+1
type Table struct {
	elements []*element.Element
	registry *registry.BaseRegistry[*element.Element]
}

var defaultTable = sync.OnceValues(New)

// Default 返回进程内共享的注册表，只构建一次
func Default() (*Table, error) {
	return defaultTable()
}

// New 从内置数据集构建注册表
func New() (*Table, error) {
	elements, err := element.Dataset()
	if err != nil {
		return nil, err
	}
	return NewFromElements(elements)
}

// NewFromElements 从给定的元素列表构建注册表，列表必须恰好是原子序数 1..118
func NewFromElements(elements []*element.Element) (*Table, error) {
	if len(elements) != element.Count {
		return nil, errors.NewDatasetError(fmt.Sprintf("expected %d elements, got %d", element.Count, len(elements)))
	}
	for i, e := range elements {
		if e == nil {
			return nil, errors.NewDatasetError(fmt.Sprintf("element at index %d is nil", i))
		}
		if e.AtomicNumber() != i+1 {
			return nil, errors.NewDatasetError(fmt.Sprintf("element %s at index %d has atomic number %d", e.Name(), i, e.AtomicNumber()))
		}
	}

	aliases := aliasesByName()
	reg, err := registry.Build(
		func(e *element.Element) string { return e.Symbol() },
		elements,
		registry.WithIndex[*element.Element](nameIndex, func(e *element.Element) []string {
			return append([]string{element.FoldName(e.Name())}, aliases[e.Name()]...)
		}),
		registry.WithIndex[*element.Element](symbolIndex, func(e *element.Element) []string {
			return []string{element.FoldName(e.Symbol())}
		}),
		registry.WithClassifier[*element.Element](categoriesOf),
	)
	if err != nil {
		return nil, errors.WrapDatasetError("构建元素注册表失败", err)
	}

	t := &Table{
		elements: slices.Clone(elements),
		registry: reg,
	}

	util.Infow("元素注册表构建完成", map[string]any{
		"elements":   len(t.elements),
		"categories": len(Categories()),
	})
	return t, nil
}

// aliasesByName 规范名称到别名列表
func aliasesByName() map[string][]string {
	byName := make(map[string][]string)
	for alias, name := range element.Aliases() {
		byName[name] = append(byName[name], element.FoldName(alias))
	}
	for _, list := range byName {
		slices.Sort(list)
	}
	return byName
}

// Len 元素数量
func (t *Table) Len() int {
	return len(t.elements)
}

// Elements 按原子序数升序返回全部元素
func (t *Table) Elements() []*element.Element {
	return slices.Clone(t.elements)
}

// Reversed 按原子序数降序返回全部元素
func (t *Table) Reversed() []*element.Element {
	out := slices.Clone(t.elements)
	slices.Reverse(out)
	return out
}

// All 按原子序数升序遍历
func (t *Table) All() iter.Seq[*element.Element] {
	return slices.Values(t.elements)
}

// Backward 按原子序数降序遍历
func (t *Table) Backward() iter.Seq[*element.Element] {
	return func(yield func(*element.Element) bool) {
		for i := len(t.elements) - 1; i >= 0; i-- {
			if !yield(t.elements[i]) {
				return
			}
		}
	}
}

// Contains 名称、别名或符号是否存在，不区分大小写
func (t *Table) Contains(token string) bool {
	key := element.FoldName(token)
	if _, ok := t.registry.Lookup(nameIndex, key); ok {
		return true
	}
	_, ok := t.registry.Lookup(symbolIndex, key)
	return ok
}

// String 一行摘要，例如 "1 hydrogen (H) | 2 helium (He) | ..."
func (t *Table) String() string {
	parts := make([]string, len(t.elements))
	for i, e := range t.elements {
		parts[i] = fmt.Sprintf("%d %s (%s)", e.AtomicNumber(), e.Name(), e.Symbol())
	}
	return strings.Join(parts, " | ")
}
