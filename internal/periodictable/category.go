package periodictable

import (
	"fmt"
	"strings"

	"ptable/internal/common/errors"
	"ptable/internal/element"
)

// Category 预先计算的元素分类视图
type Category string

const (
	AlkaliMetals         Category = "alkali_metals"
	AlkalineEarthMetals  Category = "alkaline_earth_metals"
	Halogens             Category = "halogens"
	NobleGases           Category = "noble_gases"
	Lanthanides          Category = "lanthanides"
	Actinides            Category = "actinides"
	WithStableIsotope    Category = "elements_with_stable_isotope"
	WithoutStableIsotope Category = "elements_without_stable_isotope"
	Natural              Category = "natural_elements"
	Synthetic            Category = "synthetic_elements"
)

// categoryRule 分类及其判定条件
type categoryRule struct {
	category Category
	match    func(e *element.Element) bool
}

func inGroup(group int) func(e *element.Element) bool {
	return func(e *element.Element) bool {
		g, ok := e.Group()
		return ok && g == group
	}
}

func inRange(lo, hi int) func(e *element.Element) bool {
	return func(e *element.Element) bool {
		return e.AtomicNumber() >= lo && e.AtomicNumber() <= hi
	}
}

var categoryRules = []categoryRule{
	// 氢在第1族但不是碱金属
	{AlkaliMetals, func(e *element.Element) bool { return inGroup(1)(e) && e.AtomicNumber() != 1 }},
	{AlkalineEarthMetals, inGroup(2)},
	{Halogens, inGroup(17)},
	{NobleGases, inGroup(18)},
	{Lanthanides, inRange(57, 71)},
	{Actinides, inRange(89, 103)},
	{WithStableIsotope, func(e *element.Element) bool { return e.HasStableIsotope() }},
	{WithoutStableIsotope, func(e *element.Element) bool { return !e.HasStableIsotope() }},
	{Natural, func(e *element.Element) bool { return e.Natural() }},
	{Synthetic, func(e *element.Element) bool { return !e.Natural() }},
}

// categoriesOf 元素所属的全部分类
func categoriesOf(e *element.Element) []string {
	var out []string
	for _, rule := range categoryRules {
		if rule.match(e) {
			out = append(out, string(rule.category))
		}
	}
	return out
}

// Categories 按固定顺序列出全部分类
func Categories() []Category {
	out := make([]Category, len(categoryRules))
	for i, rule := range categoryRules {
		out[i] = rule.category
	}
	return out
}

// ParseCategory 解析分类名称，不区分大小写，接受 "-" 代替 "_"
func ParseCategory(s string) (Category, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, rule := range categoryRules {
		if string(rule.category) == key {
			return rule.category, nil
		}
	}
	return "", errors.NewInvalidArgumentError("未知的元素分类",
		fmt.Sprintf("unknown category %q", s))
}

// Category 按名称返回分类视图，未知分类返回 INVALID_ARGUMENT
func (t *Table) Category(c Category) ([]*element.Element, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	return t.registry.GetByType(string(c)), nil
}

func (t *Table) view(c Category) []*element.Element {
	return t.registry.GetByType(string(c))
}

// AlkaliMetals 碱金属
func (t *Table) AlkaliMetals() []*element.Element { return t.view(AlkaliMetals) }

// AlkalineEarthMetals 碱土金属
func (t *Table) AlkalineEarthMetals() []*element.Element { return t.view(AlkalineEarthMetals) }

// Halogens 卤素
func (t *Table) Halogens() []*element.Element { return t.view(Halogens) }

// NobleGases 稀有气体
func (t *Table) NobleGases() []*element.Element { return t.view(NobleGases) }

// Lanthanides 镧系元素
func (t *Table) Lanthanides() []*element.Element { return t.view(Lanthanides) }

// Actinides 锕系元素
func (t *Table) Actinides() []*element.Element { return t.view(Actinides) }

// ElementsWithStableIsotope 至少有一种稳定同位素的元素
func (t *Table) ElementsWithStableIsotope() []*element.Element { return t.view(WithStableIsotope) }

// ElementsWithoutStableIsotope 没有稳定同位素的元素
func (t *Table) ElementsWithoutStableIsotope() []*element.Element {
	return t.view(WithoutStableIsotope)
}

// NaturalElements 天然存在的元素
func (t *Table) NaturalElements() []*element.Element { return t.view(Natural) }

// SyntheticElements 人工合成的元素
func (t *Table) SyntheticElements() []*element.Element { return t.view(Synthetic) }
