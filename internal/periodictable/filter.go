package periodictable

import (
	"ptable/internal/element"
)

// NoGroup 命令行和工具参数中表示“没有族”的取值，查询时对应 GetUngrouped
const NoGroup = 0

// Where 返回满足条件的元素，按原子序数排列；nil 条件不匹配任何元素
func (t *Table) Where(pred func(*element.Element) bool) []*element.Element {
	out := []*element.Element{}
	if pred == nil {
		return out
	}
	for _, e := range t.elements {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByName 按规范名称过滤
func (t *Table) FilterByName(pred func(name string) bool) []*element.Element {
	if pred == nil {
		return []*element.Element{}
	}
	return t.Where(func(e *element.Element) bool { return pred(e.Name()) })
}

// FilterBySymbol 按规范符号过滤
func (t *Table) FilterBySymbol(pred func(symbol string) bool) []*element.Element {
	if pred == nil {
		return []*element.Element{}
	}
	return t.Where(func(e *element.Element) bool { return pred(e.Symbol()) })
}

// GetByState 按室温物态过滤，物态缺失的元素不匹配
func (t *Table) GetByState(state string) ([]*element.Element, error) {
	s, err := element.ParseState(state)
	if err != nil {
		return nil, err
	}
	return t.Where(func(e *element.Element) bool {
		got, ok := e.State()
		return ok && got == s
	}), nil
}

// GetByGroup 按族精确过滤，族缺失的元素不匹配
func (t *Table) GetByGroup(group int) []*element.Element {
	return t.Where(func(e *element.Element) bool {
		g, ok := e.Group()
		return ok && g == group
	})
}

// GetUngrouped 没有族的元素（大部分镧系和锕系）
func (t *Table) GetUngrouped() []*element.Element {
	return t.Where(func(e *element.Element) bool {
		_, ok := e.Group()
		return !ok
	})
}

// GetByPeriod 按周期过滤
func (t *Table) GetByPeriod(period int) []*element.Element {
	return t.Where(func(e *element.Element) bool { return e.Period() == period })
}

// GetByMeltingPoint 熔点在 [min, max] 内的元素，unit 为 k/c/f
func (t *Table) GetByMeltingPoint(min, max float64, unit string) ([]*element.Element, error) {
	u, err := element.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return t.Where(func(e *element.Element) bool {
		v, ok := e.MeltingPoint(u)
		return ok && v >= min && v <= max
	}), nil
}

// GetByBoilingPoint 沸点在 [min, max] 内的元素，unit 为 k/c/f
func (t *Table) GetByBoilingPoint(min, max float64, unit string) ([]*element.Element, error) {
	u, err := element.ParseUnit(unit)
	if err != nil {
		return nil, err
	}
	return t.Where(func(e *element.Element) bool {
		v, ok := e.BoilingPoint(u)
		return ok && v >= min && v <= max
	}), nil
}

// GetByDensity 密度在 [min, max] 内的元素
func (t *Table) GetByDensity(min, max float64) []*element.Element {
	return t.Where(func(e *element.Element) bool {
		v, ok := e.Density()
		return ok && v >= min && v <= max
	})
}

// GetByDiscoveryYear 发现年份在 [min, max] 内的元素
func (t *Table) GetByDiscoveryYear(min, max int) []*element.Element {
	return t.Where(func(e *element.Element) bool {
		v, ok := e.DiscoveryYear()
		return ok && v >= min && v <= max
	})
}
