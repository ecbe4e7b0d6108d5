package periodictable

import (
	"fmt"

	"ptable/internal/common/errors"
	"ptable/internal/element"
)

// GetByName 按名称或历史别名查找，不区分大小写
func (t *Table) GetByName(name string) (*element.Element, error) {
	if e, ok := t.registry.Lookup(nameIndex, element.FoldName(name)); ok {
		return e, nil
	}
	return nil, errors.NewElementNotFoundError("name", name)
}

// GetBySymbol 按符号查找，不区分大小写
func (t *Table) GetBySymbol(symbol string) (*element.Element, error) {
	if e, ok := t.registry.Lookup(symbolIndex, element.FoldName(symbol)); ok {
		return e, nil
	}
	return nil, errors.NewElementNotFoundError("symbol", element.TitleSymbol(symbol))
}

// GetByAtomicNumber 按原子序数查找
func (t *Table) GetByAtomicNumber(n int) (*element.Element, error) {
	if n < 1 || n > len(t.elements) {
		return nil, errors.NewElementNotFoundError("atomic number", n)
	}
	return t.elements[n-1], nil
}

// Find 依次按名称、符号查找
func (t *Table) Find(token string) (*element.Element, error) {
	if e, err := t.GetByName(token); err == nil {
		return e, nil
	}
	if e, err := t.GetBySymbol(token); err == nil {
		return e, nil
	}
	return nil, errors.NewElementNotFoundError("name or symbol", token)
}

// GetRangeByAtomicNumber 半开区间 [start, stop) 内按步长取元素，越界的边界会被收紧而不是报错
//
// step > 0 时 start 不小于 1、stop 不大于 119；step < 0 时从 start 向下取，start 不大于 118、stop 不小于 0。
func (t *Table) GetRangeByAtomicNumber(start, stop, step int) ([]*element.Element, error) {
	if step == 0 {
		return nil, errors.NewInvalidArgumentError("步长不能为0", fmt.Sprintf("range(%d, %d, %d)", start, stop, step))
	}

	n := len(t.elements)
	out := []*element.Element{}
	if step > 0 {
		start = max(start, 1)
		stop = min(stop, n+1)
		// 先比较剩余距离再前进，超大步长不会让下标溢出
		for i := start; i < stop; {
			out = append(out, t.elements[i-1])
			if step >= stop-i {
				break
			}
			i += step
		}
		return out, nil
	}

	start = min(start, n)
	stop = max(stop, 0)
	for i := start; i > stop; {
		out = append(out, t.elements[i-1])
		if -(step + 1) >= i-stop-1 {
			break
		}
		i += step
	}
	return out, nil
}
