package element

import (
	"cmp"

	"ptable/internal/common/errors"
)

// Equal 原子序数相同即相等，nil 不等于任何元素
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return false
	}
	return e.atomicNumber == o.atomicNumber
}

// Compare 按原子序数比较，可直接用于 slices.SortFunc
//
// Compare 和下面的大小比较要求 o 非 nil，传入 nil 会 panic；o 可能为 nil 时使用 CompareAny。
func (e *Element) Compare(o *Element) int {
	return cmp.Compare(e.atomicNumber, o.atomicNumber)
}

// Less 原子序数小于 o
func (e *Element) Less(o *Element) bool { return e.atomicNumber < o.atomicNumber }

// LessOrEqual 原子序数小于或等于 o
func (e *Element) LessOrEqual(o *Element) bool { return e.atomicNumber <= o.atomicNumber }

// Greater 原子序数大于 o
func (e *Element) Greater(o *Element) bool { return e.atomicNumber > o.atomicNumber }

// GreaterOrEqual 原子序数大于或等于 o
func (e *Element) GreaterOrEqual(o *Element) bool { return e.atomicNumber >= o.atomicNumber }

// EqualAny 与任意值比较相等，非元素值返回 false
func (e *Element) EqualAny(v any) bool {
	o, ok := asElement(v)
	return ok && e.Equal(o)
}

// CompareAny 与任意值比较大小，非元素值返回 COMPARE_TYPE_MISMATCH
func (e *Element) CompareAny(v any) (int, error) {
	o, ok := asElement(v)
	if !ok {
		return 0, errors.NewCompareTypeError(v)
	}
	return e.Compare(o), nil
}

func asElement(v any) (*Element, bool) {
	switch o := v.(type) {
	case *Element:
		return o, o != nil
	case Element:
		return &o, true
	default:
		return nil, false
	}
}
