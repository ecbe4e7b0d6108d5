package periodictable

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	"ptable/internal/element"
)

// Densest 密度最大的元素，没有密度数据的元素不参与比较
func (t *Table) Densest() *element.Element {
	var best *element.Element
	bestDensity := math.Inf(-1)
	for _, e := range t.elements {
		if d, ok := e.Density(); ok && d > bestDensity {
			best, bestDensity = e, d
		}
	}
	return best
}

// LowestMeltingPoint 熔点最低的元素
func (t *Table) LowestMeltingPoint() *element.Element {
	var best *element.Element
	bestK := math.Inf(1)
	for _, e := range t.elements {
		if k, ok := e.MeltingPointK(); ok && k < bestK {
			best, bestK = e, k
		}
	}
	return best
}

// MeanAtomicMass 平均原子质量
func (t *Table) MeanAtomicMass() float64 {
	sum := 0.0
	for _, e := range t.elements {
		sum += e.AtomicMass()
	}
	return sum / float64(len(t.elements))
}

// PrimeAtomicNumbers 原子序数为质数的元素
func (t *Table) PrimeAtomicNumbers() []*element.Element {
	return t.Where(func(e *element.Element) bool { return isPrime(e.AtomicNumber()) })
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// OneLetterSymbols 单字母符号
func (t *Table) OneLetterSymbols() []string {
	out := []string{}
	for _, e := range t.FilterBySymbol(func(s string) bool { return len(s) == 1 }) {
		out = append(out, e.Symbol())
	}
	return out
}

// SortedByBoilingPoint 按沸点升序排列，没有沸点数据的元素按原子序数排在最后
func (t *Table) SortedByBoilingPoint() []*element.Element {
	out := t.Elements()
	slices.SortStableFunc(out, func(a, b *element.Element) int {
		return cmp.Compare(boilingOrInf(a), boilingOrInf(b))
	})
	return out
}

func boilingOrInf(e *element.Element) float64 {
	if k, ok := e.BoilingPointK(); ok {
		return k
	}
	return math.Inf(1)
}

// Random 随机选择一个元素
func (t *Table) Random() *element.Element {
	return t.elements[rand.IntN(len(t.elements))]
}
