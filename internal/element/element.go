// Package element 定义不可变的化学元素记录及其内置数据集
package element

import (
	"slices"
)

// optional 可缺失的值，缺失与零值严格区分
type optional[T any] struct {
	value T
	ok    bool
}

func some[T any](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

func fromPtr[T any](p *T) optional[T] {
	if p == nil {
		return optional[T]{}
	}
	return some(*p)
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

func (o optional[T]) ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Element 化学元素，构建后不可修改
type Element struct {
	name              string
	symbol            string
	atomicNumber      int
	atomicMass        float64
	electronsPerShell []int
	state             optional[State]
	group             optional[int]
	period            int
	meltingPointK     optional[float64]
	boilingPointK     optional[float64]
	density           optional[float64]
	natural           bool
	hasStableIsotope  bool
	discovery         optional[string]
	discoveryYear     optional[int]
}

// Name 小写的规范名称
func (e *Element) Name() string { return e.name }

// Symbol 规范大小写的元素符号，例如 "Fe"
func (e *Element) Symbol() string { return e.symbol }

// AtomicNumber 原子序数
func (e *Element) AtomicNumber() int { return e.atomicNumber }

// AtomicMass 原子质量
func (e *Element) AtomicMass() float64 { return e.atomicMass }

// ElectronsPerShell 各电子层的电子数，返回副本
func (e *Element) ElectronsPerShell() []int { return slices.Clone(e.electronsPerShell) }

// State 室温下的物态
func (e *Element) State() (State, bool) { return e.state.get() }

// Group 族，镧系和锕系中的部分元素没有族
func (e *Element) Group() (int, bool) { return e.group.get() }

// Period 周期
func (e *Element) Period() int { return e.period }

// MeltingPointK 熔点（K）
func (e *Element) MeltingPointK() (float64, bool) { return e.meltingPointK.get() }

// BoilingPointK 沸点（K）
func (e *Element) BoilingPointK() (float64, bool) { return e.boilingPointK.get() }

// Density 室温密度（g/cm³）
func (e *Element) Density() (float64, bool) { return e.density.get() }

// Natural 是否天然存在
func (e *Element) Natural() bool { return e.natural }

// HasStableIsotope 是否有稳定同位素
func (e *Element) HasStableIsotope() bool { return e.hasStableIsotope }

// Discovery 发现者，多个发现者以逗号分隔
func (e *Element) Discovery() (string, bool) { return e.discovery.get() }

// DiscoveryYear 发现年份，负数表示公元前
func (e *Element) DiscoveryYear() (int, bool) { return e.discoveryYear.get() }

// Protons 质子数
func (e *Element) Protons() int { return e.atomicNumber }

// Electrons 中性原子的电子数
func (e *Element) Electrons() int { return e.atomicNumber }

// MeltingPointC 熔点（°C）
func (e *Element) MeltingPointC() (float64, bool) { return e.MeltingPoint(Celsius) }

// MeltingPointF 熔点（°F）
func (e *Element) MeltingPointF() (float64, bool) { return e.MeltingPoint(Fahrenheit) }

// BoilingPointC 沸点（°C）
func (e *Element) BoilingPointC() (float64, bool) { return e.BoilingPoint(Celsius) }

// BoilingPointF 沸点（°F）
func (e *Element) BoilingPointF() (float64, bool) { return e.BoilingPoint(Fahrenheit) }

// MeltingPoint 按指定单位返回熔点
func (e *Element) MeltingPoint(unit Unit) (float64, bool) {
	k, ok := e.meltingPointK.get()
	if !ok {
		return 0, false
	}
	return unit.FromKelvin(k), true
}

// BoilingPoint 按指定单位返回沸点
func (e *Element) BoilingPoint(unit Unit) (float64, bool) {
	k, ok := e.boilingPointK.get()
	if !ok {
		return 0, false
	}
	return unit.FromKelvin(k), true
}

// String 返回元素名称
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	return e.name
}
