package element

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Flat 元素的扁平化视图，存储字段在前，派生字段在后；缺失值为 nil
type Flat struct {
	Name              string   `json:"name" yaml:"name"`
	Symbol            string   `json:"symbol" yaml:"symbol"`
	AtomicNumber      int      `json:"atomic_number" yaml:"atomic_number"`
	AtomicMass        float64  `json:"atomic_mass" yaml:"atomic_mass"`
	ElectronsPerShell []int    `json:"electrons_per_shell" yaml:"electrons_per_shell,flow"`
	State             *string  `json:"state" yaml:"state"`
	Group             *int     `json:"group" yaml:"group"`
	Period            int      `json:"period" yaml:"period"`
	MeltingPointK     *float64 `json:"melting_point_k" yaml:"melting_point_k"`
	BoilingPointK     *float64 `json:"boiling_point_k" yaml:"boiling_point_k"`
	Density           *float64 `json:"density" yaml:"density"`
	Natural           bool     `json:"natural" yaml:"natural"`
	HasStableIsotope  bool     `json:"has_stable_isotope" yaml:"has_stable_isotope"`
	Discovery         *string  `json:"discovery" yaml:"discovery"`
	DiscoveryYear     *int     `json:"discovery_year" yaml:"discovery_year"`
	Protons           int      `json:"protons" yaml:"protons"`
	Electrons         int      `json:"electrons" yaml:"electrons"`
	MeltingPointC     *float64 `json:"melting_point_c" yaml:"melting_point_c"`
	MeltingPointF     *float64 `json:"melting_point_f" yaml:"melting_point_f"`
	BoilingPointC     *float64 `json:"boiling_point_c" yaml:"boiling_point_c"`
	BoilingPointF     *float64 `json:"boiling_point_f" yaml:"boiling_point_f"`
}

// FieldNames 扁平化视图的字段名，顺序与 Flat 一致
var FieldNames = []string{
	"name", "symbol", "atomic_number", "atomic_mass", "electrons_per_shell",
	"state", "group", "period", "melting_point_k", "boiling_point_k", "density",
	"natural", "has_stable_isotope", "discovery", "discovery_year",
	"protons", "electrons", "melting_point_c", "melting_point_f", "boiling_point_c", "boiling_point_f",
}

// Flatten 返回元素的扁平化视图
func (e *Element) Flatten() Flat {
	f := Flat{
		Name:              e.name,
		Symbol:            e.symbol,
		AtomicNumber:      e.atomicNumber,
		AtomicMass:        e.atomicMass,
		ElectronsPerShell: e.ElectronsPerShell(),
		Group:             e.group.ptr(),
		Period:            e.period,
		MeltingPointK:     e.meltingPointK.ptr(),
		BoilingPointK:     e.boilingPointK.ptr(),
		Density:           e.density.ptr(),
		Natural:           e.natural,
		HasStableIsotope:  e.hasStableIsotope,
		Discovery:         e.discovery.ptr(),
		DiscoveryYear:     e.discoveryYear.ptr(),
		Protons:           e.Protons(),
		Electrons:         e.Electrons(),
		MeltingPointC:     ptrOf(e.MeltingPointC()),
		MeltingPointF:     ptrOf(e.MeltingPointF()),
		BoilingPointC:     ptrOf(e.BoilingPointC()),
		BoilingPointF:     ptrOf(e.BoilingPointF()),
	}
	if s, ok := e.state.get(); ok {
		str := string(s)
		f.State = &str
	}
	return f
}

// ToMap 返回包含全部存储字段与派生字段的扁平映射，缺失值为 nil
func (e *Element) ToMap() map[string]any {
	f := e.Flatten()
	return map[string]any{
		"name":                f.Name,
		"symbol":              f.Symbol,
		"atomic_number":       f.AtomicNumber,
		"atomic_mass":         f.AtomicMass,
		"electrons_per_shell": f.ElectronsPerShell,
		"state":               deref(f.State),
		"group":               deref(f.Group),
		"period":              f.Period,
		"melting_point_k":     deref(f.MeltingPointK),
		"boiling_point_k":     deref(f.BoilingPointK),
		"density":             deref(f.Density),
		"natural":             f.Natural,
		"has_stable_isotope":  f.HasStableIsotope,
		"discovery":           deref(f.Discovery),
		"discovery_year":      deref(f.DiscoveryYear),
		"protons":             f.Protons,
		"electrons":           f.Electrons,
		"melting_point_c":     deref(f.MeltingPointC),
		"melting_point_f":     deref(f.MeltingPointF),
		"boiling_point_c":     deref(f.BoilingPointC),
		"boiling_point_f":     deref(f.BoilingPointF),
	}
}

// ToJSON 序列化扁平视图；indent > 0 时缩进，compact 时去掉所有多余空白
func (e *Element) ToJSON(indent int, compact bool) (string, error) {
	data, err := json.Marshal(e.Flatten())
	if err != nil {
		return "", err
	}
	if compact || indent <= 0 {
		return string(data), nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func ptrOf[T any](v T, ok bool) *T {
	if !ok {
		return nil
	}
	return &v
}

// deref 把 nil 指针转换为无类型 nil，非 nil 指针转换为值
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
