// Package display 负责元素的终端展示：lipgloss 卡片与表格、glamour 渲染的 Markdown
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"ptable/internal/common/errors"
	"ptable/internal/element"
)

const missing = "n/a"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ffff")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(16)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// property 展示用的一行属性
type property struct {
	label string
	value string
}

func properties(e *element.Element, unit element.Unit) []property {
	props := []property{
		{"Atomic number", strconv.Itoa(e.AtomicNumber())},
		{"Atomic mass", element.FormatFloat(e.AtomicMass())},
		{"Shells", shells(e)},
		{"State", state(e)},
		{"Group", group(e)},
		{"Period", strconv.Itoa(e.Period())},
		{"Melting point", temperature(e.MeltingPoint, unit)},
		{"Boiling point", temperature(e.BoilingPoint, unit)},
		{"Density", density(e)},
		{"Natural", strconv.FormatBool(e.Natural())},
		{"Stable isotope", strconv.FormatBool(e.HasStableIsotope())},
		{"Discovery", discovery(e)},
	}
	return props
}

// Card 单个元素的卡片视图
func Card(e *element.Element, unit element.Unit) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", e.Symbol(), e.DisplayName())))
	for _, p := range properties(e, unit) {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(p.label))
		b.WriteString(p.value)
	}
	return cardStyle.Render(b.String())
}

// Table 多个元素的表格视图
func Table(els []*element.Element, unit element.Unit) string {
	rows := make([][]string, 0, len(els))
	for _, e := range els {
		rows = append(rows, []string{
			strconv.Itoa(e.AtomicNumber()),
			e.Symbol(),
			e.Name(),
			element.FormatFloat(e.AtomicMass()),
			state(e),
			group(e),
			strconv.Itoa(e.Period()),
			temperature(e.MeltingPoint, unit),
			temperature(e.BoilingPoint, unit),
			density(e),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers("Z", "Symbol", "Name", "Mass", "State", "Group", "Period",
			"Melting ("+unit.Symbol()+")", "Boiling ("+unit.Symbol()+")", "Density").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

// Markdown 元素的 Markdown 摘要
func Markdown(e *element.Element) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", e.DisplayName(), e.Symbol())
	b.WriteString("| Property | Value |\n|---|---|\n")
	for _, p := range properties(e, element.Kelvin) {
		if p.label == "Melting point" || p.label == "Boiling point" {
			p.value = allUnits(e, p.label)
		}
		fmt.Fprintf(&b, "| %s | %s |\n", p.label, p.value)
	}
	return b.String()
}

func allUnits(e *element.Element, label string) string {
	get := e.MeltingPoint
	if label == "Boiling point" {
		get = e.BoilingPoint
	}
	parts := make([]string, 0, 3)
	for _, u := range element.Units() {
		v, ok := get(u)
		if !ok {
			return missing
		}
		parts = append(parts, element.FormatFloat(v)+" "+u.Symbol())
	}
	return strings.Join(parts, " / ")
}

// RenderMarkdown 用 glamour 渲染 Markdown，style 为 auto、dark、light 或 notty，wrap 为 0 时使用默认宽度
func RenderMarkdown(md, style string, wrap int) (string, error) {
	opts := []glamour.TermRendererOption{}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	if wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wrap))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.WrapError(errors.ErrCodeInternalErr, "创建Markdown渲染器失败", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", errors.WrapError(errors.ErrCodeInternalErr, "渲染Markdown失败", err)
	}
	return out, nil
}

func shells(e *element.Element) string {
	s := e.ElectronsPerShell()
	if len(s) == 0 {
		return missing
	}
	return element.FormatShells(s, ", ")
}

func state(e *element.Element) string {
	if s, ok := e.State(); ok {
		return string(s)
	}
	return missing
}

func group(e *element.Element) string {
	if g, ok := e.Group(); ok {
		return strconv.Itoa(g)
	}
	return missing
}

func density(e *element.Element) string {
	if d, ok := e.Density(); ok {
		return element.FormatFloat(d) + " g/cm³"
	}
	return missing
}

func temperature(get func(element.Unit) (float64, bool), unit element.Unit) string {
	if v, ok := get(unit); ok {
		return element.FormatFloat(v) + " " + unit.Symbol()
	}
	return missing
}

func discovery(e *element.Element) string {
	who, hasWho := e.Discovery()
	year, hasYear := e.DiscoveryYear()
	switch {
	case hasWho && hasYear:
		return who + " (" + element.FormatYear(year) + ")"
	case hasWho:
		return who
	case hasYear:
		return element.FormatYear(year)
	default:
		return missing
	}
}
