package element

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayData 返回适合终端输出的多行摘要，只包含存在的字段
func (e *Element) DisplayData() string {
	lines := []string{
		"Name: " + e.DisplayName(),
		"Symbol: " + e.symbol,
		fmt.Sprintf("Atomic number: %d", e.atomicNumber),
		"Atomic mass: " + FormatFloat(e.atomicMass),
	}

	if len(e.electronsPerShell) > 0 {
		lines = append(lines, "Electrons per shell: "+FormatShells(e.electronsPerShell, ", "))
	}
	if s, ok := e.State(); ok {
		lines = append(lines, "State (room temperature): "+titleSymbol(string(s)))
	}
	if g, ok := e.Group(); ok {
		lines = append(lines, fmt.Sprintf("Group: %d", g))
	}
	lines = append(lines, fmt.Sprintf("Period: %d", e.period))

	if line, ok := temperatureLine("Melting point", e.MeltingPoint); ok {
		lines = append(lines, line)
	}
	if line, ok := temperatureLine("Boiling point", e.BoilingPoint); ok {
		lines = append(lines, line)
	}
	if d, ok := e.Density(); ok {
		lines = append(lines, fmt.Sprintf("Density (room temperature): %s g/cm³", FormatFloat(d)))
	}

	lines = append(lines,
		fmt.Sprintf("Found naturally: %t", e.natural),
		fmt.Sprintf("Has stable isotope(s): %t", e.hasStableIsotope))

	year, hasYear := e.DiscoveryYear()
	if who, ok := e.Discovery(); ok {
		line := "Discovered by: " + who
		if hasYear {
			line += " in " + FormatYear(year)
		}
		lines = append(lines, line)
	} else if hasYear {
		lines = append(lines, "Discovered in "+FormatYear(year))
	}

	return strings.Join(lines, "\n")
}

func temperatureLine(label string, get func(Unit) (float64, bool)) (string, bool) {
	k, ok := get(Kelvin)
	if !ok {
		return "", false
	}
	c, _ := get(Celsius)
	f, _ := get(Fahrenheit)
	return fmt.Sprintf("%s: %s K / %s °C / %s °F", label, FormatFloat(k), FormatFloat(c), FormatFloat(f)), true
}

// FormatYear 负数年份显示为公元前，例如 -9000 -> "9000 BC"
func FormatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("%d BC", -year)
	}
	return strconv.Itoa(year)
}

// FormatFloat 最短表示的浮点数，整数值保留 ".0"
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// FormatShells 用分隔符连接各电子层的电子数
func FormatShells(shells []int, sep string) string {
	parts := make([]string, len(shells))
	for i, n := range shells {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}
