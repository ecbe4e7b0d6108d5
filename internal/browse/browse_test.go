package browse

import (
	"strings"
	"testing"

	"ptable/internal/element"
	"ptable/internal/periodictable"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	table, err := periodictable.Default()
	require.NoError(t, err)
	m := NewModel(table, Options{Style: "notty", Unit: element.Celsius})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(*Model)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialView(t *testing.T) {
	m := newModel(t)

	require.Equal(t, allElements, m.ViewName())
	require.Len(t, m.list.Items(), 118)

	e, ok := m.Selected()
	require.True(t, ok)
	require.Equal(t, "hydrogen", e.Name())

	out := m.View()
	require.Contains(t, out, "all (118)")
	require.Contains(t, out, "Hydrogen")
}

func TestCycleCategories(t *testing.T) {
	m := newModel(t)

	m.Update(key("tab"))
	require.Equal(t, string(periodictable.AlkaliMetals), m.ViewName())
	require.Len(t, m.list.Items(), 6)
	e, _ := m.Selected()
	require.Equal(t, "lithium", e.Name())

	m.Update(key("shift+tab"))
	m.Update(key("shift+tab"))
	require.Equal(t, string(periodictable.Synthetic), m.ViewName())
}

func TestCycleUnits(t *testing.T) {
	m := newModel(t)
	require.Equal(t, element.Celsius, m.Unit())

	m.Update(key("u"))
	require.Equal(t, element.Fahrenheit, m.Unit())
	item := m.list.Items()[0].(elementItem)
	require.True(t, strings.Contains(item.Description(), "°F"), item.Description())

	m.Update(key("u"))
	require.Equal(t, element.Kelvin, m.Unit())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Empty(t, m.View())

	m = newModel(t)
	_, cmd = m.Update(key("ctrl+c"))
	require.NotNil(t, cmd)
}

func TestItemText(t *testing.T) {
	item := elementItem{e: element.MustNew("Hg"), unit: element.Kelvin}
	require.Equal(t, " 80  Hg  Mercury", item.Title())
	require.Equal(t, "200.59 u · liquid · mp 234.321 K", item.Description())
	require.Equal(t, "mercury Hg", item.FilterValue())
}
