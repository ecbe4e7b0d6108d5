package element

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"ptable/internal/common/errors"
)

func TestNewByNameSymbolNumber(t *testing.T) {
	byName, err := New("Hydrogen")
	require.NoError(t, err)
	bySymbol, err := New("h")
	require.NoError(t, err)
	byNumber, err := New(1)
	require.NoError(t, err)

	require.Same(t, byName, bySymbol)
	require.Same(t, byName, byNumber)
	require.Equal(t, "hydrogen", byName.Name())
	require.Equal(t, "H", byName.Symbol())
}

func TestNewIntegerKinds(t *testing.T) {
	for _, token := range []any{int8(26), int16(26), int32(26), int64(26), uint(26), uint8(26), uint16(26), uint32(26), uint64(26)} {
		e, err := New(token)
		require.NoError(t, err, "%T", token)
		require.Equal(t, "Fe", e.Symbol())
	}
}

func TestNewAliases(t *testing.T) {
	cases := map[string]string{
		"aluminum": "aluminium",
		"SULPHUR":  "sulfur",
		"Cesium":   "caesium",
	}
	for alias, name := range cases {
		e, err := New(alias)
		require.NoError(t, err)
		require.Equal(t, name, e.Name())
	}
	require.Equal(t, "aluminium", Aliases()["aluminum"])
}

func TestNewErrors(t *testing.T) {
	for _, token := range []any{"unobtainium", "", 0, 119, -1, uint64(1 << 63)} {
		_, err := New(token)
		require.True(t, errors.IsErrorCode(err, errors.ErrCodeElementNotFound), "token %v: %v", token, err)
	}

	for _, token := range []any{1.0, true, nil, struct{}{}, []string{"H"}} {
		_, err := New(token)
		require.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidArgumentType), "token %v: %v", token, err)
	}
}

func TestOptionalFields(t *testing.T) {
	astatine := MustNew("At")
	_, ok := astatine.State()
	require.False(t, ok)

	lanthanum := MustNew("La")
	_, ok = lanthanum.Group()
	require.False(t, ok)

	lutetium := MustNew("Lu")
	g, ok := lutetium.Group()
	require.True(t, ok)
	require.Equal(t, 3, g)

	iron := MustNew("iron")
	_, ok = iron.Discovery()
	require.False(t, ok)
	_, ok = iron.DiscoveryYear()
	require.False(t, ok)

	copper := MustNew("copper")
	year, ok := copper.DiscoveryYear()
	require.True(t, ok)
	require.Equal(t, -9000, year)
}

func TestElectronsPerShellIsCopy(t *testing.T) {
	sodium := MustNew("Na")
	shells := sodium.ElectronsPerShell()
	require.Equal(t, []int{2, 8, 1}, shells)
	shells[0] = 99
	require.Equal(t, []int{2, 8, 1}, sodium.ElectronsPerShell())
}

func TestDerived(t *testing.T) {
	h := MustNew(1)
	require.Equal(t, 1, h.Protons())
	require.Equal(t, 1, h.Electrons())

	c, ok := h.MeltingPointC()
	require.True(t, ok)
	require.Equal(t, -259.16, c)

	f, ok := h.MeltingPointF()
	require.True(t, ok)
	require.Equal(t, -434.488, f)

	k, ok := h.MeltingPoint(Kelvin)
	require.True(t, ok)
	require.Equal(t, 13.99, k)

	og := MustNew("Og")
	_, ok = og.BoilingPointC()
	require.False(t, ok)
}

func TestEqualityAndOrdering(t *testing.T) {
	h, he := MustNew("H"), MustNew("He")

	require.True(t, h.Equal(MustNew("hydrogen")))
	require.False(t, h.Equal(he))
	require.False(t, h.Equal(nil))
	require.True(t, h.Less(he))
	require.True(t, h.LessOrEqual(h))
	require.True(t, he.Greater(h))
	require.True(t, he.GreaterOrEqual(he))
	require.Equal(t, -1, h.Compare(he))

	require.False(t, h.EqualAny("hydrogen"))
	require.False(t, h.EqualAny(1))
	require.False(t, h.EqualAny((*Element)(nil)))
	require.True(t, h.EqualAny(MustNew(1)))

	n, err := he.CompareAny(h)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = h.CompareAny(1)
	require.True(t, errors.IsErrorCode(err, errors.ErrCodeCompareTypeMismatch))
	require.Contains(t, err.Error(), "cannot compare int with Element")

	_, err = h.CompareAny((*Element)(nil))
	require.True(t, errors.IsErrorCode(err, errors.ErrCodeCompareTypeMismatch))
	require.Panics(t, func() { h.Compare(nil) })
}

func TestParseState(t *testing.T) {
	for in, want := range map[string]State{"solid": Solid, "L": Liquid, "GAS": Gas, "g": Gas, "S": Solid} {
		got, err := ParseState(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	for _, in := range []string{"plasma", " s ", "solid\n", ""} {
		_, err := ParseState(in)
		require.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidArgument), "state %q", in)
	}
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{"K": Kelvin, "c": Celsius, "F": Fahrenheit} {
		got, err := ParseUnit(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	for _, in := range []string{"r", "kelvin", "Celsius", "fahrenheit", " k", ""} {
		_, err := ParseUnit(in)
		require.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidArgument), "unit %q", in)
	}
	require.Equal(t, Celsius, Kelvin.Next())
	require.Equal(t, Kelvin, Fahrenheit.Next())
}

func TestToMap(t *testing.T) {
	m := MustNew("Ts").ToMap()
	require.Len(t, m, len(FieldNames))
	for _, key := range FieldNames {
		require.Contains(t, m, key)
	}
	require.Equal(t, "tennessine", m["name"])
	require.Equal(t, 117, m["protons"])
	require.Nil(t, m["density"])
	require.Nil(t, m["melting_point_c"])

	h := MustNew("H").ToMap()
	require.Equal(t, "gas", h["state"])
	require.Equal(t, 1, h["group"])
	require.Equal(t, -259.16, h["melting_point_c"])
}

func TestToJSON(t *testing.T) {
	h := MustNew("H")

	compact, err := h.ToJSON(0, true)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, json.Compact(&buf, []byte(compact)))
	require.Equal(t, buf.String(), compact)
	require.NotContains(t, compact, "\n")
	require.Contains(t, compact, `"discovery":"Henry Cavendish"`)
	require.True(t, strings.HasPrefix(compact, `{"name":"hydrogen","symbol":"H","atomic_number":1,`))

	indented, err := h.ToJSON(2, false)
	require.NoError(t, err)
	require.Contains(t, indented, "\n  \"symbol\": \"H\"")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(indented), &decoded))
	require.Len(t, decoded, len(FieldNames))

	raw, err := MustNew("At").ToJSON(0, true)
	require.NoError(t, err)
	require.Contains(t, raw, `"state":null`)
}

func TestDisplayData(t *testing.T) {
	h := MustNew("H").DisplayData()
	require.Equal(t, strings.Join([]string{
		"Name: Hydrogen",
		"Symbol: H",
		"Atomic number: 1",
		"Atomic mass: 1.008",
		"Electrons per shell: 1",
		"State (room temperature): Gas",
		"Group: 1",
		"Period: 1",
		"Melting point: 13.99 K / -259.16 °C / -434.488 °F",
		"Boiling point: 20.271 K / -252.879 °C / -423.1822 °F",
		"Density (room temperature): 8.988e-05 g/cm³",
		"Found naturally: true",
		"Has stable isotope(s): true",
		"Discovered by: Henry Cavendish in 1766",
	}, "\n"), h)

	copper := MustNew("Cu").DisplayData()
	require.Contains(t, copper, "Discovered by: Middle East in 9000 BC")

	iron := MustNew("Fe").DisplayData()
	require.NotContains(t, iron, "Discovered")

	la := MustNew("La").DisplayData()
	require.NotContains(t, la, "Group:")
}

func TestFormatHelpers(t *testing.T) {
	require.Equal(t, "2835.0", FormatFloat(2835))
	require.Equal(t, "0.0001786", FormatFloat(0.0001786))
	require.Equal(t, "9000 BC", FormatYear(-9000))
	require.Equal(t, "1766", FormatYear(1766))
	require.Equal(t, "2-8-1", FormatShells([]int{2, 8, 1}, "-"))
}
