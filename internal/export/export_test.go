package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"ptable/internal/common/errors"
	"ptable/internal/element"
	"ptable/internal/periodictable"
)

func alkali(t *testing.T) []*element.Element {
	t.Helper()
	table, err := periodictable.Default()
	require.NoError(t, err)
	return table.AlkaliMetals()
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"JSON": FormatJSON, "csv": FormatCSV, "yml": FormatYAML, " yaml ": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	require.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidArgument))
	require.Equal(t, ".csv", FormatCSV.Extension())
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, alkali(t)))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 7)
	require.Equal(t, element.FieldNames, rows[0])

	lithium := rows[1]
	require.Equal(t, "lithium", lithium[0])
	require.Equal(t, "2-1", lithium[4])
	require.Equal(t, "solid", lithium[5])
	require.Equal(t, "true", lithium[11])

	// 钫没有密度数据
	francium := rows[6]
	require.Equal(t, "francium", francium[0])
	require.Equal(t, "", francium[10])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, alkali(t), Options{Indent: 2}))
	require.Contains(t, buf.String(), "\n  {")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 6)
	require.Equal(t, "Li", decoded[0]["symbol"])

	buf.Reset()
	require.NoError(t, WriteJSON(&buf, alkali(t), Options{Indent: 2, Compact: true}))
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, alkali(t)))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 6)
	require.Equal(t, "sodium", decoded[1]["name"])
	require.Equal(t, 11, decoded[1]["atomic_number"])
	require.Contains(t, buf.String(), "electrons_per_shell: [2, 8, 1]")
}

func TestElementJSON(t *testing.T) {
	s, err := ElementJSON(element.MustNew("Og"), 0, true)
	require.NoError(t, err)
	require.Contains(t, s, `"name":"oganesson"`)
}

func TestSaveElements(t *testing.T) {
	dir := t.TempDir()
	for _, format := range Formats() {
		path := filepath.Join(dir, "nested", "alkali"+format.Extension())
		require.NoError(t, SaveElements(path, format, alkali(t), Options{Indent: 2}))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "caesium")
	}

	err := SaveElements(filepath.Join(dir, "x.xml"), Format("xml"), alkali(t), Options{})
	require.True(t, errors.IsErrorCode(err, errors.ErrCodeInvalidArgument))
}

func TestMappingJSON(t *testing.T) {
	table, err := periodictable.Default()
	require.NoError(t, err)

	for _, opts := range []periodictable.MappingOptions{periodictable.DefaultMappingOptions(), {}} {
		s, err := MappingJSON(table, opts, Options{})
		require.NoError(t, err)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal([]byte(s), &decoded))
		require.Contains(t, decoded, "elements")
		require.Contains(t, decoded, "noble_gases")

		var nobles []map[string]any
		require.NoError(t, json.Unmarshal(decoded["noble_gases"], &nobles))
		require.Len(t, nobles, 7)
		require.Equal(t, "helium", nobles[0]["name"])
	}

	s, err := MappingJSON(table, periodictable.MappingOptions{ElementsOnly: true}, Options{Indent: 2})
	require.NoError(t, err)
	var byName map[string]map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &byName))
	require.Len(t, byName, 118)
	require.Equal(t, "Fe", byName["iron"]["symbol"])
}
