// Package export 把元素写成 JSON、CSV 或 YAML
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ptable/internal/common/errors"
	"ptable/internal/element"
	"ptable/internal/periodictable"
	"ptable/internal/util"
)

// Format 导出格式
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
)

// Formats 全部导出格式
func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatYAML}
}

// ParseFormat 解析导出格式，不区分大小写，yml 等同 yaml
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.NewInvalidArgumentError("无效的导出格式",
			fmt.Sprintf("format must be json, csv or yaml, got %q", s))
	}
}

// Extension 文件扩展名
func (f Format) Extension() string {
	return "." + string(f)
}

// Options JSON 输出选项
type Options struct {
	Indent  int
	Compact bool
}

// ElementJSON 单个元素的 JSON 字符串
func ElementJSON(e *element.Element, indent int, compact bool) (string, error) {
	s, err := e.ToJSON(indent, compact)
	if err != nil {
		return "", errors.WrapExportError("元素序列化失败", err)
	}
	return s, nil
}

func flatten(els []*element.Element) []element.Flat {
	out := make([]element.Flat, len(els))
	for i, e := range els {
		out[i] = e.Flatten()
	}
	return out
}

// WriteJSON 以 JSON 数组写出元素
func WriteJSON(w io.Writer, els []*element.Element, opts Options) error {
	enc := json.NewEncoder(w)
	if opts.Indent > 0 && !opts.Compact {
		enc.SetIndent("", strings.Repeat(" ", opts.Indent))
	}
	if err := enc.Encode(flatten(els)); err != nil {
		return errors.WrapExportError("写出JSON失败", err)
	}
	return nil
}

// WriteCSV 写出表头和每个元素一行，缺失值为空单元格，电子层以 "-" 连接
func WriteCSV(w io.Writer, els []*element.Element) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(element.FieldNames); err != nil {
		return errors.WrapExportError("写出CSV失败", err)
	}
	for _, e := range els {
		if err := cw.Write(csvRow(e.Flatten())); err != nil {
			return errors.WrapExportError("写出CSV失败", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.WrapExportError("写出CSV失败", err)
	}
	return nil
}

func csvRow(f element.Flat) []string {
	return []string{
		f.Name,
		f.Symbol,
		strconv.Itoa(f.AtomicNumber),
		element.FormatFloat(f.AtomicMass),
		element.FormatShells(f.ElectronsPerShell, "-"),
		optString(f.State),
		optInt(f.Group),
		strconv.Itoa(f.Period),
		optFloat(f.MeltingPointK),
		optFloat(f.BoilingPointK),
		optFloat(f.Density),
		strconv.FormatBool(f.Natural),
		strconv.FormatBool(f.HasStableIsotope),
		optString(f.Discovery),
		optInt(f.DiscoveryYear),
		strconv.Itoa(f.Protons),
		strconv.Itoa(f.Electrons),
		optFloat(f.MeltingPointC),
		optFloat(f.MeltingPointF),
		optFloat(f.BoilingPointC),
		optFloat(f.BoilingPointF),
	}
}

func optString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return element.FormatFloat(*p)
}

// WriteYAML 以 YAML 序列写出元素
func WriteYAML(w io.Writer, els []*element.Element) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(flatten(els)); err != nil {
		return errors.WrapExportError("写出YAML失败", err)
	}
	if err := enc.Close(); err != nil {
		return errors.WrapExportError("写出YAML失败", err)
	}
	return nil
}

// Write 按格式写出元素
func Write(w io.Writer, format Format, els []*element.Element, opts Options) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, els, opts)
	case FormatCSV:
		return WriteCSV(w, els)
	case FormatYAML:
		return WriteYAML(w, els)
	default:
		return errors.NewInvalidArgumentError("无效的导出格式", fmt.Sprintf("unsupported format %q", format))
	}
}

// SaveElements 把元素写入文件，必要时创建目录
func SaveElements(path string, format Format, els []*element.Element, opts Options) error {
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.WrapExportError("创建导出目录失败", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapExportError("创建导出文件失败", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := Write(bw, format, els, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.WrapExportError("写入导出文件失败", err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapExportError("关闭导出文件失败", err)
	}

	util.Infow("元素导出完成", map[string]any{
		"path":     path,
		"format":   string(format),
		"elements": len(els),
	})
	return nil
}

// MappingJSON 把整张表的批量映射序列化为 JSON
func MappingJSON(table *periodictable.Table, mapping periodictable.MappingOptions, opts Options) (string, error) {
	m := table.ToMapping(mapping)
	if !mapping.FlattenElements {
		m = flattenMapping(m)
	}

	var (
		data []byte
		err  error
	)
	if opts.Indent > 0 && !opts.Compact {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", opts.Indent))
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return "", errors.WrapExportError("序列化映射失败", err)
	}
	return string(data), nil
}

// flattenMapping 元素本身没有导出字段，序列化前转换为扁平视图
func flattenMapping(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		switch v := value.(type) {
		case *element.Element:
			out[key] = v.Flatten()
		case []*element.Element:
			out[key] = flatten(v)
		case map[string]any:
			out[key] = flattenMapping(v)
		default:
			out[key] = v
		}
	}
	return out
}
