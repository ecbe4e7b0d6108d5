package element

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode"

	"github.com/BurntSushi/toml"

	"ptable/internal/common/errors"
)

// Count 元素总数
const Count = 118

//go:embed data/elements.toml
var embeddedDataset []byte

// record 数据文件中的一条元素记录，缺失的键对应 nil
type record struct {
	Name              string   `toml:"name"`
	Symbol            string   `toml:"symbol"`
	AtomicNumber      int      `toml:"atomic_number"`
	AtomicMass        float64  `toml:"atomic_mass"`
	ElectronsPerShell []int    `toml:"electrons_per_shell"`
	State             *string  `toml:"state"`
	Group             *int     `toml:"group"`
	Period            int      `toml:"period"`
	MeltingPointK     *float64 `toml:"melting_point_k"`
	BoilingPointK     *float64 `toml:"boiling_point_k"`
	Density           *float64 `toml:"density"`
	Natural           bool     `toml:"natural"`
	HasStableIsotope  bool     `toml:"has_stable_isotope"`
	Discovery         *string  `toml:"discovery"`
	DiscoveryYear     *int     `toml:"discovery_year"`
}

type datasetFile struct {
	Elements []record `toml:"elements"`
}

var loadDataset = sync.OnceValues(func() ([]*Element, error) {
	return Decode(bytes.NewReader(embeddedDataset))
})

// Dataset 返回内置的 118 个元素，按原子序数排列；每次返回新的切片，元素本身共享
func Dataset() ([]*Element, error) {
	elements, err := loadDataset()
	if err != nil {
		return nil, err
	}
	return slices.Clone(elements), nil
}

// Decode 从 TOML 数据源解码并校验元素数据集，任何一条记录无效都返回 DATASET_INVALID
func Decode(r io.Reader) ([]*Element, error) {
	var file datasetFile
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, errors.WrapDatasetError("解析元素数据失败", err)
	}

	if len(file.Elements) != Count {
		return nil, errors.NewDatasetError(fmt.Sprintf("expected %d records, got %d", Count, len(file.Elements)))
	}

	elements := make([]*Element, 0, Count)
	for i, rec := range file.Elements {
		e, err := rec.toElement(i)
		if err != nil {
			return nil, err
		}
		elements = append(elements, e)
	}

	if err := checkUnique(elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// toElement 校验单条记录并转换为元素
func (rec record) toElement(i int) (*Element, error) {
	invalid := func(format string, args ...any) error {
		return errors.NewDatasetError(fmt.Sprintf("record %d (%s): ", i, rec.Name) + fmt.Sprintf(format, args...))
	}

	if rec.AtomicNumber != i+1 {
		return nil, invalid("atomic number %d, expected %d", rec.AtomicNumber, i+1)
	}
	if rec.Name == "" || rec.Name != foldName(rec.Name) {
		return nil, invalid("name must be non-empty lowercase")
	}
	if n := len(rec.Symbol); n < 1 || n > 3 || !isLetters(rec.Symbol) {
		return nil, invalid("symbol %q must be 1-3 letters", rec.Symbol)
	}
	if rec.Symbol != titleSymbol(rec.Symbol) {
		return nil, invalid("symbol %q is not in canonical case", rec.Symbol)
	}
	if rec.Period < 1 || rec.Period > 7 {
		return nil, invalid("period %d out of range 1..7", rec.Period)
	}
	if rec.Group != nil && (*rec.Group < 1 || *rec.Group > 18) {
		return nil, invalid("group %d out of range 1..18", *rec.Group)
	}

	var state optional[State]
	if rec.State != nil {
		s := State(*rec.State)
		if !s.valid() {
			return nil, invalid("unknown state %q", *rec.State)
		}
		state = some(s)
	}

	if len(rec.ElectronsPerShell) > 0 {
		sum := 0
		for _, n := range rec.ElectronsPerShell {
			sum += n
		}
		if sum != rec.AtomicNumber {
			return nil, invalid("electrons per shell sum to %d, expected %d", sum, rec.AtomicNumber)
		}
	}

	return &Element{
		name:              rec.Name,
		symbol:            rec.Symbol,
		atomicNumber:      rec.AtomicNumber,
		atomicMass:        rec.AtomicMass,
		electronsPerShell: slices.Clone(rec.ElectronsPerShell),
		state:             state,
		group:             fromPtr(rec.Group),
		period:            rec.Period,
		meltingPointK:     fromPtr(rec.MeltingPointK),
		boilingPointK:     fromPtr(rec.BoilingPointK),
		density:           fromPtr(rec.Density),
		natural:           rec.Natural,
		hasStableIsotope:  rec.HasStableIsotope,
		discovery:         fromPtr(rec.Discovery),
		discoveryYear:     fromPtr(rec.DiscoveryYear),
	}, nil
}

// checkUnique 名称（不区分大小写）与符号必须唯一
func checkUnique(elements []*Element) error {
	names := make(map[string]int, len(elements))
	symbols := make(map[string]int, len(elements))
	for _, e := range elements {
		name := foldName(e.name)
		if prev, dup := names[name]; dup {
			return errors.NewDatasetError(fmt.Sprintf("duplicate name %q (atomic numbers %d and %d)", e.name, prev, e.atomicNumber))
		}
		names[name] = e.atomicNumber

		symbol := titleSymbol(e.symbol)
		if prev, dup := symbols[symbol]; dup {
			return errors.NewDatasetError(fmt.Sprintf("duplicate symbol %q (atomic numbers %d and %d)", e.symbol, prev, e.atomicNumber))
		}
		symbols[symbol] = e.atomicNumber
	}
	return nil
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
