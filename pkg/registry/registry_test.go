package registry

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type testItem struct {
	id    string
	name  string
	typ   string
	alias []string
}

func (i *testItem) ID() string   { return i.id }
func (i *testItem) Name() string { return i.name }
func (i *testItem) Type() string { return i.typ }

func nameIndex(i *testItem) []string {
	return append([]string{strings.ToLower(i.name)}, i.alias...)
}

func TestRegisterPreservesOrder(t *testing.T) {
	reg := NewRegistry[*testItem](WithIndex[*testItem]("name", nameIndex))
	require.NoError(t, reg.Register(&testItem{id: "b", name: "Beta", typ: "x"}))
	require.NoError(t, reg.Register(&testItem{id: "a", name: "Alpha", typ: "y", alias: []string{"first"}}))
	require.NoError(t, reg.Register(&testItem{id: "c", name: "Gamma", typ: "x"}))

	ids := []string{}
	for _, item := range reg.List() {
		ids = append(ids, item.ID())
	}
	require.Equal(t, []string{"b", "a", "c"}, ids)
	require.Equal(t, 3, reg.Len())
	require.Equal(t, []string{"x", "y"}, reg.Types())

	byType := reg.GetByType("x")
	require.Len(t, byType, 2)
	require.Equal(t, "c", byType[1].ID())
	require.Empty(t, reg.GetByType("missing"))
	require.NotNil(t, reg.GetByType("missing"))

	item, ok := reg.Lookup("name", "first")
	require.True(t, ok)
	require.Equal(t, "a", item.ID())

	_, ok = reg.Lookup("name", "delta")
	require.False(t, ok)
	_, ok = reg.Lookup("unknown", "alpha")
	require.False(t, ok)
	require.True(t, reg.Contains("c"))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry[*testItem](WithIndex[*testItem]("name", nameIndex))
	require.NoError(t, reg.Register(&testItem{id: "a", name: "Alpha", typ: "x"}))

	err := reg.Register(&testItem{id: "a", name: "Other", typ: "x"})
	require.ErrorIs(t, err, ErrDuplicateID)

	err = reg.Register(&testItem{id: "b", name: "ALPHA", typ: "x"})
	require.ErrorIs(t, err, ErrDuplicateKey)

	// 失败的注册不留下任何痕迹
	require.Equal(t, 1, reg.Len())
	require.False(t, reg.Contains("b"))

	err = reg.Register(&testItem{id: "", name: "Empty"})
	require.ErrorIs(t, err, ErrEmptyID)
}

func TestFreeze(t *testing.T) {
	reg := NewRegistry[*testItem]()
	require.NoError(t, reg.Register(&testItem{id: "a", typ: "x"}))
	reg.Freeze()
	require.ErrorIs(t, reg.Register(&testItem{id: "b", typ: "x"}), ErrFrozen)
}

func TestBuildMultiClassify(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6}
	reg, err := Build(
		func(n int) string { return strings.Repeat("n", n) },
		values,
		WithClassifier[int](func(n int) []string {
			types := []string{"all"}
			if n%2 == 0 {
				types = append(types, "even")
			}
			if n%3 == 0 {
				types = append(types, "three")
			}
			return types
		}),
	)
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, reg.GetByType("even"))
	require.Equal(t, []int{3, 6}, reg.GetByType("three"))
	require.Equal(t, values, reg.GetByType("all"))
	require.ErrorIs(t, reg.Register(7), ErrFrozen)

	_, err = Build(func(n int) string { return "same" }, values)
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestListReturnsCopy(t *testing.T) {
	reg, err := Build(func(s string) string { return s }, []string{"a", "b"})
	require.NoError(t, err)

	list := reg.List()
	list[0] = "mutated"
	require.Equal(t, []string{"a", "b"}, reg.List())
}

func TestConcurrentReads(t *testing.T) {
	reg, err := Build(func(s string) string { return s }, []string{"a", "b", "c"},
		WithIndex[string]("upper", func(s string) []string { return []string{strings.ToUpper(s)} }))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := reg.Lookup("upper", "B"); !ok {
					t.Error("期望并发读取时找到 B")
					return
				}
				_ = reg.List()
			}
		}()
	}
	wg.Wait()
}
