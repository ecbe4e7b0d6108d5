package element

import (
	"fmt"
	"maps"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ptable/internal/common/errors"
)

// historicalAliases 元素名称的历史或地区拼写，键为别名，值为规范名称
var historicalAliases = map[string]string{
	"aluminum": "aluminium",
	"sulphur":  "sulfur",
	"cesium":   "caesium",
}

// Aliases 返回别名到规范名称的映射副本
func Aliases() map[string]string {
	return maps.Clone(historicalAliases)
}

// FoldName 把名称或别名折叠为查找用的键
func FoldName(s string) string {
	return foldName(s)
}

// TitleSymbol 把符号规范为首字母大写形式，例如 "fe" -> "Fe"
func TitleSymbol(s string) string {
	return titleSymbol(s)
}

// DisplayName 首字母大写的名称，用于展示
func (e *Element) DisplayName() string {
	return cases.Title(language.Und).String(e.name)
}

// cases.Caser 不能并发使用，每次调用新建
func foldName(s string) string {
	return cases.Fold().String(s)
}

func titleSymbol(s string) string {
	return cases.Title(language.Und).String(s)
}

// catalog 内置数据集及其查找索引
type catalog struct {
	elements []*Element
	byName   map[string]*Element
	bySymbol map[string]*Element
}

var loadCatalog = sync.OnceValues(func() (*catalog, error) {
	elements, err := loadDataset()
	if err != nil {
		return nil, err
	}
	return newCatalog(elements), nil
})

func newCatalog(elements []*Element) *catalog {
	c := &catalog{
		elements: elements,
		byName:   make(map[string]*Element, len(elements)+len(historicalAliases)),
		bySymbol: make(map[string]*Element, len(elements)),
	}
	for _, e := range elements {
		c.byName[foldName(e.name)] = e
		c.bySymbol[foldName(e.symbol)] = e
	}
	for alias, name := range historicalAliases {
		if e, ok := c.byName[name]; ok {
			c.byName[alias] = e
		}
	}
	return c
}

func (c *catalog) resolve(token string) (*Element, bool) {
	key := FoldName(token)
	if e, ok := c.byName[key]; ok {
		return e, true
	}
	e, ok := c.bySymbol[key]
	return e, ok
}

// New 通过名称、符号或原子序数查找元素，返回数据集中共享的实例
//
// 字符串不区分大小写，也接受历史别名；整数为原子序数；其他类型返回 INVALID_ARGUMENT_TYPE。
func New(token any) (*Element, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}

	switch v := token.(type) {
	case string:
		if e, ok := c.resolve(v); ok {
			return e, nil
		}
		return nil, notFound(v)
	case int:
		return c.byNumber(int64(v))
	case int8:
		return c.byNumber(int64(v))
	case int16:
		return c.byNumber(int64(v))
	case int32:
		return c.byNumber(int64(v))
	case int64:
		return c.byNumber(v)
	case uint:
		return c.byUnsigned(uint64(v))
	case uint8:
		return c.byUnsigned(uint64(v))
	case uint16:
		return c.byUnsigned(uint64(v))
	case uint32:
		return c.byUnsigned(uint64(v))
	case uint64:
		return c.byUnsigned(v)
	default:
		return nil, errors.NewInvalidArgumentTypeError("token", token)
	}
}

func (c *catalog) byNumber(n int64) (*Element, error) {
	if n < 1 || n > int64(len(c.elements)) {
		return nil, notFound(n)
	}
	return c.elements[n-1], nil
}

func (c *catalog) byUnsigned(n uint64) (*Element, error) {
	if n > Count {
		return nil, notFound(n)
	}
	return c.byNumber(int64(n))
}

func notFound(token any) error {
	return errors.NewErrorWithDetails(errors.ErrCodeElementNotFound, "元素不存在",
		fmt.Sprintf("token does not match the name, symbol or atomic number of any element: %v", token))
}

// MustNew 与 New 相同，失败时 panic，仅用于常量式的已知元素
func MustNew(token any) *Element {
	e, err := New(token)
	if err != nil {
		panic(err)
	}
	return e
}
