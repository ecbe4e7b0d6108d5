package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrDuplicateID 重复的项目ID
	ErrDuplicateID = errors.New("registry: duplicate id")
	// ErrDuplicateKey 二级索引中出现重复的键
	ErrDuplicateKey = errors.New("registry: duplicate index key")
	// ErrFrozen 注册表已冻结
	ErrFrozen = errors.New("registry: frozen")
	// ErrEmptyID 项目ID为空
	ErrEmptyID = errors.New("registry: empty id")
)

// KeyFunc 从项目中提取一个或多个索引键
type KeyFunc[T any] func(item T) []string

// Option 注册表构造选项
type Option[T any] func(r *BaseRegistry[T])

// WithIndex 增加一个二级索引，同一索引内的键必须唯一
func WithIndex[T any](name string, keys KeyFunc[T]) Option[T] {
	return func(r *BaseRegistry[T]) {
		r.indexFuncs[name] = keys
		r.indexes[name] = make(map[string]int)
	}
}

// WithClassifier 设置分类函数，一个项目可以属于多个类型
func WithClassifier[T any](types KeyFunc[T]) Option[T] {
	return func(r *BaseRegistry[T]) {
		r.classify = types
	}
}

// BaseRegistry 是注册表的基础实现
type BaseRegistry[T any] struct {
	mu         sync.RWMutex
	idOf       func(T) string
	items      []T
	ids        map[string]int
	indexFuncs map[string]KeyFunc[T]
	indexes    map[string]map[string]int
	classify   KeyFunc[T]
	types      []string
	byType     map[string][]int
	frozen     bool
}

// NewBaseRegistry 创建一个新的基础注册表实例
func NewBaseRegistry[T any](idOf func(T) string, opts ...Option[T]) *BaseRegistry[T] {
	r := &BaseRegistry[T]{
		idOf:       idOf,
		ids:        make(map[string]int),
		indexFuncs: make(map[string]KeyFunc[T]),
		indexes:    make(map[string]map[string]int),
		byType:     make(map[string][]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register 注册一个新的项目到注册表，ID或索引键冲突时不做任何修改
func (r *BaseRegistry[T]) Register(item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrFrozen
	}

	id := r.idOf(item)
	if id == "" {
		return ErrEmptyID
	}
	if _, exists := r.ids[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	// 先检查所有索引键，避免部分写入
	keys := make(map[string][]string, len(r.indexFuncs))
	for name, fn := range r.indexFuncs {
		seen := make(map[string]bool)
		for _, key := range fn(item) {
			if _, exists := r.indexes[name][key]; exists || seen[key] {
				return fmt.Errorf("%w: %s[%s] (id %s)", ErrDuplicateKey, name, key, id)
			}
			seen[key] = true
			keys[name] = append(keys[name], key)
		}
	}

	pos := len(r.items)
	r.items = append(r.items, item)
	r.ids[id] = pos
	for name, list := range keys {
		for _, key := range list {
			r.indexes[name][key] = pos
		}
	}

	if r.classify != nil {
		for _, t := range r.classify(item) {
			if _, known := r.byType[t]; !known {
				r.types = append(r.types, t)
			}
			if idx := r.byType[t]; len(idx) == 0 || idx[len(idx)-1] != pos {
				r.byType[t] = append(idx, pos)
			}
		}
	}
	return nil
}

// Get 根据ID从注册表中获取项目
func (r *BaseRegistry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.ids[id]
	if !exists {
		var zero T
		return zero, false
	}
	return r.items[pos], true
}

// Lookup 通过二级索引获取项目，未知索引返回 false
func (r *BaseRegistry[T]) Lookup(index, key string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, exists := r.indexes[index][key]
	if !exists {
		var zero T
		return zero, false
	}
	return r.items[pos], true
}

// List 按注册顺序列出所有项目
func (r *BaseRegistry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items)
}

// Len 返回项目数量
func (r *BaseRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// GetByType 根据类型获取所有项目，未知类型返回空切片
func (r *BaseRegistry[T]) GetByType(itemType string) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byType[itemType]
	items := make([]T, 0, len(idx))
	for _, pos := range idx {
		items = append(items, r.items[pos])
	}
	return items
}

// Types 按首次出现顺序列出所有类型
func (r *BaseRegistry[T]) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.types)
}

// Contains 检查注册表中是否存在指定ID的项目
func (r *BaseRegistry[T]) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.ids[id]
	return exists
}

// Freeze 冻结注册表
func (r *BaseRegistry[T]) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.frozen = true
}
