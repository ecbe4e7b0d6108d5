package registry

// RegistryItem 定义注册表项的基本接口
type RegistryItem interface {
	// ID 返回注册表项的唯一标识符
	ID() string
	// Name 返回注册表项的名称
	Name() string
	// Type 返回注册表项的类型
	Type() string
}

// Registry 定义泛型注册表接口
type Registry[T any] interface {
	// Register 注册一个新的项目到注册表
	Register(item T) error
	// Get 根据ID从注册表中获取项目
	Get(id string) (T, bool)
	// Lookup 通过二级索引获取项目
	Lookup(index, key string) (T, bool)
	// List 按注册顺序列出所有项目
	List() []T
	// Len 返回项目数量
	Len() int
	// GetByType 按注册顺序获取指定类型的所有项目
	GetByType(itemType string) []T
	// Types 按首次出现顺序列出所有类型
	Types() []string
	// Contains 检查注册表中是否存在指定ID的项目
	Contains(id string) bool
	// Freeze 冻结注册表，之后的注册都会失败
	Freeze()
}
