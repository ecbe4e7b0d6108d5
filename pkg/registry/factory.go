package registry

// NewRegistry 为实现了 RegistryItem 的类型创建注册表，按 ID() 唯一、按 Type() 分类
func NewRegistry[T RegistryItem](opts ...Option[T]) *BaseRegistry[T] {
	base := []Option[T]{
		WithClassifier[T](func(item T) []string { return []string{item.Type()} }),
	}
	return NewBaseRegistry(func(item T) string { return item.ID() }, append(base, opts...)...)
}

// Build 注册全部项目并冻结，任何一个失败都返回错误且不返回注册表
func Build[T any](idOf func(T) string, items []T, opts ...Option[T]) (*BaseRegistry[T], error) {
	r := NewBaseRegistry(idOf, opts...)
	for _, item := range items {
		if err := r.Register(item); err != nil {
			return nil, err
		}
	}
	r.Freeze()
	return r, nil
}
