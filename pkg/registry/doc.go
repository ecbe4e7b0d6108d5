// Package registry 提供类型安全的泛型注册表实现
//
// 这个包实现了一个泛型注册表系统，支持：
//   - 按注册顺序保存项目，ID 唯一
//   - 二级索引（例如按名称、别名查找）
//   - 多类型分类，一个项目可以属于多个类型
//   - 冻结之后只读，读操作可以并发进行
//
// 基本用法：
//
//	reg := registry.NewRegistry[*MyItem](
//		registry.WithIndex("name", func(i *MyItem) []string { return []string{i.Name()} }),
//	)
//	err := reg.Register(item)
//	item, ok := reg.Lookup("name", "示例项目")
//	typeAItems := reg.GetByType("typeA")
//
// 一次性构建并冻结：
//
//	reg, err := registry.Build(idOf, items, registry.WithClassifier(categoriesOf))
package registry
