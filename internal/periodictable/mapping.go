package periodictable

// MappingOptions 批量导出选项
type MappingOptions struct {
	// FlattenElements 为 true 时元素转换为 map[string]any
	FlattenElements bool
	// ElementsOnly 为 true 时只输出 名称 -> 元素
	ElementsOnly bool
}

// DefaultMappingOptions 扁平化并包含全部分类
func DefaultMappingOptions() MappingOptions {
	return MappingOptions{FlattenElements: true}
}

// ToMapping 把整个注册表导出为嵌套映射
//
// ElementsOnly 时返回 名称 -> 元素；否则 "elements" 键保存该映射，每个分类各占一个键。
// 扁平化的元素映射每个元素只计算一次，在各视图间共享。
func (t *Table) ToMapping(opts MappingOptions) map[string]any {
	var flat []map[string]any
	if opts.FlattenElements {
		flat = make([]map[string]any, len(t.elements))
		for i, e := range t.elements {
			flat[i] = e.ToMap()
		}
	}

	byName := make(map[string]any, len(t.elements))
	for i, e := range t.elements {
		if opts.FlattenElements {
			byName[e.Name()] = flat[i]
		} else {
			byName[e.Name()] = e
		}
	}
	if opts.ElementsOnly {
		return byName
	}

	out := map[string]any{"elements": byName}
	for _, c := range Categories() {
		members := t.view(c)
		if opts.FlattenElements {
			maps := make([]map[string]any, len(members))
			for i, e := range members {
				maps[i] = flat[e.AtomicNumber()-1]
			}
			out[string(c)] = maps
		} else {
			out[string(c)] = members
		}
	}
	return out
}
