package tplstr

import (
	"fmt"
	"maps"
	"slices"
)

// Displayable 可渲染为文本的值。
//
// 值统一经由 fmt.Sprint 渲染，实现 fmt.Stringer 的值由 fmt 调用其 String。
type Displayable = fmt.Stringer

// Args 占位符 key 到值的映射。
//
// With 以构建器方式追加绑定；Build 返回只读快照，
// 对快照再调用 With 会先复制，快照本身不会被修改。
type Args struct {
	values map[string]Displayable
	frozen bool
}

// NewArgs 创建空的 Args。
func NewArgs() *Args {
	return &Args{values: make(map[string]Displayable)}
}

// ArgsFromMap 由 map 构建并冻结 Args。
func ArgsFromMap(m map[string]any) *Args {
	args := NewArgs()
	for key, val := range m {
		args.With(key, val)
	}

	return args.Build()
}

// With 绑定 key 与 value，同名 key 后写入者生效。
//
// value 在渲染时才转换为文本。
func (a *Args) With(key string, value any) *Args {
	a = a.writable()
	a.values[key] = box(value)

	return a
}

// Withf 绑定格式化值，等价于渲染时执行 fmt.Sprintf(format, v...)。
//
//	args.Withf("addr", "0x%X", 31) // "0x1F"
func (a *Args) Withf(key, format string, v ...any) *Args {
	return a.With(key, formatted{format: format, args: v})
}

// Build 返回只读快照。
func (a *Args) Build() *Args {
	if a == nil {
		return NewArgs().Build()
	}
	if a.frozen {
		return a
	}

	return &Args{values: maps.Clone(a.values), frozen: true}
}

// Get 返回 key 渲染后的文本。nil Args 视为空。
func (a *Args) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	val, ok := a.values[key]
	if !ok {
		return "", false
	}

	return val.String(), true
}

// Len 返回已绑定的 key 数量。
func (a *Args) Len() int {
	if a == nil {
		return 0
	}

	return len(a.values)
}

// Keys 返回排序后的 key 列表。
func (a *Args) Keys() []string {
	if a == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(a.values))
}

func (a *Args) writable() *Args {
	if a == nil {
		return NewArgs()
	}
	if a.frozen {
		return &Args{values: maps.Clone(a.values)}
	}

	return a
}

// ═══════════════════════════════════════════════════════════════════════════
// 值包装
// ═══════════════════════════════════════════════════════════════════════════

// box 统一经由 fmt.Sprint 渲染，fmt 会捕获 nil 指针 String 引发的 panic 并输出 "<nil>"。
func box(v any) Displayable {
	return plain{v: v}
}

type plain struct{ v any }

func (p plain) String() string { return fmt.Sprint(p.v) }

type formatted struct {
	format string
	args   []any
}

func (f formatted) String() string { return fmt.Sprintf(f.format, f.args...) }
