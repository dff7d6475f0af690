package tplstr

import "strings"

// Template 解析后的模板。
//
// 解析后不再修改，可以被多个 goroutine 并发 [Template.Apply]，
// 也可以对不同的 [Args] 反复使用。
type Template struct {
	source       string
	segments     []Segment
	opts         Opts
	placeholders int
}

// Apply 按顺序渲染片段：字面量原样写入，占位符从 args 取值写入。
//
// 任一 key 在 args 中不存在时返回 *[RenderError]（[ErrUndefinedKey]），
// 不返回部分结果。args 为 nil 等价于空参数。
func (t *Template) Apply(args *Args) (string, error) {
	if t.opts.RejectUnusedArgs {
		if err := t.checkUnused(args); err != nil {
			return "", err
		}
	}

	var buf strings.Builder
	buf.Grow(len(t.source))

	for _, seg := range t.segments {
		if seg.Kind == Literal {
			buf.WriteString(seg.Text)
			continue
		}

		val, ok := args.Get(seg.Text)
		if !ok {
			return "", &RenderError{Err: ErrUndefinedKey, Key: seg.Text}
		}
		buf.WriteString(val)
	}

	return buf.String(), nil
}

func (t *Template) checkUnused(args *Args) error {
	used := make(map[string]struct{}, t.placeholders)
	for _, key := range t.Keys() {
		used[key] = struct{}{}
	}
	for _, key := range args.Keys() {
		if _, ok := used[key]; !ok {
			return &RenderError{Err: ErrUnusedArg, Key: key}
		}
	}

	return nil
}

// Segments 返回片段列表的副本。
func (t *Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)

	return out
}

// Keys 按出现顺序返回所有占位符 key，重复出现的 key 会重复返回。
func (t *Template) Keys() []string {
	keys := make([]string, 0, t.placeholders)
	for _, seg := range t.segments {
		if seg.Kind == Placeholder {
			keys = append(keys, seg.Text)
		}
	}

	return keys
}

// UniqueKeys 按首次出现顺序返回去重后的 key。
func (t *Template) UniqueKeys() []string {
	seen := make(map[string]struct{}, t.placeholders)
	keys := make([]string, 0, t.placeholders)
	for _, key := range t.Keys() {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	return keys
}

// HasPlaceholders 模板中是否至少有一个占位符。
func (t *Template) HasPlaceholders() bool {
	return t.placeholders > 0
}

// Opts 返回解析时使用的选项。
func (t *Template) Opts() Opts {
	return t.opts
}

// String 由片段还原原始输入。
func (t *Template) String() string {
	var buf strings.Builder
	buf.Grow(len(t.source))
	for _, seg := range t.segments {
		buf.WriteString(seg.Marker(t.opts))
	}

	return buf.String()
}
