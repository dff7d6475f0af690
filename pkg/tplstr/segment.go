package tplstr

// SegmentKind 片段类型。
type SegmentKind uint8

const (
	Literal     SegmentKind = iota // 原样输出的文本
	Placeholder                    // 渲染时按 key 取值
)

func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Placeholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Segment 解析后的最小单元。
//
// Text 是输入字符串的子串：Literal 为文本本身，Placeholder 为 key。
type Segment struct {
	Kind SegmentKind
	Text string
}

// Marker 将片段还原为源文本。
func (s Segment) Marker(opts Opts) string {
	if s.Kind == Placeholder {
		return opts.Open + s.Text + opts.Close
	}

	return s.Text
}
