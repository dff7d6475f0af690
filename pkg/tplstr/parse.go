package tplstr

import "strings"

// Parse 按 opts 解析 input，返回不可变的 [Template]。
//
// 单次从左到右扫描：
//   - 遇到 opts.Open 前的内容为字面量（空字面量不输出）
//   - Open 之后的首个 opts.Close 之间为 key
//   - 找不到 Close 返回 [ErrUnterminatedPlaceholder]
//   - key 为空返回 [ErrEmptyKey]，不符合 key 策略返回 [ErrInvalidKey]
//
// 没有 Open 在前的 Close 视为普通文本。错误类型为 *[ParseError]。
func Parse(input string, opts Opts) (*Template, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, strings.Count(input, opts.Open)*2+1)
	var seen map[string]struct{}
	if opts.RejectDuplicateKeys {
		seen = make(map[string]struct{})
	}

	placeholders := 0
	for i := 0; i < len(input); {
		head := strings.Index(input[i:], opts.Open)
		if head == -1 {
			segments = append(segments, Segment{Kind: Literal, Text: input[i:]})
			break
		}
		if head > 0 {
			segments = append(segments, Segment{Kind: Literal, Text: input[i : i+head]})
		}

		head += i
		start := head + len(opts.Open)
		tail := strings.Index(input[start:], opts.Close)
		if tail == -1 {
			return nil, &ParseError{Err: ErrUnterminatedPlaceholder, Pos: head}
		}

		key := input[start : start+tail]
		switch {
		case key == "":
			return nil, &ParseError{Err: ErrEmptyKey, Pos: start}
		case !opts.validKey(key):
			return nil, &ParseError{Err: ErrInvalidKey, Pos: start, Key: key}
		}

		if seen != nil {
			if _, dup := seen[key]; dup {
				return nil, &ParseError{Err: ErrDuplicateKey, Pos: start, Key: key}
			}
			seen[key] = struct{}{}
		}

		segments = append(segments, Segment{Kind: Placeholder, Text: key})
		placeholders++
		i = start + tail + len(opts.Close)
	}

	if opts.RequireKeys && placeholders == 0 {
		return nil, &ParseError{Err: ErrNoPlaceholders, Pos: 0}
	}

	return &Template{
		source:       input,
		segments:     segments,
		opts:         opts,
		placeholders: placeholders,
	}, nil
}

// MustParse 调用 [Parse] 并在失败时 panic，适合包级变量初始化。
func MustParse(input string, opts Opts) *Template {
	tpl, err := Parse(input, opts)
	if err != nil {
		panic(err)
	}

	return tpl
}
