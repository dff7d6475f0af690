package tplstr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Opts 解析与渲染选项。
type Opts struct {
	Open  string // 起始分隔符，默认 "${"
	Close string // 结束分隔符，默认 "}"

	// ValidKey 校验占位符 key，为 nil 时使用 [DefaultKeyPolicy]。
	ValidKey func(key string, opts Opts) bool

	RequireKeys         bool // 输入中没有任何标记时报错 [ErrNoPlaceholders]
	RejectDuplicateKeys bool // 同一 key 出现多次时报错 [ErrDuplicateKey]
	RejectUnusedArgs    bool // Apply 时 Args 中存在模板未引用的 key 则报错 [ErrUnusedArg]
}

// DefaultOpts 返回 ${key} 语法与严格 key 校验的默认选项。
func DefaultOpts() Opts {
	return Opts{
		Open:  "${",
		Close: "}",
	}
}

// DefaultKeyPolicy 默认 key 策略：非空，合法 UTF-8，字符均可打印且非空白，
// 且不包含任何分隔符中出现的字符（出现即视为嵌套或畸形标记）。
func DefaultKeyPolicy(key string, opts Opts) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r == utf8.RuneError || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
		if strings.ContainsRune(opts.Open, r) || strings.ContainsRune(opts.Close, r) {
			return false
		}
	}

	return true
}

func (o Opts) validKey(key string) bool {
	if o.ValidKey != nil {
		return o.ValidKey(key, o)
	}

	return DefaultKeyPolicy(key, o)
}

func (o Opts) validate() error {
	if o.Open == "" || o.Close == "" {
		return ErrInvalidOpts
	}

	return nil
}
