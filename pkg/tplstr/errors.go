package tplstr

import (
	"errors"
	"fmt"
)

// 解析阶段错误。
var (
	ErrUnterminatedPlaceholder = errors.New("tplstr: unterminated placeholder")
	ErrEmptyKey                = errors.New("tplstr: empty key")
	ErrInvalidKey              = errors.New("tplstr: invalid key")
	ErrDuplicateKey            = errors.New("tplstr: duplicate key")
	ErrNoPlaceholders          = errors.New("tplstr: template has no placeholders")
	ErrInvalidOpts             = errors.New("tplstr: open and close delimiters must be non-empty")
)

// 渲染阶段错误。
var (
	ErrUndefinedKey = errors.New("tplstr: undefined key")
	ErrUnusedArg    = errors.New("tplstr: unused argument")
)

// ParseError 描述解析失败的位置。
//
// Pos 为输入中的字节偏移：未闭合时指向起始分隔符，key 错误时指向 key 起点。
type ParseError struct {
	Err error
	Pos int
	Key string
}

func (e *ParseError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Key, e.Pos)
	}

	return fmt.Sprintf("%v at offset %d", e.Err, e.Pos)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderError 描述渲染失败的 key。
type RenderError struct {
	Err error
	Key string
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%v %q", e.Err, e.Key)
}

func (e *RenderError) Unwrap() error { return e.Err }
