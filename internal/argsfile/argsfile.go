// Package argsfile 从 YAML/JSON 文件与 key=value 对构建 [tplstr.Args]。
package argsfile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/cfgm"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

// ErrInvalidPair --set 参数不是 key=value 形式。
var ErrInvalidPair = errors.New("argsfile: expected key=value")

// Load 读取参数文件，嵌套对象展平为点分 key：
//
//	server:
//	  url: http://x   →  server.url = http://x
func Load(path string) (*tplstr.Args, error) {
	data, err := cfgm.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("load args file %s: %w", path, err)
	}

	return tplstr.ArgsFromMap(cfgm.Flatten(data)), nil
}

// Apply 将 key=value 对写入 args，后出现的同名 key 覆盖之前的值。
func Apply(args *tplstr.Args, pairs []string) (*tplstr.Args, error) {
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPair, pair)
		}
		args = args.With(key, val)
	}

	return args, nil
}

// Build 依次合并参数文件（可为空）与 key=value 对，返回只读 Args。
func Build(path string, pairs []string) (*tplstr.Args, error) {
	args := tplstr.NewArgs()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		args = loaded
	}

	args, err := Apply(args, pairs)
	if err != nil {
		return nil, err
	}

	return args.Build(), nil
}
