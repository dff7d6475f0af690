package tplstr

import (
	"os"
	"strings"
)

// EnvArgs 返回当前环境变量的只读快照。
func EnvArgs() *Args {
	args := NewArgs()
	for _, env := range os.Environ() {
		name, val, ok := strings.Cut(env, "=")
		if ok && name != "" {
			args.With(name, val)
		}
	}

	return args.Build()
}
