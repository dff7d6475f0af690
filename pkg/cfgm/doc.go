// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "tplstr",
//	    cfgm.WithEnvPrefix("TPLSTR_"),
//	)
//
// # 模板展开
//
// 配置文件在解析前使用 [tplstr] 展开 ${NAME}，参数默认取自环境变量。
// 展开是严格的：引用未设置的变量会导致加载失败。
// 使用 [WithoutTemplateExpansion] 可禁用该行为。
//
//	# config.yaml
//	render:
//	  args-file: "${HOME}/.tplstr/args.yaml"
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - template.open → --template-open
//   - render.args-file → --render-args-file
package cfgm
