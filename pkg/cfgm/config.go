package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序。提供 appName 时只返回应用专属路径，
// 避免误读当前目录中属于其他程序的 config.yaml。
//
// 提供 appName 时 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//
// 未提供时：config.yaml, config/config.yaml
func DefaultPaths(appName ...string) []string {
	if len(appName) == 0 || appName[0] == "" {
		return []string{"config.yaml", "config/config.yaml"}
	}

	name := appName[0]
	paths := []string{"." + name + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+name+".yaml"))
	}

	return append(paths, "/etc/"+name+"/config.yaml")
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.configPaths) == 0 {
		o.configPaths = DefaultPaths(o.appName)
	}

	configMap := structToMap(defaultConfig)

	fileMap, err := loadFirstFile(o)
	if err != nil {
		return nil, err
	}
	mergeMaps(configMap, fileMap)

	if o.envPrefix != "" {
		bindings := generateEnvBindings(o.envPrefix, collectConfigKeys(defaultConfig))
		slog.Debug("Generated auto env bindings", "prefix", o.envPrefix, "count", len(bindings))
		for envKey, configPath := range bindings {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	if o.cmd != nil {
		applyCLIFlags(o.cmd, configMap, reflect.TypeOf(defaultConfig), "")
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadCmd 是 [Load] 的便捷版本，注入 [WithCommand]，appName 非空时注入 [WithAppName]。
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}

	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoad 调用 [Load] 并在失败时 panic，适合启动阶段。
func MustLoad[T any](defaultConfig T, opts ...Option) *T {
	cfg, err := Load(defaultConfig, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// ParseFile 读取 YAML/JSON 文件并返回规范化后的 map（按扩展名选择解析器）。
func ParseFile(path string) (map[string]any, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is user supplied on purpose
	if err != nil {
		return nil, err
	}

	return parseConfigBytes(path, content)
}

// ExpandTemplate 使用 tplstr 严格展开 text 中的 ${NAME}。
func ExpandTemplate(text string, args *tplstr.Args) (string, error) {
	if !strings.Contains(text, "${") {
		return text, nil
	}
	tpl, err := tplstr.Parse(text, tplstr.DefaultOpts())
	if err != nil {
		return "", err
	}

	return tpl.Apply(args)
}

// loadFirstFile 按顺序查找配置文件，命中首个即停止。
func loadFirstFile(o *options) (map[string]any, error) {
	for _, path := range o.configPaths {
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue
		}

		if !o.noTemplateExpansion {
			args := o.expandArgs
			if args == nil {
				args = tplstr.EnvArgs()
			}
			expanded, expandErr := ExpandTemplate(string(content), args)
			if expandErr != nil {
				return nil, fmt.Errorf("expand template in %s: %w", path, expandErr)
			}
			content = []byte(expanded)
		}

		fileMap, err := parseConfigBytes(path, content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !o.noTemplateExpansion)

		return fileMap, nil
	}

	slog.Debug("No config file found, using defaults")

	return map[string]any{}, nil
}

// collectConfigKeys 以 json tag 为准收集叶子 key（如 render.args-file）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	walkFields(reflect.TypeOf(defaultConfig), "", func(fullKey string, _ reflect.Type) {
		keys = append(keys, fullKey)
	})

	return keys
}

// walkFields 递归遍历带 json tag 的叶子字段。
func walkFields(typ reflect.Type, prefix string, fn func(fullKey string, typ reflect.Type)) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)
		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			walkFields(field.Type, key, fn)
			continue
		}
		fn(key, field.Type)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量映射。
//
// 示例 (前缀 "TPLSTR_")：
//   - template.reject-duplicates → TPLSTR_TEMPLATE_REJECT_DUPLICATES
func generateEnvBindings(prefix string, keys []string) map[string]string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[prefix+strings.ToUpper(replacer.Replace(key))] = key
	}

	return bindings
}

// applyCLIFlags 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 json tag 生成，仅替换 "." 为 "-"。
func applyCLIFlags(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	walkFields(typ, prefix, func(fullKey string, fieldType reflect.Type) {
		flag := strings.ReplaceAll(fullKey, ".", "-")
		if !cmd.IsSet(flag) {
			return
		}
		if val, ok := cliFlagValue(cmd, flag, fieldType); ok {
			setByPath(config, fullKey, val)
		}
	})
}

// cliFlagValue 按字段类型读取 CLI 值，不支持的类型返回 false。
func cliFlagValue(cmd *cli.Command, flag string, fieldType reflect.Type) (any, bool) {
	if fieldType == durationType {
		return cmd.Duration(flag), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(flag), true
	case reflect.Bool:
		return cmd.Bool(flag), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmd.Int(flag), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmd.Uint(flag), true
	case reflect.Float32, reflect.Float64:
		return cmd.Float64(flag), true
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return cmd.StringSlice(flag), true
		}
	case reflect.Map:
		if fieldType.Key().Kind() == reflect.String && fieldType.Elem().Kind() == reflect.String {
			return cmd.StringMap(flag), true
		}
	default:
	}

	return nil, false
}
