// Package tplstr 提供最小化的模板字符串引擎。
//
// 模板仅识别 ${key} 标记：解析阶段把输入切分为字面量与占位符片段，
// 渲染阶段按 key 从 [Args] 中取值替换。不支持嵌套模板、条件/循环、
// 表达式求值与转义语法，强调可读性与可预测性。
//
// # 语义说明
//
//  1. 解析是纯语法行为，不检查 key 是否有对应的值
//  2. 缺失 key 在渲染时报错 [ErrUndefinedKey]，不产生部分输出
//  3. 单独的关闭符 "}" 视为普通文本；末尾未闭合的 "${" 报错
//  4. [Args] 中同一 key 多次绑定时，后写入者生效
//
// # 快速开始
//
//	tpl, err := tplstr.Parse("hello ${name}, an answer: ${greeting}.", tplstr.DefaultOpts())
//	if err != nil {
//	    return err
//	}
//
//	args := tplstr.NewArgs().
//	    With("name", "test-user").
//	    With("greeting", false).
//	    Build()
//
//	out, err := tpl.Apply(args) // "hello test-user, an answer: false."
//
// 解析后的 [Template] 不可变，可被多个 goroutine 并发 Apply；
// Build 之后的 [Args] 同样只读，可复用于多个模板。
//
// # 自定义分隔符
//
// 通过 [Opts] 可替换分隔符与 key 校验策略：
//
//	opts := tplstr.DefaultOpts()
//	opts.Open, opts.Close = "{{", "}}"
//	tpl, err := tplstr.Parse("Hi {{user}}", opts)
package tplstr
