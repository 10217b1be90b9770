// Package xlog 提供基于 log/slog 的结构化日志。
//
// # 接口
//
//   - [Logger]：Debug/Info/Warn/Error，强制传入 context.Context，属性只接受 slog.Attr
//   - [Leveler]：运行时调整级别
//   - [LoggerWithLevel]：二者组合，[Builder.Build] 的返回类型
//
// # 构建
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xipctl.log", xlog.Rotation{MaxSizeMB: 50}).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
// 配置错误（未知级别、未知格式、空文件名）延迟到 Build 时统一返回。
//
// # 全局 Logger
//
// [Default] 惰性构建一个输出到 stderr 的 Info 级别 text logger，
// 供未显式注入 Logger 的库代码使用；[SetDefault] 可替换它。
// [Discard] 返回丢弃所有输出的 Logger，适合测试与静默场景。
package xlog
