package xlog

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// globalLogger 全局 Logger，nil 表示尚未初始化
var globalLogger atomic.Pointer[Logger]

// Default 返回全局 Logger。首次调用且未经 SetDefault 设置时，
// 构建输出到 stderr 的 Info 级别 text logger。
func Default() Logger {
	if p := globalLogger.Load(); p != nil {
		return *p
	}
	logger, _, err := New().Build()
	if err != nil {
		// 默认参数不会出错；保底返回丢弃输出的 logger
		return Discard()
	}
	var l Logger = logger
	globalLogger.CompareAndSwap(nil, &l)
	return *globalLogger.Load()
}

// SetDefault 替换全局 Logger。nil 会被忽略。
func SetDefault(l Logger) {
	if l == nil {
		return
	}
	globalLogger.Store(&l)
}

// Discard 返回丢弃所有输出的 Logger。
func Discard() Logger {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelError + 1)
	return &xlogger{
		handler:    slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelVar}),
		levelVar:   levelVar,
		errorCount: new(atomic.Uint64),
	}
}
