package xlog

import "log/slog"

// 常用属性 key。
const (
	KeyError     = "error"
	KeyComponent = "component"
	KeyOperation = "operation"
	KeyInput     = "input"
	KeyFamily    = "family"
	KeyNetwork   = "network"
	KeyForm      = "form"
	KeyCaller    = "caller"
)

// Err 创建错误属性。err 为 nil 时返回空属性（会被 slog 忽略）。
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Component 创建组件名属性。
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性。
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}
