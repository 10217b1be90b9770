package xipcheck

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

//go:generate mockgen -source=innet.go -destination=mock_notifier_test.go -package=xipcheck

// Notice 描述一次使用旧式（非斜杠）网络写法的调用。
type Notice struct {
	// Network 是调用方传入的网络字面量（已去除首尾空白）。
	Network string
	// Form 是识别出的旧式写法。
	Form xnet.Form
	// Family 是网络的地址族。
	Family xnet.Version
	// Caller 是调用 IsInNet* 的源码位置，格式 "file.go:line"。
	Caller string
}

// Notifier 接收旧式网络写法的弃用通知。
// 每次 IsInNet* 调用至多触发一次 Notify。实现必须并发安全。
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc 将普通函数适配为 [Notifier]。
type NotifierFunc func(ctx context.Context, n Notice)

// Notify 调用 f(ctx, n)。
func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// LogNotifier 返回以 WARN 级别写日志的 [Notifier]。logger 为 nil 时使用 [xlog.Default]。
func LogNotifier(logger xlog.Logger) Notifier {
	if logger == nil {
		logger = xlog.Default()
	}
	return logNotifier{logger: logger}
}

type logNotifier struct {
	logger xlog.Logger
}

func (l logNotifier) Notify(ctx context.Context, n Notice) {
	l.logger.Warn(ctx, "deprecated network notation, use CIDR",
		slog.String(xlog.KeyNetwork, n.Network),
		slog.String(xlog.KeyForm, n.Form.String()),
		slog.String(xlog.KeyFamily, n.Family.String()),
		slog.String(xlog.KeyCaller, n.Caller),
	)
}

// IsInNetIPv4 报告 value 是否为合法 IPv4 字面量且落在 network 内。
//
// network 接受 CIDR 以及 [xnet.ParseNetwork] 支持的旧式写法；旧式写法
// 仍会参与判断，但每次调用向 Notifier 发送一条 [Notice]。
// 只有 network 无法解析（包装 [xnet.ErrInvalidNetwork]）或属于 IPv6
// （[ErrFamilyMismatch]）时返回错误。
func (c *Checker) IsInNetIPv4(value, network string) (string, bool, error) {
	return c.isInNet(context.Background(), xnet.V4, value, network)
}

// IsInNetIPv6 同 [Checker.IsInNetIPv4]，针对 IPv6。
func (c *Checker) IsInNetIPv6(value, network string) (string, bool, error) {
	return c.isInNet(context.Background(), xnet.V6, value, network)
}

// isInNet 必须由导出方法直接调用，callerLocation 依赖固定的栈深度。
func (c *Checker) isInNet(ctx context.Context, family xnet.Version, value, network string) (string, bool, error) {
	n, err := xnet.ParseNetwork(network)
	if err != nil {
		return "", false, err
	}
	if n.Version() != family {
		return "", false, fmt.Errorf("%w: %q is %s, want %s", ErrFamilyMismatch, n.Literal, n.Version(), family)
	}
	if n.Form.Legacy() {
		c.notifier.Notify(ctx, Notice{
			Network: n.Literal,
			Form:    n.Form,
			Family:  family,
			Caller:  callerLocation(3),
		})
	}

	lit, addr, ok := c.classifier.Validate(family, value)
	matched := ok && n.Contains(addr)
	if c.recording {
		c.record("innet_"+familyLabel(family), family, matched)
	}
	if !matched {
		return "", false, nil
	}
	return lit, true, nil
}

// callerLocation 返回调用栈上第 skip 层的 "file.go:line"。
func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}
