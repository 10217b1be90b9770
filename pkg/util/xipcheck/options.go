package xipcheck

import (
	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/observability/xmetrics"
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xlru"
)

// Option 配置 [Checker]。
type Option func(*options)

type options struct {
	fastParse bool
	registry  *xipclass.Registry
	notifier  Notifier
	logger    xlog.Logger
	recorder  xmetrics.Recorder
	cache     *xlru.Config
}

func defaultOptions() options {
	return options{fastParse: true}
}

// WithFastParse 是否允许使用通过探测的平台解析器，默认 true。
func WithFastParse(enabled bool) Option {
	return func(o *options) {
		o.fastParse = enabled
	}
}

// WithRegistry 使用自定义类别注册表，nil 表示内置表。
func WithRegistry(reg *xipclass.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithNotifier 设置旧写法网络字面量的通知接收方，默认写 WARN 日志。
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithLogger 设置日志，默认 [xlog.Default]。
func WithLogger(l xlog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRecorder 设置指标记录器，默认不记录。
func WithRecorder(r xmetrics.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

// WithCache 为 Classify 结果启用 LRU 缓存。Size 为 0 表示不启用。
func WithCache(cfg xlru.Config) Option {
	return func(o *options) {
		if cfg.Size == 0 {
			o.cache = nil
			return
		}
		o.cache = &cfg
	}
}
