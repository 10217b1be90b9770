package xipcheck

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/observability/xmetrics"
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xiplit"
	"github.com/omeyang/xipcheck/pkg/util/xlru"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Checker 组合校验器、类别注册表与可选的缓存/指标。
// 构造后只读（缓存自身并发安全），可被任意 goroutine 共享。
type Checker struct {
	validators xiplit.Validators
	classifier *xipclass.Classifier
	notifier   Notifier
	logger     xlog.Logger
	recorder   xmetrics.Recorder
	recording  bool
	cache      *xlru.Cache[string, Report]
}

// New 创建 Checker。只有缓存配置非法时返回错误。
func New(opts ...Option) (*Checker, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	logger := o.logger
	if logger == nil {
		logger = xlog.Default()
	}
	logger = logger.With(xlog.Component("xipcheck"))

	c := &Checker{
		validators: xiplit.Select(o.fastParse),
		logger:     logger,
		notifier:   o.notifier,
		recorder:   o.recorder,
	}
	c.classifier = xipclass.NewClassifier(o.registry, c.validators)
	if c.notifier == nil {
		c.notifier = LogNotifier(logger)
	}
	if c.recorder == nil {
		c.recorder = xmetrics.NoopRecorder{}
	} else {
		_, noop := c.recorder.(xmetrics.NoopRecorder)
		c.recording = !noop
	}

	if o.cache != nil {
		cache, err := xlru.New[string, Report](*o.cache)
		if err != nil {
			return nil, fmt.Errorf("xipcheck: cache: %w", err)
		}
		c.cache = cache
	}

	if o.fastParse && (c.validators.IPv4.Kind() != xiplit.KindPlatform || c.validators.IPv6.Kind() != xiplit.KindPlatform) {
		c.logger.Debug(context.Background(), "platform parser failed probe, using manual grammar",
			slog.String("ipv4", c.validators.IPv4.Kind().String()),
			slog.String("ipv6", c.validators.IPv6.Kind().String()),
		)
	}
	return c, nil
}

// MustNew 同 New，失败时 panic。
func MustNew(opts ...Option) *Checker {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Close 释放缓存资源，可重复调用。未启用缓存时为空操作。
func (c *Checker) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}

// Registry 返回使用的类别注册表。
func (c *Checker) Registry() *xipclass.Registry { return c.classifier.Registry() }

// Validators 返回构造时选定的校验器。
func (c *Checker) Validators() xiplit.Validators { return c.validators }

// CacheStats 返回 Classify 缓存的命中统计，未启用缓存时 ok 为 false。
func (c *Checker) CacheStats() (stats xlru.Stats, ok bool) {
	if c.cache == nil {
		return xlru.Stats{}, false
	}
	return c.cache.Stats(), true
}

// IsIPv4 报告 value 是否为合法 IPv4 字面量。
func (c *Checker) IsIPv4(value string) (string, bool) {
	lit, ok := c.validators.IPv4.Validate(value)
	c.record("is_ipv4", xnet.V4, ok)
	return lit, ok
}

// IsIPv6 报告 value 是否为合法 IPv6 字面量。
func (c *Checker) IsIPv6(value string) (string, bool) {
	lit, ok := c.validators.IPv6.Validate(value)
	c.record("is_ipv6", xnet.V6, ok)
	return lit, ok
}

// IsIP 依次按 IPv4、IPv6 校验。
func (c *Checker) IsIP(value string) (string, bool) {
	lit, family, ok := c.validators.Validate(value)
	c.record("is_ip", family, ok)
	return lit, ok
}

// Is 报告 value 是否为 family 的合法字面量且属于类别 name。
// name 为 [xipclass.Public] 时按补集判断。
func (c *Checker) Is(family xnet.Version, name xipclass.Category, value string) (string, bool) {
	lit, ok := c.classifier.Is(family, name, value)
	if c.recording {
		c.record("is_"+string(name)+"_"+familyLabel(family), family, ok)
	}
	return lit, ok
}

// IsCategory 是与地址族无关的 Is：先确定 value 的地址族，再判断类别。
func (c *Checker) IsCategory(name xipclass.Category, value string) (string, bool) {
	return c.isAny(name, value)
}

func (c *Checker) isAny(name xipclass.Category, value string) (string, bool) {
	lit, family, ok := c.validators.Validate(value)
	if ok {
		lit, ok = c.classifier.Is(family, name, lit)
	}
	if c.recording {
		c.record("is_"+string(name)+"_ip", family, ok)
	}
	return lit, ok
}

func (c *Checker) record(op string, family xnet.Version, matched bool) {
	if !c.recording {
		return
	}
	c.recorder.Record(context.Background(), xmetrics.Event{
		Operation: op,
		Family:    familyLabel(family),
		Matched:   matched,
	})
}

func familyLabel(v xnet.Version) string {
	switch v {
	case xnet.V4:
		return "ipv4"
	case xnet.V6:
		return "ipv6"
	default:
		return ""
	}
}
