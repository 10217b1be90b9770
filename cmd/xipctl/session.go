package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/omeyang/xipcheck/pkg/config/xconf"
	"github.com/omeyang/xipcheck/pkg/context/xenv"
	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/observability/xmetrics"
	"github.com/omeyang/xipcheck/pkg/util/xipcheck"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// checkMetric 是 xmetrics 累加检查次数的指标名。
const checkMetric = "xipcheck.check.total"

// session 持有一次命令执行期间的配置、日志、指标与 Checker。
// Checker 可在配置热更新时原子替换。
type session struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	settings Settings
	cfg      xconf.Config

	logger   xlog.LoggerWithLevel
	closeLog func() error

	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
	otel     *xmetrics.OTel

	// fastParse 在 setup 时确定，热更新时仅在配置显式给出时覆盖。
	fastParse     bool
	fastParseFlag bool

	checker atomic.Pointer[xipcheck.Checker]
}

func newSession(in io.Reader, out, errOut io.Writer) *session {
	return &session{in: in, out: out, errOut: errOut}
}

// setup 是根命令的 Before：加载配置，构建日志、指标与 Checker。
func (s *session) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	settings, cfg, err := loadSettings(cmd.String("config"))
	if err != nil {
		return ctx, fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet("log-level") {
		settings.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		settings.Log.Format = cmd.String("log-format")
	}
	s.settings = settings
	s.cfg = cfg

	if err := s.setupLogger(); err != nil {
		return ctx, err
	}

	s.fastParseFlag = cmd.IsSet("fast-parse")
	switch {
	case s.fastParseFlag:
		s.fastParse = cmd.Bool("fast-parse")
	case settings.FastParse != nil:
		s.fastParse = *settings.FastParse
	default:
		if err := xenv.Init(); err != nil && !errors.Is(err, xenv.ErrAlreadyInitialized) {
			s.logger.Warn(ctx, "ignoring environment toggle", xlog.Err(err))
		}
		s.fastParse = xenv.FastParse()
	}

	if cmd.Bool("stats") {
		s.reader = sdkmetric.NewManualReader()
		s.provider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader))
	}
	otelOpts := []xmetrics.Option{xmetrics.WithInstrumentationName("xipctl")}
	if s.provider != nil {
		otelOpts = append(otelOpts, xmetrics.WithMeterProvider(s.provider))
	}
	if s.otel, err = xmetrics.NewOTel(otelOpts...); err != nil {
		return ctx, err
	}

	checker, err := s.newChecker(settings)
	if err != nil {
		return ctx, err
	}
	s.checker.Store(checker)
	s.logger.Debug(ctx, "xipctl ready",
		slog.Bool("fast_parse", s.fastParse),
		slog.String("ipv4", checker.Validators().IPv4.Kind().String()),
		slog.String("ipv6", checker.Validators().IPv6.Kind().String()),
	)
	return ctx, nil
}

func (s *session) setupLogger() error {
	b := xlog.New().
		SetOutput(s.errOut).
		SetLevelString(s.settings.Log.Level).
		SetFormat(s.settings.Log.Format)
	if s.settings.Log.File != "" {
		b.SetRotation(s.settings.Log.File, s.settings.Log.rotation())
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return &usageError{msg: fmt.Sprintf("日志配置无效: %v", err)}
	}
	s.logger = logger
	s.closeLog = cleanup
	xlog.SetDefault(logger)
	return nil
}

func (s *session) newChecker(settings Settings) (*xipcheck.Checker, error) {
	reg, err := settings.registry()
	if err != nil {
		return nil, err
	}
	opts := []xipcheck.Option{
		xipcheck.WithFastParse(s.fastParse),
		xipcheck.WithRegistry(reg),
		xipcheck.WithLogger(s.logger),
		xipcheck.WithCache(settings.cacheConfig()),
	}
	if s.otel != nil {
		opts = append(opts, xipcheck.WithRecorder(s.otel))
	}
	return xipcheck.New(opts...)
}

// current 返回当前生效的 Checker。
func (s *session) current() *xipcheck.Checker {
	return s.checker.Load()
}

// observer 返回批处理使用的观测器。
func (s *session) observer() xmetrics.Observer {
	if s.otel == nil {
		return xmetrics.NoopObserver{}
	}
	return s.otel
}

// reload 用 cfg 的当前内容替换 Checker 与日志级别。失败时保留旧配置。
func (s *session) reload(ctx context.Context, cfg xconf.Config) error {
	settings, err := decodeSettings(cfg)
	if err != nil {
		return err
	}
	if !s.fastParseFlag && settings.FastParse != nil {
		s.fastParse = *settings.FastParse
	}
	checker, err := s.newChecker(settings)
	if err != nil {
		return err
	}
	if level, err := xlog.ParseLevel(settings.Log.Level); err == nil {
		s.logger.SetLevel(level)
	}

	s.settings = settings
	if old := s.checker.Swap(checker); old != nil {
		old.Close()
	}
	s.logger.Info(ctx, "config reloaded",
		slog.Uint64("generation", cfg.Generation()),
		slog.Int("ipv4_categories", len(checker.Registry().Categories(xnet.V4))),
		slog.Int("ipv6_categories", len(checker.Registry().Categories(xnet.V6))),
	)
	return nil
}

// teardown 是根命令的 After：输出统计并释放资源。
func (s *session) teardown(ctx context.Context, _ *cli.Command) error {
	var errs []error
	if s.reader != nil {
		errs = append(errs, s.printStats(ctx))
	}
	if s.provider != nil {
		errs = append(errs, s.provider.Shutdown(context.WithoutCancel(ctx)))
	}
	if c := s.checker.Swap(nil); c != nil {
		c.Close()
	}
	if s.closeLog != nil {
		errs = append(errs, s.closeLog())
	}
	return errors.Join(errs...)
}

// printStats 按 operation/family/matched 输出检查计数。
func (s *session) printStats(ctx context.Context) error {
	var rm metricdata.ResourceMetrics
	if err := s.reader.Collect(context.WithoutCancel(ctx), &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}

	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != checkMetric {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				lines = append(lines, fmt.Sprintf("%s\t%s\t%s\t%d",
					attrValue(dp.Attributes, "operation"),
					attrValue(dp.Attributes, "family"),
					attrValue(dp.Attributes, "matched"),
					dp.Value))
			}
		}
	}
	slices.Sort(lines)
	fmt.Fprintln(s.errOut, "operation\tfamily\tmatched\tcount")
	if len(lines) > 0 {
		fmt.Fprintln(s.errOut, strings.Join(lines, "\n"))
	}
	return nil
}

func attrValue(set attribute.Set, key attribute.Key) string {
	v, ok := set.Value(key)
	if !ok {
		return "-"
	}
	return v.Emit()
}
