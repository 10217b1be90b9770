package xrun

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Group 基于 errgroup + context 管理多个长时间运行任务的并发执行和协调关闭。
//
// 任一任务返回错误或调用 Cancel 时，其余任务的 ctx 都会被取消。
// Go、GoWithName、Add、Cancel 可并发调用；Wait 只应调用一次。
//
//	g, ctx := xrun.NewGroup(ctx, xrun.WithName("filter"))
//	g.Add("config-watcher", watcher)
//	g.GoWithName("filter", func(ctx context.Context) error {
//		defer g.Cancel(nil) // 输入结束后停止其他任务
//		return filter(ctx)
//	})
//	err := g.Wait()
type Group struct {
	eg       *errgroup.Group
	ctx      context.Context
	causeCtx context.Context
	cancel   context.CancelCauseFunc
	opts     *groupOptions
}

// NewGroup 创建 Group，返回的 context 在任一任务出错或 Cancel 后被取消。
// nil ctx 视为 context.Background()，nil Option 被忽略。
func NewGroup(ctx context.Context, opts ...Option) (*Group, context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	options := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	causeCtx, cancel := context.WithCancelCause(ctx)
	eg, egCtx := errgroup.WithContext(causeCtx)
	return &Group{
		eg:       eg,
		ctx:      egCtx,
		causeCtx: causeCtx,
		cancel:   cancel,
		opts:     options,
	}, egCtx
}

// Go 在新 goroutine 中执行 fn。fn 应在 ctx.Done() 后尽快返回。
func (g *Group) Go(fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		return fn(g.ctx)
	})
}

// GoWithName 与 Go 相同，并以 DEBUG/WARN 记录任务的启动与退出。
func (g *Group) GoWithName(name string, fn func(ctx context.Context) error) {
	g.eg.Go(func() error {
		if fn == nil {
			return ErrNilFunc
		}
		attrs := []slog.Attr{slog.String("group", g.opts.name), slog.String("service", name)}
		g.opts.logger.Debug(g.ctx, "service starting", attrs...)

		err := fn(g.ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			g.opts.logger.Warn(g.ctx, "service exited with error", append(attrs, slog.Any("error", err))...)
		} else {
			g.opts.logger.Debug(g.ctx, "service stopped", attrs...)
		}
		return err
	})
}

// Service 是阻塞运行直到 ctx 取消的任务，例如 xconf.Watcher。
type Service interface {
	Run(ctx context.Context) error
}

// ServiceFunc 将函数适配为 [Service]。
type ServiceFunc func(ctx context.Context) error

// Run 调用 f(ctx)。
func (f ServiceFunc) Run(ctx context.Context) error { return f(ctx) }

// Add 以 name 启动 svc，nil svc 使 Group 以 [ErrNilService] 结束。
func (g *Group) Add(name string, svc Service) {
	if svc == nil {
		g.Go(func(context.Context) error { return ErrNilService })
		return
	}
	g.GoWithName(name, svc.Run)
}

// Wait 等待所有任务结束并返回第一个错误。
//
// 由 Cancel 或父 context 引起的 context.Canceled 被过滤：Cancel(cause) 给出的
// 非 Canceled 原因会被返回，否则返回 nil。任务自身返回的 Canceled 原样返回。
func (g *Group) Wait() error {
	defer g.cancel(nil)

	err := g.eg.Wait()
	if errors.Is(err, context.Canceled) {
		if g.causeCtx.Err() != nil {
			return explicitCause(g.causeCtx)
		}
		return err
	}
	if err == nil && g.causeCtx.Err() != nil {
		return explicitCause(g.causeCtx)
	}
	return err
}

func explicitCause(ctx context.Context) error {
	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return cause
	}
	return nil
}

// Cancel 取消所有任务。cause 为 nil 时 Wait 视为正常结束。
func (g *Group) Cancel(cause error) {
	g.cancel(cause)
}

// Context 返回 Group 的 context。
func (g *Group) Context() context.Context {
	return g.ctx
}
