package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipcheck/pkg/config/xconf"
	"github.com/omeyang/xipcheck/pkg/lifecycle/xrun"
	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

func createFilterCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:    "filter",
		Aliases: []string{"f"},
		Usage:   "输出属于指定类别的输入行",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Aliases: []string{"k"}, Usage: "类别名，public 表示补集", Required: true},
			&cli.BoolFlag{Name: "invert", Usage: "输出不属于该类别的行"},
			&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "配置文件变更时重新加载类别"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := xipclass.Category(cmd.String("category"))
			if !knownCategory(s, name) {
				return &usageError{msg: fmt.Sprintf("未知类别: %q", name)}
			}
			if cmd.Bool("watch") && s.cfg == nil {
				return &usageError{msg: "--watch 需要 --config"}
			}
			return s.runFilter(ctx, name, cmd.Bool("invert"), cmd.Bool("watch"))
		},
	}
}

// knownCategory 报告 name 是否为 public 或任一地址族的已注册类别。
func knownCategory(s *session, name xipclass.Category) bool {
	if name == xipclass.Public {
		return true
	}
	reg := s.current().Registry()
	return reg.Has(xnet.V4, name) || reg.Has(xnet.V6, name)
}

// runFilter 逐行过滤输入；watch 为 true 时同时监听配置文件。
// 输入结束后停止 watcher。
func (s *session) runFilter(ctx context.Context, name xipclass.Category, invert, watch bool) error {
	g, ctx := xrun.NewGroup(ctx, xrun.WithName("filter"), xrun.WithLogger(s.logger))
	if watch {
		w, err := xconf.Watch(s.cfg, func(cfg xconf.Config, err error) {
			if err != nil {
				s.logger.Warn(ctx, "config reload failed", xlog.Err(err))
				return
			}
			if err := s.reload(ctx, cfg); err != nil {
				s.logger.Warn(ctx, "config rejected, keeping previous", xlog.Err(err))
			}
		})
		if err != nil {
			return err
		}
		g.Add("config-watcher", w)
	}
	g.GoWithName("filter", func(ctx context.Context) error {
		defer g.Cancel(nil)
		return s.filterLines(ctx, s.in, name, invert)
	})
	return g.Wait()
}

// filterLines 输出 (是否属于 name) != invert 的行，原样保留行内容。
func (s *session) filterLines(ctx context.Context, r io.Reader, name xipclass.Category, invert bool) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	matched := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		_, ok := s.current().IsCategory(name, strings.TrimSpace(line))
		if ok == invert {
			continue
		}
		matched++
		if _, err := fmt.Fprintln(s.out, line); err != nil {
			return err
		}
	}
	s.logger.Debug(ctx, "filter done", slog.String("category", string(name)), slog.Int("matched", matched))
	return sc.Err()
}
