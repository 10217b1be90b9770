package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xipcheck/pkg/observability/xmetrics"
	"github.com/omeyang/xipcheck/pkg/util/xipcheck"
)

// maxLineSize 是单行输入的上限。
const maxLineSize = 64 * 1024

func createBatchCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "并发分类输入中的每一行，按输入顺序输出",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "输入文件，默认 stdin"},
			&cli.BoolFlag{Name: "json", Usage: "每行输出一个 JSON 对象"},
			&cli.IntFlag{Name: "concurrency", Aliases: []string{"n"}, Usage: "并发度，默认取配置"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			limit := s.settings.Concurrency
			if cmd.IsSet("concurrency") {
				limit = int(cmd.Int("concurrency"))
			}
			if limit <= 0 {
				return &usageError{msg: fmt.Sprintf("并发度必须为正数: %d", limit)}
			}

			in := s.in
			if path := cmd.String("input"); path != "" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			lines, err := readLines(in)
			if err != nil {
				return err
			}
			reports, err := classifyBatch(ctx, s.current(), s.observer(), lines, limit)
			if err != nil {
				return err
			}
			for _, r := range reports {
				if err := writeReport(s.out, r, cmd.Bool("json")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// readLines 读取非空行，去除首尾空白。
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	var lines []string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// classifyBatch 以至多 limit 个 goroutine 分类 lines，结果与输入一一对应。
// ctx 取消时停止派发并返回 ctx 的错误。
func classifyBatch(ctx context.Context, c *xipcheck.Checker, observer xmetrics.Observer, lines []string, limit int) (reports []xipcheck.Report, err error) {
	ctx, span := xmetrics.Start(ctx, observer, xmetrics.SpanOptions{
		Component: "xipctl",
		Operation: "batch",
		Attrs:     []xmetrics.Attr{xmetrics.Int("lines", len(lines)), xmetrics.Int("concurrency", limit)},
	})
	defer func() {
		span.End(xmetrics.Result{Err: err})
	}()

	reports = make([]xipcheck.Report, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = c.Classify(line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}
