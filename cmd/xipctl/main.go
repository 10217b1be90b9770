// xipctl 是 IP 地址字面量校验与分类的命令行工具。
//
// 用法:
//
//	xipctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config       配置文件路径（.yaml/.yml/.json）
//	    --fast-parse   允许使用通过探测的平台解析器（默认取配置或 XIPCHECK_FAST_PARSE）
//	    --log-level    日志级别 (debug/info/warn/error)
//	    --log-format   日志格式 (text/json)
//	    --stats        结束时向 stderr 输出检查计数
//
// 命令:
//
//	validate <value...>           校验地址字面量
//	classify <value...>           列出地址所属类别
//	innet <value> <network>       判断地址是否属于网络
//	batch                         并发分类输入中的每一行，保持输入顺序
//	filter --category <name>      按类别过滤输入行，可随配置文件热更新
//
// 退出码:
//
//	0: 成功
//	1: 存在不合法或不匹配的输入，或执行失败
//	2: 参数错误
//
// 示例:
//
//	xipctl validate 10.0.0.1 2001::
//	xipctl classify --json 2001::1234
//	xipctl innet 216.240.32.5 216.240.32.0/24
//	xipctl -c xipctl.yaml batch -i addrs.txt
//	tail -f access.log | xipctl -c xipctl.yaml filter --category public --watch
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(mainWithSignals())
}

func mainWithSignals() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(cancel)

	return run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
}

// createApp 创建 CLI 应用。
func createApp(s *session) *cli.Command {
	return &cli.Command{
		Name:    "xipctl",
		Usage:   "IP 地址字面量校验与分类",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.BoolFlag{
				Name:  "fast-parse",
				Usage: "允许使用通过探测的平台解析器",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式 (text/json)",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "结束时向 stderr 输出检查计数",
			},
		},
		Commands:       createCommands(s),
		DefaultCommand: "help",
		Reader:         s.in,
		Writer:         s.out,
		ErrWriter:      s.errOut,
		Before:         s.setup,
		After:          s.teardown,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run 统一映射退出码。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(s.errOut, err)
			}
		},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	s := newSession(in, out, errOut)
	app := createApp(s)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(errOut, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(errOut, "错误: %v\n", err)
		return 1
	}
	return 0
}
