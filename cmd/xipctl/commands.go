package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xipcheck/pkg/util/xipcheck"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// exitError 表示需要非零退出码但已完成输出的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 识别 urfave/cli 自身产生的参数错误（未知 flag、缺少参数等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"Required flag",
		"No help topic for",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// 创建所有子命令。
func createCommands(s *session) []*cli.Command {
	return []*cli.Command{
		createValidateCommand(s),
		createClassifyCommand(s),
		createInNetCommand(s),
		createBatchCommand(s),
		createFilterCommand(s),
	}
}

func createValidateCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "校验地址字面量",
		ArgsUsage: "<value...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "ipv4", Usage: "只接受 IPv4"},
			&cli.BoolFlag{Name: "ipv6", Usage: "只接受 IPv6"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			family, err := familyFlag(cmd)
			if err != nil {
				return err
			}
			return cmdValidate(s.out, s.current(), family, cmd.Args().Slice())
		},
	}
}

func createClassifyCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Aliases:   []string{"c"},
		Usage:     "列出地址所属类别",
		ArgsUsage: "<value...>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "每行输出一个 JSON 对象"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdClassify(s.out, s.current(), cmd.Bool("json"), cmd.Args().Slice())
		},
	}
}

func createInNetCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "innet",
		Usage:     "判断地址是否属于网络",
		ArgsUsage: "<value> <network>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "ipv6", Usage: "按 IPv6 判断"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			family := xnet.V4
			if cmd.Bool("ipv6") {
				family = xnet.V6
			}
			return cmdInNet(s.out, s.current(), family, cmd.Args().Slice())
		},
	}
}

// familyFlag 解析 --ipv4/--ipv6，都未设置时返回 V0。
func familyFlag(cmd *cli.Command) (xnet.Version, error) {
	v4, v6 := cmd.Bool("ipv4"), cmd.Bool("ipv6")
	switch {
	case v4 && v6:
		return xnet.V0, &usageError{msg: "--ipv4 与 --ipv6 不能同时使用"}
	case v4:
		return xnet.V4, nil
	case v6:
		return xnet.V6, nil
	default:
		return xnet.V0, nil
	}
}

// cmdValidate 逐个输出 "literal\tfamily"；存在不合法输入时退出码 1。
func cmdValidate(w io.Writer, c *xipcheck.Checker, family xnet.Version, values []string) error {
	if len(values) == 0 {
		return &usageError{msg: "validate 需要至少一个地址"}
	}

	invalid := 0
	for _, v := range values {
		var (
			lit string
			ok  bool
			got = family
		)
		switch family {
		case xnet.V4:
			lit, ok = c.IsIPv4(v)
		case xnet.V6:
			lit, ok = c.IsIPv6(v)
		default:
			if lit, ok = c.IsIPv4(v); ok {
				got = xnet.V4
			} else if lit, ok = c.IsIPv6(v); ok {
				got = xnet.V6
			}
		}
		if !ok {
			invalid++
			fmt.Fprintf(w, "%s\tinvalid\n", v)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", lit, got)
	}
	if invalid > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// cmdClassify 输出每个地址的分类报告；存在不合法输入时退出码 1。
func cmdClassify(w io.Writer, c *xipcheck.Checker, asJSON bool, values []string) error {
	if len(values) == 0 {
		return &usageError{msg: "classify 需要至少一个地址"}
	}

	invalid := 0
	for _, v := range values {
		r := c.Classify(v)
		if !r.Valid {
			invalid++
		}
		if err := writeReport(w, r, asJSON); err != nil {
			return err
		}
	}
	if invalid > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// cmdInNet 在地址属于网络时输出字面量；不属于时退出码 1，网络无法解析时退出码 2。
func cmdInNet(w io.Writer, c *xipcheck.Checker, family xnet.Version, args []string) error {
	if len(args) != 2 {
		return &usageError{msg: "innet 需要 <value> <network> 两个参数"}
	}

	var (
		lit string
		ok  bool
		err error
	)
	if family == xnet.V6 {
		lit, ok, err = c.IsInNetIPv6(args[0], args[1])
	} else {
		lit, ok, err = c.IsInNetIPv4(args[0], args[1])
	}
	if err != nil {
		if errors.Is(err, xnet.ErrInvalidNetwork) || errors.Is(err, xipcheck.ErrFamilyMismatch) {
			return &usageError{msg: err.Error()}
		}
		return err
	}
	if !ok {
		fmt.Fprintf(w, "%s\tnot in %s\n", args[0], args[1])
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, lit)
	return nil
}

// writeReport 以文本或 JSON 行输出一条报告。
// 文本格式: input \t family|invalid \t public|类别列表。
func writeReport(w io.Writer, r xipcheck.Report, asJSON bool) error {
	if asJSON {
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}

	if !r.Valid {
		_, err := fmt.Fprintf(w, "%s\tinvalid\t-\n", r.Input)
		return err
	}
	cats := "public"
	if !r.Public {
		names := make([]string, len(r.Categories))
		for i, c := range r.Categories {
			names[i] = string(c)
		}
		cats = strings.Join(names, ",")
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Literal, r.FamilyName(), cats)
	return err
}
