package xipcheck

import (
	"context"
	"sync"

	"github.com/omeyang/xipcheck/pkg/context/xenv"
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

var defaultChecker = sync.OnceValue(func() *Checker {
	return MustNew(WithFastParse(xenv.FastParse()))
})

// Default 返回包级函数使用的 Checker，首次调用时构造。
// 是否允许平台解析器由环境变量 XIPCHECK_FAST_PARSE 决定（见 [xenv.FastParse]）。
func Default() *Checker { return defaultChecker() }

// IsIPv4 见 [Checker.IsIPv4]。
func IsIPv4(value string) (string, bool) { return Default().IsIPv4(value) }

// IsIPv6 见 [Checker.IsIPv6]。
func IsIPv6(value string) (string, bool) { return Default().IsIPv6(value) }

// IsIP 见 [Checker.IsIP]。
func IsIP(value string) (string, bool) { return Default().IsIP(value) }

// IsInNetIPv4 见 [Checker.IsInNetIPv4]。
func IsInNetIPv4(value, network string) (string, bool, error) {
	return Default().isInNet(context.Background(), xnet.V4, value, network)
}

// IsInNetIPv6 见 [Checker.IsInNetIPv6]。
func IsInNetIPv6(value, network string) (string, bool, error) {
	return Default().isInNet(context.Background(), xnet.V6, value, network)
}

// Is 见 [Checker.Is]。
func Is(family xnet.Version, name xipclass.Category, value string) (string, bool) {
	return Default().Is(family, name, value)
}

// IsCategory 见 [Checker.IsCategory]。
func IsCategory(name xipclass.Category, value string) (string, bool) {
	return Default().IsCategory(name, value)
}

// Classify 见 [Checker.Classify]。
func Classify(value string) Report { return Default().Classify(value) }

func IsPrivateIPv4(value string) (string, bool)    { return Default().IsPrivateIPv4(value) }
func IsLoopbackIPv4(value string) (string, bool)   { return Default().IsLoopbackIPv4(value) }
func IsTestnetIPv4(value string) (string, bool)    { return Default().IsTestnetIPv4(value) }
func IsMulticastIPv4(value string) (string, bool)  { return Default().IsMulticastIPv4(value) }
func IsLinkLocalIPv4(value string) (string, bool)  { return Default().IsLinkLocalIPv4(value) }
func IsUnroutableIPv4(value string) (string, bool) { return Default().IsUnroutableIPv4(value) }
func IsAnycastIPv4(value string) (string, bool)    { return Default().IsAnycastIPv4(value) }
func IsPublicIPv4(value string) (string, bool)     { return Default().IsPublicIPv4(value) }

func IsPrivateIPv6(value string) (string, bool)       { return Default().IsPrivateIPv6(value) }
func IsLoopbackIPv6(value string) (string, bool)      { return Default().IsLoopbackIPv6(value) }
func IsMulticastIPv6(value string) (string, bool)     { return Default().IsMulticastIPv6(value) }
func IsLinkLocalIPv6(value string) (string, bool)     { return Default().IsLinkLocalIPv6(value) }
func IsSpecialIPv6(value string) (string, bool)       { return Default().IsSpecialIPv6(value) }
func IsTeredoIPv6(value string) (string, bool)        { return Default().IsTeredoIPv6(value) }
func IsIPv4MappedIPv6(value string) (string, bool)    { return Default().IsIPv4MappedIPv6(value) }
func IsDiscardIPv6(value string) (string, bool)       { return Default().IsDiscardIPv6(value) }
func IsOrchidIPv6(value string) (string, bool)        { return Default().IsOrchidIPv6(value) }
func IsDocumentationIPv6(value string) (string, bool) { return Default().IsDocumentationIPv6(value) }
func IsUnspecifiedIPv6(value string) (string, bool)   { return Default().IsUnspecifiedIPv6(value) }
func IsPublicIPv6(value string) (string, bool)        { return Default().IsPublicIPv6(value) }

func IsPrivateIP(value string) (string, bool)   { return Default().IsPrivateIP(value) }
func IsLoopbackIP(value string) (string, bool)  { return Default().IsLoopbackIP(value) }
func IsMulticastIP(value string) (string, bool) { return Default().IsMulticastIP(value) }
func IsLinkLocalIP(value string) (string, bool) { return Default().IsLinkLocalIP(value) }
func IsPublicIP(value string) (string, bool)    { return Default().IsPublicIP(value) }
