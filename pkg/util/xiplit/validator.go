package xiplit

import (
	"net/netip"
	"strings"

	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Kind 表示校验器的实现方式。
type Kind uint8

const (
	// KindManual 手写文法扫描，行为不依赖宿主平台。
	KindManual Kind = iota + 1
	// KindPlatform 委托 [netip.ParseAddr]，仅在启动探测通过后使用。
	KindPlatform
)

// String 返回实现方式名称。
func (k Kind) String() string {
	switch k {
	case KindManual:
		return "manual"
	case KindPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// Validator 校验单一地址族的文本字面量。
//
// Validate 成功时返回与输入逐字节相同的字面量和 true；
// 任何不合法输入返回 ("", false)，不返回错误也不 panic。
type Validator interface {
	Validate(s string) (string, bool)
	Family() xnet.Version
	Kind() Kind
}

// 编译时接口检查
var (
	_ Validator = manualIPv4{}
	_ Validator = manualIPv6{}
	_ Validator = platformIPv4{}
	_ Validator = platformIPv6{}
)

// ManualIPv4 返回手写扫描的 IPv4 校验器。
func ManualIPv4() Validator { return manualIPv4{} }

// ManualIPv6 返回手写文法的 IPv6 校验器。
func ManualIPv6() Validator { return manualIPv6{} }

// PlatformIPv4 返回基于 [netip.ParseAddr] 的 IPv4 校验器。
// 直接使用前应先经过 [SelectIPv4] 的探测。
func PlatformIPv4() Validator { return platformIPv4{} }

// PlatformIPv6 返回基于 [netip.ParseAddr] 的 IPv6 校验器。
// 直接使用前应先经过 [SelectIPv6] 的探测。
func PlatformIPv6() Validator { return platformIPv6{} }

type manualIPv4 struct{}

func (manualIPv4) Validate(s string) (string, bool) {
	if !isIPv4(s) {
		return "", false
	}
	return s, true
}

func (manualIPv4) Family() xnet.Version { return xnet.V4 }
func (manualIPv4) Kind() Kind           { return KindManual }

type manualIPv6 struct{}

func (manualIPv6) Validate(s string) (string, bool) {
	if !isIPv6(s) {
		return "", false
	}
	return s, true
}

func (manualIPv6) Family() xnet.Version { return xnet.V6 }
func (manualIPv6) Kind() Kind           { return KindManual }

type platformIPv4 struct{}

func (platformIPv4) Validate(s string) (string, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return "", false
	}
	return s, true
}

func (platformIPv4) Family() xnet.Version { return xnet.V4 }
func (platformIPv4) Kind() Kind           { return KindPlatform }

type platformIPv6 struct{}

func (platformIPv6) Validate(s string) (string, bool) {
	// netip 接受 zone（fe80::1%eth0），手写文法不接受，这里对齐。
	if strings.IndexByte(s, '%') >= 0 {
		return "", false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is6() {
		return "", false
	}
	return s, true
}

func (platformIPv6) Family() xnet.Version { return xnet.V6 }
func (platformIPv6) Kind() Kind           { return KindPlatform }
