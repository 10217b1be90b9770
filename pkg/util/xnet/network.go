package xnet

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// Form 表示网络字面量的书写形式。
type Form uint8

const (
	// FormInvalid 表示无法识别的写法。
	FormInvalid Form = iota
	// FormCIDR 前缀长度写法，如 "216.240.32.0/24"。
	FormCIDR
	// FormMask 斜杠 + 点分掩码，如 "216.240.32.0/255.255.255.0"。
	FormMask
	// FormHostmask 主机掩码（反掩码），如 "216.240.32.0#0.0.0.255"。
	FormHostmask
	// FormColonMask 冒号 + 点分掩码，如 "216.240.32.0:255.255.255.0"。
	FormColonMask
	// FormSpaceMask 空格 + 点分掩码，如 "216.240.32.0 255.255.255.0"。
	FormSpaceMask
	// FormRange 显式范围，如 "216.240.32.0 - 216.240.32.255"。
	FormRange
	// FormImplicit 按八位段个数推断前缀的简写，如 "216.240.32"（/24）。
	FormImplicit
	// FormSingle 单个地址，等价于 /32 或 /128。
	FormSingle
	// FormDefault 关键字 "default" 或 "any"，表示 0.0.0.0/0。
	FormDefault
)

// String 返回写法名称。
func (f Form) String() string {
	switch f {
	case FormCIDR:
		return "cidr"
	case FormMask:
		return "mask"
	case FormHostmask:
		return "hostmask"
	case FormColonMask:
		return "colon-mask"
	case FormSpaceMask:
		return "space-mask"
	case FormRange:
		return "range"
	case FormImplicit:
		return "implicit"
	case FormSingle:
		return "single"
	case FormDefault:
		return "default"
	default:
		return "invalid"
	}
}

// Legacy 报告该写法是否为不含 "/" 的旧式写法。
// 只有斜杠写法（前缀长度或点分掩码）不属于旧式写法。
func (f Form) Legacy() bool {
	switch f {
	case FormInvalid, FormCIDR, FormMask:
		return false
	default:
		return true
	}
}

// Network 是解析后的网络字面量。
type Network struct {
	// Literal 是去除首尾空白后的原始字面量。
	Literal string
	// Form 是字面量的书写形式。
	Form Form
	// Range 是网络覆盖的地址范围。
	Range netipx.IPRange
}

// Version 返回网络的地址族。
func (n Network) Version() Version {
	return AddrVersion(n.Range.From())
}

// Contains 报告 addr 是否落在网络范围内。
// 地址族必须一致：IPv4-mapped IPv6 地址不会匹配 IPv4 网络。
func (n Network) Contains(addr netip.Addr) bool {
	if !addr.IsValid() || !n.Range.IsValid() {
		return false
	}
	if addr.BitLen() != n.Range.From().BitLen() {
		return false
	}
	return n.Range.Contains(addr)
}

// Prefixes 返回覆盖该网络的最少 CIDR 前缀。
func (n Network) Prefixes() []netip.Prefix {
	return RangeToPrefixes(n.Range)
}

// String 返回规范形式：能用单个前缀表示时返回 CIDR，否则返回 "from-to"。
func (n Network) String() string {
	if !n.Range.IsValid() {
		return ""
	}
	if p, ok := n.Range.Prefix(); ok {
		return p.String()
	}
	return n.Range.String()
}

// ParseNetwork 解析网络字面量。
//
// 除 CIDR 外还接受以下兼容写法（[Form.Legacy] 为 true）：
//   - 主机掩码: "216.240.32.0#0.0.0.255"
//   - 冒号/空格掩码: "216.240.32.0:255.255.255.0"、"216.240.32.0 255.255.255.0"
//   - 范围: "216.240.32.0 - 216.240.32.255"
//   - 类别简写: "216.240.32" → /24, "216.240" → /16, "216" → /8
//   - 单地址: "216.240.32.4" → /32
//   - 关键字: "default" / "any" → 0.0.0.0/0
//
// CIDR 中的地址部分同样允许简写（"10/8"）。主机位会被清零。
// 所有错误都包装 [ErrInvalidNetwork]。
func ParseNetwork(s string) (Network, error) {
	lit := strings.TrimSpace(s)
	n, err := parseNetwork(lit)
	if err != nil {
		return Network{}, fmt.Errorf("%w: %q: %w", ErrInvalidNetwork, lit, err)
	}
	n.Literal = lit
	return n, nil
}

// MustParseNetwork 与 ParseNetwork 相同，失败时 panic。
// 仅用于常量表等编译期已知合法的字面量。
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(err)
	}
	return n
}

func parseNetwork(lit string) (Network, error) {
	if lit == "" {
		return Network{}, fmt.Errorf("%w: empty literal", ErrInvalidRange)
	}
	if strings.Contains(lit, "%") {
		return Network{}, fmt.Errorf("%w: IPv6 zone ID is not supported", ErrInvalidRange)
	}

	switch strings.ToLower(lit) {
	case "default", "any":
		return Network{
			Form:  FormDefault,
			Range: netipx.RangeOfPrefix(netip.PrefixFrom(netip.IPv4Unspecified(), 0)),
		}, nil
	}

	if idx := strings.IndexByte(lit, '/'); idx >= 0 {
		return parseSlash(strings.TrimSpace(lit[:idx]), strings.TrimSpace(lit[idx+1:]))
	}

	if idx := strings.IndexByte(lit, '#'); idx >= 0 {
		return parseHostmask(strings.TrimSpace(lit[:idx]), strings.TrimSpace(lit[idx+1:]))
	}

	if idx := strings.IndexByte(lit, '-'); idx >= 0 {
		r, err, handled := parseExplicitRange(lit, idx)
		if !handled {
			return Network{}, fmt.Errorf("%w: neither side is an address", ErrInvalidRange)
		}
		if err != nil {
			return Network{}, err
		}
		return Network{Form: FormRange, Range: r}, nil
	}

	if fields := strings.Fields(lit); len(fields) == 2 {
		return parseWithMask(FormSpaceMask, fields[0], fields[1])
	}

	// 冒号掩码只对 IPv4 有意义：恰好一个冒号且两侧为点分形式。
	if strings.Count(lit, ":") == 1 && strings.Contains(lit, ".") {
		idx := strings.IndexByte(lit, ':')
		return parseWithMask(FormColonMask, lit[:idx], lit[idx+1:])
	}

	if addr, err := netip.ParseAddr(lit); err == nil {
		return Network{Form: FormSingle, Range: netipx.IPRangeFrom(addr, addr)}, nil
	}

	if addr, octets, ok := expandImplicit(lit); ok {
		p := netip.PrefixFrom(addr, octets*8)
		return Network{Form: FormImplicit, Range: netipx.RangeOfPrefix(p)}, nil
	}

	return Network{}, fmt.Errorf("%w: unrecognized notation", ErrInvalidRange)
}

// parseSlash 处理 "addr/bits" 与 "addr/mask" 两种斜杠写法。
func parseSlash(addrPart, maskPart string) (Network, error) {
	if strings.Contains(maskPart, ".") {
		r, err := parseRangeWithMask(addrPart, maskPart)
		if err != nil {
			return Network{}, err
		}
		return Network{Form: FormMask, Range: r}, nil
	}

	if !strings.Contains(addrPart, ":") {
		if addr, _, ok := expandImplicit(addrPart); ok {
			addrPart = addr.String()
		}
	}
	prefix, err := netip.ParsePrefix(addrPart + "/" + maskPart)
	if err != nil {
		return Network{}, fmt.Errorf("%w: invalid CIDR: %w", ErrInvalidRange, err)
	}
	return Network{Form: FormCIDR, Range: netipx.RangeOfPrefix(prefix.Masked())}, nil
}

func parseHostmask(addrPart, hostmask string) (Network, error) {
	addr, err := netip.ParseAddr(addrPart)
	if err != nil {
		return Network{}, fmt.Errorf("%w: invalid address: %w", ErrInvalidRange, err)
	}
	inv, err := netip.ParseAddr(hostmask)
	if err != nil || !inv.Is4() {
		return Network{}, fmt.Errorf("%w: %q", ErrInvalidMask, hostmask)
	}
	v, _ := AddrToUint32(inv)
	mask := ^v
	if v&(v+1) != 0 {
		return Network{}, fmt.Errorf("%w: non-contiguous hostmask %q", ErrInvalidMask, hostmask)
	}
	r, err := rangeFromMask(addr, mask)
	if err != nil {
		return Network{}, err
	}
	return Network{Form: FormHostmask, Range: r}, nil
}

func parseWithMask(form Form, addrPart, maskPart string) (Network, error) {
	r, err := parseRangeWithMask(strings.TrimSpace(addrPart), strings.TrimSpace(maskPart))
	if err != nil {
		return Network{}, err
	}
	return Network{Form: form, Range: r}, nil
}

// expandImplicit 将 1~3 段十进制八位段补零为完整 IPv4 地址。
// 返回补齐后的地址与显式给出的段数。
func expandImplicit(s string) (netip.Addr, int, bool) {
	parts := strings.Split(s, ".")
	if len(parts) == 0 || len(parts) > 3 {
		return netip.Addr{}, 0, false
	}
	var b [4]byte
	for i, p := range parts {
		v, ok := parseOctet(p)
		if !ok {
			return netip.Addr{}, 0, false
		}
		b[i] = v
	}
	return netip.AddrFrom4(b), len(parts), true
}

// parseOctet 解析不带前导零的十进制八位段。
func parseOctet(s string) (byte, bool) {
	if len(s) == 0 || len(s) > 3 || (len(s) > 1 && s[0] == '0') {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	if v > 255 {
		return 0, false
	}
	return byte(v), true
}
