package xnet

import (
	"fmt"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParseRange 从字符串解析 IP 范围。支持 4 种格式：
//   - 单 IP: "192.168.1.1"
//   - CIDR: "192.168.1.0/24"
//   - 掩码: "192.168.1.0/255.255.255.0"（仅 IPv4）
//   - 范围: "192.168.1.1-192.168.1.100"
//
// 输入会自动去除首尾空白字符。旧式网络写法（主机掩码、类别简写等）
// 请使用 [ParseNetwork]。
func ParseRange(s string) (netipx.IPRange, error) {
	s = strings.TrimSpace(s)

	// netipx.IPRange/IPSet 会静默丢弃 zone 信息，含 zone 的输入直接拒绝。
	if strings.Contains(s, "%") {
		return netipx.IPRange{}, fmt.Errorf("%w: IPv6 zone ID is not supported in range operations: %s", ErrInvalidRange, s)
	}

	if idx := strings.Index(s, "-"); idx >= 0 {
		r, err, handled := parseExplicitRange(s, idx)
		if handled {
			return r, err
		}
	}

	if idx := strings.Index(s, "/"); idx >= 0 {
		addrPart := strings.TrimSpace(s[:idx])
		maskStr := strings.TrimSpace(s[idx+1:])
		if strings.Contains(maskStr, ".") {
			return parseRangeWithMask(addrPart, maskStr)
		}
		prefix, err := netip.ParsePrefix(addrPart + "/" + maskStr)
		if err != nil {
			return netipx.IPRange{}, fmt.Errorf("%w: invalid CIDR: %w", ErrInvalidRange, err)
		}
		return netipx.RangeOfPrefix(prefix.Masked()), nil
	}

	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return netipx.IPRangeFrom(addr, addr), nil
}

// parseExplicitRange 尝试将 s 按位置 idx 处的 '-' 拆分为起止地址。
// 返回 (range, err, handled)：handled=false 时两侧都不是地址，调用方应回退。
func parseExplicitRange(s string, idx int) (netipx.IPRange, error, bool) {
	startStr := strings.TrimSpace(s[:idx])
	endStr := strings.TrimSpace(s[idx+1:])
	start, startErr := netip.ParseAddr(startStr)
	end, endErr := netip.ParseAddr(endStr)
	switch {
	case startErr == nil && endErr == nil:
		if start.BitLen() != end.BitLen() {
			return netipx.IPRange{}, fmt.Errorf("%w: mixed address families: %s", ErrInvalidRange, s), true
		}
		r := netipx.IPRangeFrom(start, end)
		if !r.IsValid() {
			return netipx.IPRange{}, fmt.Errorf("%w: %s", ErrInvalidRange, s), true
		}
		return r, nil, true
	case startErr == nil:
		return netipx.IPRange{}, fmt.Errorf("%w: invalid range end: %s", ErrInvalidRange, endStr), true
	case endErr == nil:
		return netipx.IPRange{}, fmt.Errorf("%w: invalid range start: %s", ErrInvalidRange, startStr), true
	default:
		return netipx.IPRange{}, nil, false
	}
}

// parseRangeWithMask 解析点分掩码格式的 IP 范围（仅 IPv4）。
// 非连续掩码（如 "255.0.255.0"）返回 ErrInvalidRange。
func parseRangeWithMask(addrStr, maskStr string) (netipx.IPRange, error) {
	addr, err := netip.ParseAddr(addrStr)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: invalid address: %w", ErrInvalidRange, err)
	}
	mask, err := parseMask(maskStr)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	r, err := rangeFromMask(addr, mask)
	if err != nil {
		return netipx.IPRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return r, nil
}

// parseMask 将点分十进制掩码解析为 uint32，并校验连续性。
func parseMask(s string) (uint32, error) {
	m, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil || !m.Is4() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMask, s)
	}
	v, _ := AddrToUint32(m)
	// 合法掩码为前缀全 1 后缀全 0。
	inverted := ^v
	if inverted&(inverted+1) != 0 {
		return 0, fmt.Errorf("%w: non-contiguous mask %q", ErrInvalidMask, s)
	}
	return v, nil
}

// rangeFromMask 用掩码截取 addr 所在的 IPv4 网段。
func rangeFromMask(addr netip.Addr, mask uint32) (netipx.IPRange, error) {
	v, ok := AddrToUint32(addr)
	if !ok {
		return netipx.IPRange{}, fmt.Errorf("%w: mask notation only supports IPv4: %s", ErrInvalidMask, addr)
	}
	start := v & mask
	end := start | ^mask
	return netipx.IPRangeFrom(AddrFromUint32(start), AddrFromUint32(end)), nil
}

// ParseRanges 从字符串切片解析并合并为 [*netipx.IPSet]。
// 每个字符串使用 [ParseNetwork] 解析，结果自动合并去重。
// 空切片或 nil 返回空的 IPSet。
func ParseRanges(strs []string) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, s := range strs {
		n, err := ParseNetwork(s)
		if err != nil {
			return nil, fmt.Errorf("parse range %q: %w", s, err)
		}
		b.AddRange(n.Range)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
