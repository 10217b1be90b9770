package xnet

import "net/netip"

// Version 表示 IP 协议版本（地址族）。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Bits 返回该地址族的地址位数，V0 返回 0。
func (v Version) Bits() int {
	switch v {
	case V4:
		return 32
	case V6:
		return 128
	default:
		return 0
	}
}

// AddrVersion 返回 addr 的地址族。
//
// IPv4-mapped IPv6 地址（如 ::ffff:1.2.3.4）视为 V6：
// 字面量层面两个地址族互不相交，IPv4 尾部只是 IPv6 字面量的一部分。
// 无效地址返回 V0。
func AddrVersion(addr netip.Addr) Version {
	switch {
	case addr.Is4():
		return V4
	case addr.Is6():
		return V6
	default:
		return V0
	}
}
