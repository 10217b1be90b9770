package xipcheck

import (
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// IsPrivateIPv4 10.0.0.0/8、172.16.0.0/12、192.168.0.0/16。
func (c *Checker) IsPrivateIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Private, value)
}

// IsLoopbackIPv4 127.0.0.0/8。
func (c *Checker) IsLoopbackIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Loopback, value)
}

// IsTestnetIPv4 192.0.2.0/24、198.51.100.0/24、203.0.113.0/24。
func (c *Checker) IsTestnetIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Testnet, value)
}

// IsMulticastIPv4 224.0.0.0/4。
func (c *Checker) IsMulticastIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Multicast, value)
}

// IsLinkLocalIPv4 169.254.0.0/16。
func (c *Checker) IsLinkLocalIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.LinkLocal, value)
}

// IsUnroutableIPv4 0/8、100.64/10、192.0.0.0/24、198.18/15、240/4。
func (c *Checker) IsUnroutableIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Unroutable, value)
}

// IsAnycastIPv4 192.88.99.0/24（6to4 中继）。
func (c *Checker) IsAnycastIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Anycast, value)
}

// IsPublicIPv4 合法且不属于任何已注册的 IPv4 类别。
func (c *Checker) IsPublicIPv4(value string) (string, bool) {
	return c.Is(xnet.V4, xipclass.Public, value)
}

// IsPrivateIPv6 fc00::/7。
func (c *Checker) IsPrivateIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Private, value)
}

// IsLoopbackIPv6 ::1/128。
func (c *Checker) IsLoopbackIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Loopback, value)
}

// IsMulticastIPv6 ff00::/8。
func (c *Checker) IsMulticastIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Multicast, value)
}

// IsLinkLocalIPv6 fe80::/10。
func (c *Checker) IsLinkLocalIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.LinkLocal, value)
}

// IsSpecialIPv6 2001::/23。teredo 与 orchid 地址同时也是 special。
func (c *Checker) IsSpecialIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Special, value)
}

// IsTeredoIPv6 2001::/32。
func (c *Checker) IsTeredoIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Teredo, value)
}

// IsIPv4MappedIPv6 ::ffff:0:0/96。
func (c *Checker) IsIPv4MappedIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.IPv4Mapped, value)
}

// IsDiscardIPv6 100::/64。
func (c *Checker) IsDiscardIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Discard, value)
}

// IsOrchidIPv6 2001:10::/28。
func (c *Checker) IsOrchidIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Orchid, value)
}

// IsDocumentationIPv6 2001:db8::/32。
func (c *Checker) IsDocumentationIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Documentation, value)
}

// IsUnspecifiedIPv6 ::/128。
func (c *Checker) IsUnspecifiedIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Unspecified, value)
}

// IsPublicIPv6 合法且不属于任何已注册的 IPv6 类别。
func (c *Checker) IsPublicIPv6(value string) (string, bool) {
	return c.Is(xnet.V6, xipclass.Public, value)
}

// IsPrivateIP 与地址族无关的 private 判断。
func (c *Checker) IsPrivateIP(value string) (string, bool) {
	return c.isAny(xipclass.Private, value)
}

// IsLoopbackIP 与地址族无关的 loopback 判断。
func (c *Checker) IsLoopbackIP(value string) (string, bool) {
	return c.isAny(xipclass.Loopback, value)
}

// IsMulticastIP 与地址族无关的 multicast 判断。
func (c *Checker) IsMulticastIP(value string) (string, bool) {
	return c.isAny(xipclass.Multicast, value)
}

// IsLinkLocalIP 与地址族无关的 linklocal 判断。
func (c *Checker) IsLinkLocalIP(value string) (string, bool) {
	return c.isAny(xipclass.LinkLocal, value)
}

// IsPublicIP 与地址族无关的 public 判断。
func (c *Checker) IsPublicIP(value string) (string, bool) {
	return c.isAny(xipclass.Public, value)
}
