package xipclass

import (
	"slices"

	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Category 是地址空间类别名。
type Category string

// 内置类别名。
const (
	Loopback      Category = "loopback"
	Private       Category = "private"
	Testnet       Category = "testnet"
	Multicast     Category = "multicast"
	LinkLocal     Category = "linklocal"
	Unroutable    Category = "unroutable"
	Anycast       Category = "anycast"
	Special       Category = "special"
	Teredo        Category = "teredo"
	IPv4Mapped    Category = "ipv4mapped"
	Discard       Category = "discard"
	Orchid        Category = "orchid"
	Documentation Category = "documentation"
	Unspecified   Category = "unspecified"

	// Public 是派生类别：不属于任何已注册类别的合法地址。不能被注册。
	Public Category = "public"
)

// String 返回类别名。
func (c Category) String() string { return string(c) }

// Entry 是类别表中的一行。
type Entry struct {
	Name     Category
	Networks []string
}

// Table 是一个地址族的有序类别表，顺序决定 [Registry.Categories] 的返回顺序。
type Table []Entry

// Tables 是两个地址族的类别表。
type Tables struct {
	IPv4 Table
	IPv6 Table
}

// For 返回指定地址族的类别表。
func (t Tables) For(family xnet.Version) Table {
	switch family {
	case xnet.V4:
		return t.IPv4
	case xnet.V6:
		return t.IPv6
	default:
		return nil
	}
}

// DefaultTables 返回内置类别表的副本，调用方可自由修改。
func DefaultTables() Tables {
	return Tables{
		IPv4: cloneTable(defaultIPv4),
		IPv6: cloneTable(defaultIPv6),
	}
}

var defaultIPv4 = Table{
	// RFC 1122
	{Loopback, []string{"127.0.0.0/8"}},
	// RFC 1918
	{Private, []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}},
	// RFC 5737
	{Testnet, []string{"192.0.2.0/24", "198.51.100.0/24", "203.0.113.0/24"}},
	// RFC 3171
	{Multicast, []string{"224.0.0.0/4"}},
	// RFC 3927
	{LinkLocal, []string{"169.254.0.0/16"}},
	// RFC 1122, 6598, 6890, 2544, 1112
	{Unroutable, []string{"0.0.0.0/8", "100.64.0.0/10", "192.0.0.0/24", "198.18.0.0/15", "240.0.0.0/4"}},
	// RFC 3068
	{Anycast, []string{"192.88.99.0/24"}},
}

var defaultIPv6 = Table{
	// RFC 4291
	{Loopback, []string{"::1/128"}},
	// RFC 4193
	{Private, []string{"fc00::/7"}},
	// RFC 4291
	{Multicast, []string{"ff00::/8"}},
	// RFC 4291
	{LinkLocal, []string{"fe80::/10"}},
	// RFC 2928
	{Special, []string{"2001::/23"}},
	// RFC 4380，special 的子集
	{Teredo, []string{"2001::/32"}},
	// RFC 4291
	{IPv4Mapped, []string{"::ffff:0:0/96"}},
	// RFC 6666
	{Discard, []string{"100::/64"}},
	// RFC 4843，special 的子集
	{Orchid, []string{"2001:10::/28"}},
	// RFC 3849
	{Documentation, []string{"2001:db8::/32"}},
	// RFC 4291
	{Unspecified, []string{"::/128"}},
}

func cloneTable(t Table) Table {
	out := make(Table, len(t))
	for i, e := range t {
		out[i] = Entry{Name: e.Name, Networks: slices.Clone(e.Networks)}
	}
	return out
}
