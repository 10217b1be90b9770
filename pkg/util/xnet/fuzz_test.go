package xnet

import (
	"net/netip"
	"testing"
)

func FuzzParseNetwork(f *testing.F) {
	for _, seed := range []string{
		"216.240.32.0/24",
		"216.240.32",
		"216.240.32.0#0.0.0.255",
		"216.240.32.0:255.255.255.0",
		"216.240.32.0 - 216.240.32.255",
		"default",
		"2001:db8::/32",
		"::1-::ff",
		"10/8",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		n, err := ParseNetwork(s)
		if err != nil {
			return
		}
		if !n.Range.IsValid() {
			t.Fatalf("ParseNetwork(%q) returned invalid range", s)
		}
		if n.Form == FormInvalid {
			t.Fatalf("ParseNetwork(%q) returned FormInvalid without error", s)
		}
		// 范围两端必须属于网络本身
		if !n.Contains(n.Range.From()) || !n.Contains(n.Range.To()) {
			t.Fatalf("ParseNetwork(%q) does not contain its own bounds", s)
		}
		// 前缀分解必须覆盖同一范围
		prefixes := n.Prefixes()
		if len(prefixes) == 0 {
			t.Fatalf("ParseNetwork(%q) produced no prefixes", s)
		}
		if prefixes[0].Addr() != n.Range.From() {
			t.Fatalf("first prefix %s does not start at %s", prefixes[0], n.Range.From())
		}
	})
}

func FuzzNetworkContainsFamily(f *testing.F) {
	f.Add("10.0.0.0/8", "10.1.2.3")
	f.Add("10.0.0.0/8", "::ffff:10.1.2.3")
	f.Add("fc00::/7", "fd00::1")

	f.Fuzz(func(t *testing.T, network, addr string) {
		n, err := ParseNetwork(network)
		if err != nil {
			return
		}
		a, err := netip.ParseAddr(addr)
		if err != nil {
			return
		}
		if n.Contains(a) && AddrVersion(a) != n.Version() {
			t.Fatalf("%s contains %s across families", n, a)
		}
	})
}
