package xnet_test

import (
	"fmt"
	"net/netip"

	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

func ExampleParseNetwork() {
	n, err := xnet.ParseNetwork("216.240.32")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n.Form, n.Form.Legacy())
	fmt.Println(n)
	fmt.Println(n.Contains(netip.MustParseAddr("216.240.32.17")))
	// Output:
	// implicit true
	// 216.240.32.0/24
	// true
}

func ExampleParseRange() {
	r, err := xnet.ParseRange("192.168.1.0/24")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(r.From())
	fmt.Println(r.To())
	// Output:
	// 192.168.1.0
	// 192.168.1.255
}

func ExampleParseRanges() {
	set, err := xnet.ParseRanges([]string{
		"10.0.0.50-10.0.0.150",
		"10.0.0.1-10.0.0.100",
		"192.168.1.0/24",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(len(set.Ranges()))
	fmt.Println(set.Contains(netip.MustParseAddr("10.0.0.120")))
	// Output:
	// 2
	// true
}
