package xnet

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// IPSetFromRanges 从 IPRange 切片构建 IPSet，严格校验每个范围。
// 自动合并重叠和相邻的范围。
// 任何范围无效（From > To 或混合地址族）时返回带下标的 ErrInvalidRange。
// 空切片返回空的 IPSet（非 nil）。
func IPSetFromRanges(ranges []netipx.IPRange) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for i, r := range ranges {
		if !r.IsValid() {
			return nil, fmt.Errorf("%w: range [%d] %s-%s is invalid", ErrInvalidRange, i, r.From(), r.To())
		}
		b.AddRange(r)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return set, nil
}

// RangeToPrefixes 将 IP 范围分解为最少数量的 CIDR 前缀。
// 无效范围返回 nil。
//
//	r, _ := xnet.ParseRange("192.168.1.1-192.168.1.4")
//	prefixes := xnet.RangeToPrefixes(r)   // [192.168.1.1/32 192.168.1.2/31 192.168.1.4/32]
func RangeToPrefixes(r netipx.IPRange) []netip.Prefix {
	if !r.IsValid() {
		return nil
	}
	return r.Prefixes()
}
