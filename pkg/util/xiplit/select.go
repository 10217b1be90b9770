package xiplit

import "github.com/omeyang/xipcheck/pkg/util/xnet"

// probe 是启动探测向量：Input 经过校验后必须得到 Valid 给出的结论。
type probe struct {
	input string
	valid bool
}

// ipv4Probes 覆盖平台解析器常见的宽松行为：八进制歧义的前导零与内嵌 NUL。
var ipv4Probes = []probe{
	{"016.17.184.1", false},
	{"1.2.3.04", false},
	{"1.2.3.4\x00", false},
	{"1.2.3.4\x00garbage", false},
	{"1.2.3", false},
	{" 1.2.3.4", false},
	{"0.0.0.0", true},
	{"255.255.255.255", true},
	{"12.34.56.78", true},
}

// ipv6Probes 覆盖多余/孤立的冒号、zone 以及压缩写法。
var ipv6Probes = []probe{
	{"2067:::", false},
	{"2067::1:", false},
	{":2067::1", false},
	{"1:2:3:4:5:6:7:8::", false},
	{"fe80::1%eth0", false},
	{"::1\x00", false},
	{"1.2.3.4", false},
	{"::", true},
	{"::1", true},
	{"2067::", true},
	{"::ffff:12.34.56.78", true},
	{"2001:0DB8:0000:0000:0000:0000:1428:57AB", true},
}

// SelectIPv4 选择 IPv4 校验器。
//
// allowPlatform 为 true 且平台解析器通过全部探测向量时返回 [PlatformIPv4]，
// 否则返回 [ManualIPv4]。选择在构造时完成一次，不在每次调用时重复。
func SelectIPv4(allowPlatform bool) Validator {
	return selectValidator(allowPlatform, PlatformIPv4(), ManualIPv4(), ipv4Probes)
}

// SelectIPv6 选择 IPv6 校验器，规则同 [SelectIPv4]。
func SelectIPv6(allowPlatform bool) Validator {
	return selectValidator(allowPlatform, PlatformIPv6(), ManualIPv6(), ipv6Probes)
}

func selectValidator(allowPlatform bool, platform, manual Validator, probes []probe) Validator {
	if allowPlatform && passes(platform, probes) {
		return platform
	}
	return manual
}

// passes 报告 v 是否在所有探测向量上给出期望结论，且成功时原样返回输入。
func passes(v Validator, probes []probe) bool {
	for _, p := range probes {
		got, ok := v.Validate(p.input)
		if ok != p.valid {
			return false
		}
		if ok && got != p.input {
			return false
		}
	}
	return true
}

// Validators 组合两个地址族的校验器。
type Validators struct {
	IPv4 Validator
	IPv6 Validator
}

// Select 按 allowPlatform 一次性选择两个地址族的校验器。
func Select(allowPlatform bool) Validators {
	return Validators{
		IPv4: SelectIPv4(allowPlatform),
		IPv6: SelectIPv6(allowPlatform),
	}
}

// Manual 返回两个地址族的手写校验器。
func Manual() Validators {
	return Validators{IPv4: ManualIPv4(), IPv6: ManualIPv6()}
}

// For 返回指定地址族的校验器，未知地址族或未设置时返回 nil。
func (v Validators) For(family xnet.Version) Validator {
	switch family {
	case xnet.V4:
		return v.IPv4
	case xnet.V6:
		return v.IPv6
	default:
		return nil
	}
}

// Validate 依次尝试 IPv4、IPv6，返回第一个接受 s 的地址族。
// 两个地址族都拒绝时返回 ("", V0, false)。
func (v Validators) Validate(s string) (string, xnet.Version, bool) {
	if v.IPv4 != nil {
		if lit, ok := v.IPv4.Validate(s); ok {
			return lit, xnet.V4, true
		}
	}
	if v.IPv6 != nil {
		if lit, ok := v.IPv6.Validate(s); ok {
			return lit, xnet.V6, true
		}
	}
	return "", xnet.V0, false
}
