// Package xnet 提供网络字面量解析与地址包含判断。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 直接使用 [netip.Addr]、[netipx.IPRange] 与 [*netipx.IPSet]，
// 不自研 CIDR 运算。
//
// # 核心功能
//
//   - network.go: [ParseNetwork] 解析 CIDR 及各种旧式写法为 [Network]，[Network.Contains] 判断包含
//   - parse.go: [ParseRange] 解析单 IP/CIDR/掩码/范围，[ParseRanges] 批量构建 [*netipx.IPSet]
//   - contains.go: [IPSetFromRanges] 严格构建集合，[RangeToPrefixes] 分解为 CIDR
//   - version.go: 地址族 [Version] 与 [AddrVersion]
//
// # 网络字面量写法
//
// 斜杠写法（"216.240.32.0/24"、"216.240.32.0/255.255.255.0"）是唯一的推荐写法。
// 为兼容历史配置，以下写法仍然可以解析，但 [Form.Legacy] 为 true，
// 上层可以据此发出弃用提示：
//
//	216.240.32.0#0.0.0.255          主机掩码
//	216.240.32.0:255.255.255.0      冒号掩码
//	216.240.32.0 255.255.255.0      空格掩码
//	216.240.32.0 - 216.240.32.255   显式范围
//	216.240.32                      按段数推断（/24）
//	216.240.32.4                    单地址（/32）
//	default / any                   0.0.0.0/0
//
// 旧式写法按尽力而为解析，只有 CIDR 写法有严格的逐位语义。
//
// # 地址族
//
// IPv4-mapped IPv6 地址（::ffff:a.b.c.d）属于 IPv6 地址族，
// 不会被 IPv4 网络包含，[AddrVersion] 也将其报告为 [V6]。
// 含 zone（"fe80::1%eth0"）的输入一律拒绝：[netipx.IPSet] 会静默丢弃 zone。
//
// # 错误处理
//
// 预定义错误变量支持 errors.Is 判断：
//
//	_, err := xnet.ParseNetwork("216.240.32.0/255.0.255.0")
//	errors.Is(err, xnet.ErrInvalidNetwork) // true
//	errors.Is(err, xnet.ErrInvalidMask)    // true
package xnet
