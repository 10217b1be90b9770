// Package xiplit 提供 IPv4 / IPv6 文本字面量的严格校验。
//
// 校验器只回答"这个字符串是不是某个地址族的合法字面量"，
// 成功时原样返回输入（不做展开或规范化），失败时返回 ("", false)。
// 畸形输入是常态而非异常，因此不返回 error，也不 panic。
//
// # IPv4
//
// 恰好四段点分十进制，每段 1~3 位数字且不超过 255；
// 多位数段不得以 0 开头（"016.17.184.1" 非法，"0.0.0.0" 合法）；
// 不允许空白、NUL、尾随点或多余段。
//
// # IPv6
//
// 支持全部压缩写法和 IPv4 尾部：
//
//	::                      合法
//	::1                     合法
//	2001::                  合法，结尾压缩原样保留
//	::ffff:12.34.56.78      合法，IPv4 尾部占两组
//	2001:::                 非法
//	2001::1:                非法，孤立的结尾冒号
//	12.34.56.78             非法，单独的 IPv4 不是 IPv6
//
// # 两种实现
//
// [ManualIPv4] / [ManualIPv6] 是手写扫描；[PlatformIPv4] / [PlatformIPv6]
// 委托 [net/netip]。平台实现只有在 [SelectIPv4] / [SelectIPv6] 的启动探测
// 全部通过时才会被选中，探测失败静默回退到手写实现。
// 两种实现对所有输入的结论必须一致，差别只在性能。
package xiplit
