// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址与网络字面量工具，基于 net/netip + go4.org/netipx
//   - xiplit: IPv4/IPv6 字面量文法校验，手写实现与平台实现二选一
//   - xipclass: 地址类别注册表与分类器
//   - xipcheck: 地址检查门面，谓词、分类、网络包含判断
//   - xlru: LRU 缓存，泛型支持、自动 TTL 过期
//
// 设计原则：
//   - 纯函数优先，可并发调用
//   - 严格拒绝宽松写法（前导零、zone、内嵌 NUL）
package util
