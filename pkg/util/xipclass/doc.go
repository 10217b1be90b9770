// Package xipclass 维护 IP 地址空间类别表，并提供基于前缀包含关系的分类器。
//
// # 类别表
//
// 每个地址族（IPv4 / IPv6）持有一张有序的类别表，类别名映射到一组 CIDR 字面量。
// [DefaultTables] 返回内置的 IETF 保留地址表：
//
//	IPv4: loopback, private, testnet, multicast, linklocal, unroutable, anycast
//	IPv6: loopback, private, multicast, linklocal, special, teredo,
//	      ipv4mapped, discard, orchid, documentation, unspecified
//
// 类别之间允许重叠，例如 teredo (2001::/32) 是 special (2001::/23) 的子集，
// 一个地址可同时属于多个类别。
//
// # Registry
//
// [NewRegistry] 在构造时校验并编译全部字面量，之后 [Registry] 只读，可被任意
// goroutine 并发使用。每个类别编译为一个 [netipx.IPSet]，同时按地址族构建所有类别的并集。
//
// "public" 不是存储的类别，而是并集的补集：地址合法且不在任何已注册类别中即为 public。
// 通过 [WithCategory] 追加的自定义类别同样参与并集，因而会缩小 public 的范围。
//
// # Classifier
//
// [Classifier] 组合 [Registry] 与 xiplit 校验器：先按文法校验字面量，再做包含判断。
// 校验失败、类别未知或不包含时统一返回 ("", false)。
package xipclass
