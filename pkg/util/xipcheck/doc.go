// Package xipcheck 校验 IPv4/IPv6 地址字面量，并按 IETF 保留地址空间分类。
//
// # 两种调用方式
//
// 包级函数使用惰性构建的共享 [Checker]（见 [Default]），适合大多数场景：
//
//	if lit, ok := xipcheck.IsPrivateIPv4(s); ok {
//		...
//	}
//
// 需要自定义类别、日志、指标或缓存时显式构造：
//
//	reg, _ := xipclass.NewRegistry(xipclass.DefaultTables(),
//		xipclass.WithCategory(xnet.V4, "office", "203.0.114.0/24"))
//	c, err := xipcheck.New(
//		xipcheck.WithRegistry(reg),
//		xipcheck.WithCache(xlru.Config{Size: 4096, TTL: time.Minute}),
//	)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
// # 返回约定
//
// 所有 Is* 返回 (literal, ok)。ok 为 true 时 literal 与输入逐字节相同，不做规范化；
// 格式非法与不属于类别不做区分，都返回 ("", false)。需要区分时先调用 [IsIPv4] / [IsIPv6]。
//
// 分类总是先校验再做包含判断，未通过文法校验的字符串不会进入前缀匹配。
//
// # public
//
// public 按补集定义：合法且不属于该地址族任一已注册类别。
// 注册自定义类别会相应缩小 public 的范围。
//
// # 任意网络
//
// [IsInNetIPv4] / [IsInNetIPv6] 判断地址是否属于任意网络字面量。CIDR 之外的旧写法
// （"216.240.32"、"a - b"、"a#hostmask"、"default" 等）仍被接受，但每次调用都会通过
// [Notifier] 发出一条 [Notice]，携带调用方的 file:line。默认 Notifier 写一条 WARN 日志。
// 网络字面量无法解析或地址族不符时返回 error。
//
// # 平台解析器
//
// [WithFastParse] 为 true 时（默认值来自环境变量 XIPCHECK_FAST_PARSE），构造时用探测向量
// 验证 net/netip 的行为，通过则使用它校验字面量，否则回退到手写文法。结论相同，只影响性能。
package xipcheck
