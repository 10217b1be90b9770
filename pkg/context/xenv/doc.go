// Package xenv 提供进程级环境配置。
//
// 当前只有一个开关：XIPCHECK_FAST_PARSE，决定地址字面量校验能否使用
// net/netip 平台解析器（启动时仍需通过探测向量）。未设置时默认允许。
//
//	func main() {
//		if err := xenv.Init(); err != nil {
//			log.Printf("fast parse disabled: %v", err)
//		}
//		checker, err := xipcheck.New(xipcheck.WithFastParse(xenv.FastParse()))
//		...
//	}
//
// 初始化后值不再变化，读取无锁。
package xenv
