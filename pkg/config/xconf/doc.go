// Package xconf 基于 koanf 加载 YAML/JSON 配置，并支持文件热重载。
//
// # 加载
//
//	cfg, err := xconf.New("/etc/xipctl/config.yaml")
//	if err != nil {
//		return err
//	}
//	var s Settings
//	if err := cfg.Unmarshal("", &s); err != nil {
//		return err
//	}
//
// 格式按扩展名识别：.yaml/.yml 为 YAML，.json 为 JSON。
// [NewFromBytes] 需要显式指定格式，适合内嵌配置或测试。
//
// # 热重载
//
// [Watch] 使用 fsnotify 监视配置文件所在目录，变更经过防抖后调用 Reload，
// 然后把结果交给回调。解析失败时旧配置保持生效。
//
//	w, err := xconf.Watch(cfg, func(c xconf.Config, err error) { ... })
//	if err != nil {
//		return err
//	}
//	go w.Run(ctx)
//
// # 并发安全
//
// Client/Unmarshal 读取原子发布的当前实例，可与 Reload 并发调用。
package xconf
