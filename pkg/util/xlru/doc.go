// Package xlru 提供基于 hashicorp/golang-lru/v2/expirable 的泛型 TTL LRU 缓存。
//
//	cache, err := xlru.New[string, Report](xlru.Config{Size: 4096, TTL: 5 * time.Minute})
//	if err != nil {
//		return err
//	}
//	defer cache.Close()
//
// 所有方法并发安全。TTL > 0 时底层会启动一个清理 goroutine，
// 必须调用 Close 释放。
package xlru
