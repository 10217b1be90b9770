package xlru

import (
	"reflect"
	"sync"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxSize 缓存最大条目数上限。
const maxSize = 1 << 24

// Config 定义缓存配置。
type Config struct {
	// Size 缓存最大条目数，必须在 (0, 16777216] 内。
	Size int

	// TTL 条目过期时间，0 表示永不过期，不允许负值。
	TTL time.Duration
}

// Validate 校验配置。
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return ErrInvalidSize
	case c.Size > maxSize:
		return ErrSizeExceedsMax
	case c.TTL < 0:
		return ErrInvalidTTL
	}
	return nil
}

// Stats 命中统计。
type Stats struct {
	Hits   uint64
	Misses uint64
}

// Cache 是带 TTL 的并发安全 LRU 缓存，必须通过 [New] 创建。
// Close 后读操作返回零值，写操作静默忽略。
type Cache[K comparable, V any] struct {
	lru       *expirable.LRU[K, V]
	hits      atomic.Uint64
	misses    atomic.Uint64
	closed    atomic.Bool
	closeOnce sync.Once
}

// New 创建缓存。配置非法时返回 ErrInvalidSize / ErrSizeExceedsMax / ErrInvalidTTL。
func New[K comparable, V any](cfg Config) (*Cache[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Cache[K, V]{
		lru: expirable.NewLRU[K, V](cfg.Size, nil, cfg.TTL),
	}, nil
}

// Get 获取缓存值并计入命中统计。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	if c.closed.Load() {
		return value, false
	}
	value, ok = c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return value, ok
}

// Set 设置缓存值，返回是否触发了 LRU 淘汰。
func (c *Cache[K, V]) Set(key K, value V) bool {
	if c.closed.Load() {
		return false
	}
	return c.lru.Add(key, value)
}

// Purge 清空所有条目。
func (c *Cache[K, V]) Purge() {
	if c.closed.Load() {
		return
	}
	c.lru.Purge()
}

// Len 返回当前条目数，可能包含已过期但尚未清理的条目。
func (c *Cache[K, V]) Len() int {
	if c.closed.Load() {
		return 0
	}
	return c.lru.Len()
}

// Stats 返回命中统计快照。
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

// Close 清空缓存并停止 TTL 清理 goroutine，可重复调用。
func (c *Cache[K, V]) Close() {
	c.closed.Store(true)
	c.closeOnce.Do(func() {
		c.lru.Purge()
		stopCleanupGoroutine(c.lru)
	})
}

// stopCleanupGoroutine 关闭 expirable.LRU 内部的 done 通道，使清理 goroutine 退出。
//
// golang-lru/v2@v2.0.7 在 TTL > 0 时启动清理 goroutine，但没有公开的 Close。
// 这里通过 reflect + unsafe 访问未导出字段 "done"（chan struct{}）。
// 字段名或类型变化、通道已关闭时返回 false。升级依赖后需确认上游是否已提供 Close。
func stopCleanupGoroutine(lru any) (stopped bool) {
	defer func() {
		if r := recover(); r != nil {
			stopped = false
		}
	}()

	v := reflect.ValueOf(lru)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	doneField := v.Elem().FieldByName("done")
	if !doneField.IsValid() || doneField.IsNil() {
		return false
	}
	if doneField.Type() != reflect.TypeOf(make(chan struct{})) {
		return false
	}

	doneCh := *(*chan struct{})(unsafe.Pointer(doneField.UnsafeAddr())) //nolint:gosec // 访问上游未导出字段
	close(doneCh)
	return true
}
