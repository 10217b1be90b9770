package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/omeyang/xipcheck/pkg/config/xconf"
	"github.com/omeyang/xipcheck/pkg/observability/xlog"
	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xlru"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// defaultConcurrency 是 batch 的默认并发度。
const defaultConcurrency = 8

// Settings 是 xipctl 的配置文件结构。
//
//	fast_parse: true
//	concurrency: 16
//	log:
//	  level: info
//	  format: json
//	  file: /var/log/xipctl.log
//	cache:
//	  size: 4096
//	  ttl: 5m
//	categories:
//	  ipv4:
//	    office: [203.0.114.0/24]
type Settings struct {
	// FastParse 为 nil 时取环境变量 XIPCHECK_FAST_PARSE。
	FastParse   *bool            `koanf:"fast_parse"`
	Concurrency int              `koanf:"concurrency"`
	Log         LogSettings      `koanf:"log"`
	Cache       CacheSettings    `koanf:"cache"`
	Categories  CategorySettings `koanf:"categories"`
}

// LogSettings 日志配置。File 非空时按大小轮转写入文件。
type LogSettings struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// CacheSettings Classify 缓存配置，Size 为 0 表示关闭。
type CacheSettings struct {
	Size int           `koanf:"size"`
	TTL  time.Duration `koanf:"ttl"`
}

// CategorySettings 追加到内置表之后的自定义类别，值为 CIDR 列表。
type CategorySettings struct {
	IPv4 map[string][]string `koanf:"ipv4"`
	IPv6 map[string][]string `koanf:"ipv6"`
}

func defaultSettings() Settings {
	return Settings{
		Concurrency: defaultConcurrency,
		Log:         LogSettings{Level: "warn", Format: "text"},
	}
}

// loadSettings 读取配置文件。path 为空时返回默认配置与 nil Config。
func loadSettings(path string) (Settings, xconf.Config, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil, nil
	}
	cfg, err := xconf.New(path)
	if err != nil {
		return s, nil, err
	}
	s, err = decodeSettings(cfg)
	if err != nil {
		return s, nil, err
	}
	return s, cfg, nil
}

// decodeSettings 在默认值之上解码 cfg 的当前内容。
func decodeSettings(cfg xconf.Config) (Settings, error) {
	s := defaultSettings()
	if err := cfg.Unmarshal("", &s); err != nil {
		return s, err
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", s.Concurrency)
	}
	if s.Cache.Size != 0 {
		if err := s.cacheConfig().Validate(); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	if _, err := s.registry(); err != nil {
		return err
	}
	return nil
}

func (s Settings) cacheConfig() xlru.Config {
	return xlru.Config{Size: s.Cache.Size, TTL: s.Cache.TTL}
}

// registry 构建类别注册表：内置表加自定义类别，自定义类别按名称排序追加。
func (s Settings) registry() (*xipclass.Registry, error) {
	if len(s.Categories.IPv4) == 0 && len(s.Categories.IPv6) == 0 {
		return xipclass.Default(), nil
	}
	var opts []xipclass.Option
	opts = appendCategories(opts, xnet.V4, s.Categories.IPv4)
	opts = appendCategories(opts, xnet.V6, s.Categories.IPv6)
	return xipclass.NewRegistry(xipclass.DefaultTables(), opts...)
}

func appendCategories(opts []xipclass.Option, family xnet.Version, categories map[string][]string) []xipclass.Option {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		opts = append(opts, xipclass.WithCategory(family, xipclass.Category(name), categories[name]...))
	}
	return opts
}

// rotation 返回日志轮转参数，零值由 xlog 填充默认值。
func (l LogSettings) rotation() xlog.Rotation {
	return xlog.Rotation{
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}
