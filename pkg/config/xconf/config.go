package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 定义配置接口。基础读取直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回当前生效的 koanf 实例。Reload 后返回新实例，旧实例保持不变。
	Client() *koanf.Koanf

	// Unmarshal 将 path 处的配置解码到 target，path 为空时解码整个配置。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件。解析失败时保留旧配置。
	// 从字节数据创建的 Config 返回 ErrNotReloadable。
	Reload() error

	// Path 返回配置文件路径，字节数据创建时为空。
	Path() string

	// Format 返回配置格式。
	Format() Format

	// Generation 返回成功加载的次数，首次加载为 1。
	Generation() uint64
}
