package xenv

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// ErrNotInitialized xenv 未初始化
	ErrNotInitialized = errors.New("xenv: not initialized, call Init() first")

	// ErrAlreadyInitialized 重复初始化
	ErrAlreadyInitialized = errors.New("xenv: already initialized")

	// ErrInvalidFastParse XIPCHECK_FAST_PARSE 的值不是合法布尔值
	ErrInvalidFastParse = errors.New("xenv: invalid XIPCHECK_FAST_PARSE value")
)

// EnvFastParse 是控制地址校验是否允许使用平台解析器的环境变量。
const EnvFastParse = "XIPCHECK_FAST_PARSE"

var (
	fastParse   atomic.Bool
	globalMu    sync.Mutex // 仅保护写路径
	initialized atomic.Bool
)

// Init 从环境变量 XIPCHECK_FAST_PARSE 初始化。
//
// 取值遵循 strconv.ParseBool（1/t/true/0/f/false 等，大小写不敏感，忽略首尾空白）：
//   - 未设置或为空: 允许平台解析器
//   - 合法布尔值: 按值设置
//   - 非法值: 回退为手写解析器，并返回包装了 ErrInvalidFastParse 的错误
//
// 即使返回非法值错误，状态也已初始化，后续调用返回 ErrAlreadyInitialized。
func Init() error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if initialized.Load() {
		return ErrAlreadyInitialized
	}

	enabled, err := Lookup()
	fastParse.Store(enabled)
	initialized.Store(true)
	return err
}

// MustInit 同 Init，失败时 panic。仅用于 main() 启动阶段。
func MustInit() {
	if err := Init(); err != nil {
		panic(err)
	}
}

// InitWith 使用指定值初始化，不读取环境变量。
func InitWith(enabled bool) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if initialized.Load() {
		return ErrAlreadyInitialized
	}
	fastParse.Store(enabled)
	initialized.Store(true)
	return nil
}

// Lookup 读取并解析环境变量，不修改全局状态。
// 非法值返回 (false, err)。
func Lookup() (bool, error) {
	v, ok := os.LookupEnv(EnvFastParse)
	if !ok || strings.TrimSpace(v) == "" {
		return true, nil
	}
	enabled, err := Parse(v)
	if err != nil {
		return false, err
	}
	return enabled, nil
}

// Parse 按 strconv.ParseBool 解析 s。
func Parse(s string) (bool, error) {
	enabled, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrInvalidFastParse, s)
	}
	return enabled, nil
}

// FastParse 报告是否允许使用平台解析器。
// 未初始化时先按 Init 的规则初始化一次，忽略非法值错误（结果为 false）。
func FastParse() bool {
	if !initialized.Load() {
		_ = Init() //nolint:errcheck // 非法值已回退为 false
	}
	return fastParse.Load()
}

// IsInitialized 返回是否已初始化
func IsInitialized() bool {
	return initialized.Load()
}

// RequireFastParse 返回已初始化的值，未初始化时返回 ErrNotInitialized。
func RequireFastParse() (bool, error) {
	if !initialized.Load() {
		return false, ErrNotInitialized
	}
	return fastParse.Load(), nil
}
