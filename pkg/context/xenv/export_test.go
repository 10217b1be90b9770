package xenv

// Reset 重置全局状态（仅用于测试）。
func Reset() {
	globalMu.Lock()
	initialized.Store(false)
	fastParse.Store(false)
	globalMu.Unlock()
}
