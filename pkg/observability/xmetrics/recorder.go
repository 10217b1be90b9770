package xmetrics

import "context"

// Event 描述一次校验或分类调用。
type Event struct {
	// Operation 是调用的操作名，如 "is_private_ipv4"、"classify"。
	Operation string
	// Family 是 "ipv4"、"ipv6"，地址族未知时为空。
	Family string
	// Matched 报告调用是否给出了匹配结论。
	Matched bool
}

// Recorder 记录校验事件。实现必须并发安全且足够轻量。
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

// NoopRecorder 是空实现。
type NoopRecorder struct{}

// Record 不做任何处理。
func (NoopRecorder) Record(context.Context, Event) {}
