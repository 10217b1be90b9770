// Package xmetrics 提供地址校验的可观测性接口（metrics + tracing）。
//
// 两个最小接口：
//   - [Recorder]：每次校验/分类调用记录一个 [Event]，热路径只做计数
//   - [Observer]：批量处理等粗粒度操作的跨度，记录耗时并产生 trace span
//
// 默认实现 [NewOTel] 基于 OpenTelemetry，同时实现两个接口；
// 未配置时使用 [NoopRecorder] / [NoopObserver]。
//
//	otel, _ := xmetrics.NewOTel()
//	ctx, span := xmetrics.Start(ctx, otel, xmetrics.SpanOptions{
//		Component: "xipctl",
//		Operation: "batch",
//	})
//	defer span.End(xmetrics.Result{Err: err})
//
// # 指标命名
//
//   - xipcheck.check.total      属性 operation / family / matched
//   - xipcheck.operation.total     属性 component / operation / status
//   - xipcheck.operation.duration  同上，单位秒
package xmetrics
