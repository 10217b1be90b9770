// Package xrun 协调一组长时间运行任务的启动、取消与错误传播。
//
// Group 在 errgroup 之上补充了取消原因（context.Cause）的保留与命名任务的日志。
// xipctl 用它把配置热更新的 watcher 和流式过滤放在同一个生命周期里：
// 输入读完后 Cancel(nil) 停止 watcher，Wait 返回 nil。
package xrun
