// Package context 提供运行环境相关的子包。
//
// 子包列表：
//   - xenv: 环境变量开关，控制平台解析器快速路径
package context
