package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidRange 表示无效的 IP 范围格式。
	ErrInvalidRange = errors.New("xnet: invalid IP range")

	// ErrInvalidNetwork 表示无法解析的网络字面量。
	ErrInvalidNetwork = errors.New("xnet: invalid network literal")

	// ErrInvalidMask 表示非连续或格式错误的掩码。
	ErrInvalidMask = errors.New("xnet: invalid network mask")
)
