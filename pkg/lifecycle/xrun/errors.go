package xrun

import "errors"

var (
	// ErrNilFunc 表示传入 Go/GoWithName 的函数为 nil。
	ErrNilFunc = errors.New("xrun: nil function")

	// ErrNilService 表示传入 Group.Add 的 Service 为 nil。
	ErrNilService = errors.New("xrun: nil service")
)
