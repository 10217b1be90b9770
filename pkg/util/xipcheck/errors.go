package xipcheck

import "errors"

// ErrFamilyMismatch 表示 IsInNetIPv4/IsInNetIPv6 的网络字面量属于另一个地址族。
var ErrFamilyMismatch = errors.New("xipcheck: network belongs to another address family")
