package xipclass

import "errors"

var (
	// ErrInvalidCategory 表示类别名为空或地址族未知。
	ErrInvalidCategory = errors.New("xipclass: invalid category")

	// ErrReservedName 表示类别名与派生类别 "public" 冲突。
	ErrReservedName = errors.New("xipclass: reserved category name")

	// ErrDuplicateCategory 表示同一地址族内类别重复注册。
	ErrDuplicateCategory = errors.New("xipclass: duplicate category")

	// ErrEmptyCategory 表示类别不含任何网络。
	ErrEmptyCategory = errors.New("xipclass: category has no networks")

	// ErrNonCIDREntry 表示类别表中的网络不是 "addr/len" 写法。
	ErrNonCIDREntry = errors.New("xipclass: category entry must be CIDR")

	// ErrFamilyMismatch 表示网络的地址族与类别所属地址族不一致。
	ErrFamilyMismatch = errors.New("xipclass: network family mismatch")
)
