package xipclass

import (
	"net/netip"

	"github.com/omeyang/xipcheck/pkg/util/xiplit"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Classifier 先按文法校验地址字面量，再在 [Registry] 中做包含判断。
// 构造后只读，可并发使用。
type Classifier struct {
	reg        *Registry
	validators xiplit.Validators
}

// NewClassifier 创建分类器。reg 为 nil 时使用 [Default]。
// validators 中未设置的地址族一律判为不匹配。
func NewClassifier(reg *Registry, validators xiplit.Validators) *Classifier {
	if reg == nil {
		reg = Default()
	}
	return &Classifier{reg: reg, validators: validators}
}

// Registry 返回分类器使用的注册表。
func (c *Classifier) Registry() *Registry { return c.reg }

// Validators 返回分类器使用的校验器。
func (c *Classifier) Validators() xiplit.Validators { return c.validators }

// Validate 用 family 的校验器校验 value，返回原样字面量与解析后的地址。
func (c *Classifier) Validate(family xnet.Version, value string) (string, netip.Addr, bool) {
	v := c.validators.For(family)
	if v == nil {
		return "", netip.Addr{}, false
	}
	lit, ok := v.Validate(value)
	if !ok {
		return "", netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(lit)
	if err != nil || xnet.AddrVersion(addr) != family {
		return "", netip.Addr{}, false
	}
	return lit, addr, true
}

// Is 报告 value 是否为 family 的合法字面量且属于类别 name。
// name 为 [Public] 时等价于 [Classifier.IsPublic]；未注册的类别一律不匹配。
func (c *Classifier) Is(family xnet.Version, name Category, value string) (string, bool) {
	if name == Public {
		return c.IsPublic(family, value)
	}
	if !c.reg.Has(family, name) {
		return "", false
	}
	lit, addr, ok := c.Validate(family, value)
	if !ok || !c.reg.Contains(family, name, addr) {
		return "", false
	}
	return lit, true
}

// IsPublic 报告 value 是否为 family 的合法字面量且不属于任何已注册类别。
func (c *Classifier) IsPublic(family xnet.Version, value string) (string, bool) {
	lit, addr, ok := c.Validate(family, value)
	if !ok || c.reg.Reserved(addr) {
		return "", false
	}
	return lit, true
}

// Categories 返回 value 所属的全部类别，按注册顺序。
// 字面量不合法或不属于任何类别时返回 nil。
func (c *Classifier) Categories(family xnet.Version, value string) []Category {
	_, addr, ok := c.Validate(family, value)
	if !ok {
		return nil
	}
	return c.reg.Lookup(addr)
}
