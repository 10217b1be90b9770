package xipclass

import (
	"fmt"
	"net/netip"
	"slices"
	"sync"

	"go4.org/netipx"

	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Option 配置 [NewRegistry]。
type Option func(*registryOptions)

type registryOptions struct {
	extra []extraCategory
}

type extraCategory struct {
	family xnet.Version
	entry  Entry
}

// WithCategory 在内置表之后追加一个自定义类别。
// 自定义类别参与 public 补集计算，名称不能与表中已有类别或 "public" 重复。
func WithCategory(family xnet.Version, name Category, networks ...string) Option {
	return func(o *registryOptions) {
		o.extra = append(o.extra, extraCategory{
			family: family,
			entry:  Entry{Name: name, Networks: slices.Clone(networks)},
		})
	}
}

// category 是编译后的类别。
type category struct {
	name     Category
	networks []string
	set      *netipx.IPSet
}

// familyTable 是一个地址族编译后的全部类别与并集。
type familyTable struct {
	family xnet.Version
	order  []*category
	byName map[Category]*category
	union  *netipx.IPSet
}

// Registry 是构造后只读的类别注册表，可并发使用。
type Registry struct {
	v4 *familyTable
	v6 *familyTable
}

// NewRegistry 校验并编译类别表。
//
// 每个网络必须是 CIDR 写法且与所属地址族一致；类别名非空、不重复且不是 "public"。
// 任一条目不合法时返回包装了对应哨兵错误的 error。
func NewRegistry(tables Tables, opts ...Option) (*Registry, error) {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, e := range o.extra {
		if e.family != xnet.V4 && e.family != xnet.V6 {
			return nil, fmt.Errorf("%w: %q: unknown family %s", ErrInvalidCategory, e.entry.Name, e.family)
		}
	}
	v4 := append(cloneTable(tables.IPv4), extraFor(o.extra, xnet.V4)...)
	v6 := append(cloneTable(tables.IPv6), extraFor(o.extra, xnet.V6)...)

	ft4, err := compileFamily(xnet.V4, v4)
	if err != nil {
		return nil, err
	}
	ft6, err := compileFamily(xnet.V6, v6)
	if err != nil {
		return nil, err
	}
	return &Registry{v4: ft4, v6: ft6}, nil
}

// MustNewRegistry 与 NewRegistry 相同，失败时 panic。
func MustNewRegistry(tables Tables, opts ...Option) *Registry {
	r, err := NewRegistry(tables, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return MustNewRegistry(DefaultTables())
})

// Default 返回内置类别表的共享 Registry，首次调用时构建。
func Default() *Registry {
	return defaultRegistry()
}

func extraFor(extra []extraCategory, family xnet.Version) Table {
	var t Table
	for _, e := range extra {
		if e.family == family {
			t = append(t, e.entry)
		}
	}
	return t
}

func compileFamily(family xnet.Version, table Table) (*familyTable, error) {
	ft := &familyTable{
		family: family,
		order:  make([]*category, 0, len(table)),
		byName: make(map[Category]*category, len(table)),
	}
	var all netipx.IPSetBuilder
	for _, e := range table {
		c, err := compileCategory(family, e)
		if err != nil {
			return nil, err
		}
		if _, dup := ft.byName[c.name]; dup {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateCategory, family, c.name)
		}
		ft.order = append(ft.order, c)
		ft.byName[c.name] = c
		all.AddSet(c.set)
	}
	union, err := all.IPSet()
	if err != nil {
		return nil, fmt.Errorf("xipclass: build %s union: %w", family, err)
	}
	ft.union = union
	return ft, nil
}

func compileCategory(family xnet.Version, e Entry) (*category, error) {
	switch {
	case e.Name == "":
		return nil, fmt.Errorf("%w: empty name", ErrInvalidCategory)
	case e.Name == Public:
		return nil, fmt.Errorf("%w: %q", ErrReservedName, e.Name)
	case len(e.Networks) == 0:
		return nil, fmt.Errorf("%w: %s %q", ErrEmptyCategory, family, e.Name)
	}

	var b netipx.IPSetBuilder
	for _, lit := range e.Networks {
		n, err := xnet.ParseNetwork(lit)
		if err != nil {
			return nil, fmt.Errorf("xipclass: %s %q: %w", family, e.Name, err)
		}
		if n.Form != xnet.FormCIDR {
			return nil, fmt.Errorf("%w: %s %q: %q is %s", ErrNonCIDREntry, family, e.Name, lit, n.Form)
		}
		if n.Version() != family {
			return nil, fmt.Errorf("%w: %s %q: %q is %s", ErrFamilyMismatch, family, e.Name, lit, n.Version())
		}
		b.AddRange(n.Range)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("xipclass: %s %q: %w", family, e.Name, err)
	}
	return &category{name: e.Name, networks: slices.Clone(e.Networks), set: set}, nil
}

func (r *Registry) table(family xnet.Version) *familyTable {
	switch family {
	case xnet.V4:
		return r.v4
	case xnet.V6:
		return r.v6
	default:
		return nil
	}
}

// Categories 返回地址族内全部类别名，按注册顺序。
func (r *Registry) Categories(family xnet.Version) []Category {
	ft := r.table(family)
	if ft == nil {
		return nil
	}
	out := make([]Category, len(ft.order))
	for i, c := range ft.order {
		out[i] = c.name
	}
	return out
}

// Has 报告地址族内是否注册了 name。
func (r *Registry) Has(family xnet.Version, name Category) bool {
	ft := r.table(family)
	if ft == nil {
		return false
	}
	_, ok := ft.byName[name]
	return ok
}

// Networks 返回类别的网络字面量副本。
func (r *Registry) Networks(family xnet.Version, name Category) ([]string, bool) {
	ft := r.table(family)
	if ft == nil {
		return nil, false
	}
	c, ok := ft.byName[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(c.networks), true
}

// Contains 报告 addr 是否属于类别 name。addr 的地址族必须与 family 一致。
func (r *Registry) Contains(family xnet.Version, name Category, addr netip.Addr) bool {
	ft := r.table(family)
	if ft == nil || xnet.AddrVersion(addr) != family {
		return false
	}
	c, ok := ft.byName[name]
	if !ok {
		return false
	}
	return c.set.Contains(addr)
}

// Reserved 报告 addr 是否落在其地址族任一已注册类别中。
func (r *Registry) Reserved(addr netip.Addr) bool {
	ft := r.table(xnet.AddrVersion(addr))
	if ft == nil {
		return false
	}
	return ft.union.Contains(addr)
}

// Lookup 返回 addr 所属的全部类别，按注册顺序；重叠类别全部返回。
func (r *Registry) Lookup(addr netip.Addr) []Category {
	ft := r.table(xnet.AddrVersion(addr))
	if ft == nil || !ft.union.Contains(addr) {
		return nil
	}
	var out []Category
	for _, c := range ft.order {
		if c.set.Contains(addr) {
			out = append(out, c.name)
		}
	}
	return out
}

// Prefixes 返回地址族内全部保留前缀（并集），用于导出或诊断。
func (r *Registry) Prefixes(family xnet.Version) []netip.Prefix {
	ft := r.table(family)
	if ft == nil {
		return nil
	}
	return ft.union.Prefixes()
}
