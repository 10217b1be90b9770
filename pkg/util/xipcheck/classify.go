package xipcheck

import (
	"encoding/json"
	"slices"

	"github.com/omeyang/xipcheck/pkg/util/xipclass"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

// Report 是对单个输入的完整分类结果。
type Report struct {
	// Input 是原始输入。
	Input string `json:"input"`
	// Literal 是校验通过的字面量，不合法时为空。
	Literal string `json:"literal,omitempty"`
	// Family 是地址族，不合法时为 V0。
	Family xnet.Version `json:"-"`
	// Valid 表示输入是合法的 IPv4 或 IPv6 字面量。
	Valid bool `json:"valid"`
	// Public 表示地址合法且不属于任何已注册类别。
	Public bool `json:"public"`
	// Categories 是地址所属的全部类别，按注册顺序。
	Categories []xipclass.Category `json:"categories,omitempty"`
}

// FamilyName 返回 "ipv4"、"ipv6"，不合法时为空串。
func (r Report) FamilyName() string { return familyLabel(r.Family) }

// MarshalJSON 将 Family 输出为 "ipv4"/"ipv6"。
func (r Report) MarshalJSON() ([]byte, error) {
	type report Report
	return json.Marshal(struct {
		report
		Family string `json:"family,omitempty"`
	}{report(r), r.FamilyName()})
}

// Classify 校验 value 并列出其所属类别。
// 启用缓存时结果按原始输入记忆，返回值是缓存条目的副本。
func (c *Checker) Classify(value string) Report {
	if c.cache != nil {
		if r, ok := c.cache.Get(value); ok {
			c.record("classify", r.Family, r.Valid)
			return r.clone()
		}
	}

	r := c.classify(value)
	if c.cache != nil {
		c.cache.Set(value, r.clone())
	}
	c.record("classify", r.Family, r.Valid)
	return r
}

func (c *Checker) classify(value string) Report {
	r := Report{Input: value}
	lit, family, ok := c.validators.Validate(value)
	if !ok {
		return r
	}
	r.Literal = lit
	r.Family = family
	r.Valid = true
	r.Categories = c.classifier.Categories(family, lit)
	r.Public = len(r.Categories) == 0
	return r
}

func (r Report) clone() Report {
	r.Categories = slices.Clone(r.Categories)
	return r
}
