package xipclass

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omeyang/xipcheck/pkg/util/xiplit"
	"github.com/omeyang/xipcheck/pkg/util/xnet"
)

func classifiers() map[string]*Classifier {
	return map[string]*Classifier{
		"manual":   NewClassifier(nil, xiplit.Manual()),
		"platform": NewClassifier(Default(), xiplit.Select(true)),
	}
}

func TestClassifierIs(t *testing.T) {
	tests := []struct {
		family xnet.Version
		name   Category
		value  string
		want   bool
	}{
		{xnet.V4, Private, "10.0.0.1", true},
		{xnet.V4, Private, "010.0.0.1", false},
		{xnet.V4, Private, " 10.0.0.1", false},
		{xnet.V4, Private, "8.8.8.8", false},
		{xnet.V4, Loopback, "127.0.0.1", true},
		{xnet.V4, Teredo, "10.0.0.1", false},
		{xnet.V4, "nonexistent", "10.0.0.1", false},
		{xnet.V4, Public, "8.8.8.8", true},
		{xnet.V4, Public, "10.0.0.1", false},
		{xnet.V6, Teredo, "2001::1234", true},
		{xnet.V6, Special, "2001::1234", true},
		{xnet.V6, Private, "fc00::", true},
		{xnet.V6, Private, "fc00:::", false},
		{xnet.V6, IPv4Mapped, "::ffff:12.34.56.78", true},
		{xnet.V6, Loopback, "127.0.0.1", false},
		{xnet.V4, Loopback, "::1", false},
		{xnet.V0, Private, "10.0.0.1", false},
	}
	for kind, c := range classifiers() {
		for _, tt := range tests {
			t.Run(kind+"/"+string(tt.name)+"/"+tt.value, func(t *testing.T) {
				got, ok := c.Is(tt.family, tt.name, tt.value)
				assert.Equal(t, tt.want, ok)
				if tt.want {
					assert.Equal(t, tt.value, got)
				} else {
					assert.Empty(t, got)
				}
			})
		}
	}
}

// 对每个合法地址：public 当且仅当不属于任何已注册类别。
func TestComplementLaw(t *testing.T) {
	inputs := map[xnet.Version][]string{
		xnet.V4: {
			"0.0.0.0", "1.1.1.1", "8.8.8.8", "10.0.0.1", "100.63.255.255", "100.64.0.0",
			"127.0.0.1", "169.254.0.1", "172.15.255.255", "172.16.0.0", "192.0.0.1",
			"192.0.2.1", "192.88.99.255", "192.168.255.255", "198.18.0.0", "198.20.0.0",
			"203.0.113.9", "223.255.255.255", "224.0.0.1", "240.0.0.1", "255.255.255.255",
		},
		xnet.V6: {
			"::", "::1", "::2", "::ffff:1.2.3.4", "100::", "100:0:0:1::", "2001::",
			"2001:10::1", "2001:1ff:ffff::", "2001:200::", "2001:db8::1", "2400:cb00::1",
			"fc00::1", "fdff::1", "fe80::1", "fec0::1", "ff00::", "ffff::",
		},
	}
	for kind, c := range classifiers() {
		for family, values := range inputs {
			for _, v := range values {
				_, public := c.IsPublic(family, v)
				cats := c.Categories(family, v)
				assert.NotEqual(t, public, len(cats) > 0, "%s %s %s categories=%v", kind, family, v, cats)
			}
		}
	}
}

func TestIsPublicRejectsInvalid(t *testing.T) {
	c := NewClassifier(nil, xiplit.Manual())
	for _, v := range []string{"", "8.8.8", "08.8.8.8", "2001:::", "8.8.8.8 "} {
		_, ok := c.IsPublic(xnet.V4, v)
		assert.False(t, ok, v)
		_, ok = c.IsPublic(xnet.V6, v)
		assert.False(t, ok, v)
	}
}

func TestCategoriesInvalidInput(t *testing.T) {
	c := NewClassifier(nil, xiplit.Manual())
	assert.Nil(t, c.Categories(xnet.V4, "300.0.0.1"))
	assert.Nil(t, c.Categories(xnet.V6, "10.0.0.1"))
	assert.Nil(t, c.Categories(xnet.V4, "8.8.8.8"))
	assert.Equal(t, []Category{Special, Teredo}, c.Categories(xnet.V6, "2001::1234"))
}

func TestClassifierMissingValidator(t *testing.T) {
	c := NewClassifier(nil, xiplit.Validators{IPv4: xiplit.ManualIPv4()})
	_, ok := c.Is(xnet.V6, Loopback, "::1")
	assert.False(t, ok)

	_, ok = c.Is(xnet.V4, Loopback, "127.0.0.1")
	assert.True(t, ok)
	assert.Same(t, Default(), c.Registry())
	assert.NotNil(t, c.Validators().IPv4)
}

func TestClassifierCustomCategory(t *testing.T) {
	r := MustNewRegistry(DefaultTables(), WithCategory(xnet.V4, "dns", "8.8.8.0/24", "1.1.1.0/24"))
	c := NewClassifier(r, xiplit.Manual())

	_, ok := c.Is(xnet.V4, "dns", "1.1.1.1")
	assert.True(t, ok)
	_, ok = c.IsPublic(xnet.V4, "1.1.1.1")
	assert.False(t, ok)
	_, ok = c.IsPublic(xnet.V4, "9.9.9.9")
	assert.True(t, ok)
}
