package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNetwork(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantForm Form
		want     string
	}{
		{"cidr", "216.240.32.0/24", FormCIDR, "216.240.32.0/24"},
		{"cidr host bits", "216.240.32.9/24", FormCIDR, "216.240.32.0/24"},
		{"cidr short address", "10/8", FormCIDR, "10.0.0.0/8"},
		{"cidr three octets", "216.240.32/24", FormCIDR, "216.240.32.0/24"},
		{"cidr ipv6", "2001:db8::/32", FormCIDR, "2001:db8::/32"},
		{"slash mask", "216.240.32.0/255.255.255.0", FormMask, "216.240.32.0/24"},
		{"hostmask", "216.240.32.0#0.0.0.31", FormHostmask, "216.240.32.0/27"},
		{"colon mask", "216.240.32.0:255.255.255.0", FormColonMask, "216.240.32.0/24"},
		{"space mask", "216.240.32.0 255.255.255.0", FormSpaceMask, "216.240.32.0/24"},
		{"range", "216.240.32.0 - 216.240.32.255", FormRange, "216.240.32.0/24"},
		{"unaligned range", "10.0.0.1-10.0.0.4", FormRange, "10.0.0.1-10.0.0.4"},
		{"implicit /24", "216.240.32", FormImplicit, "216.240.32.0/24"},
		{"implicit /16", "216.240", FormImplicit, "216.240.0.0/16"},
		{"implicit /8", "216", FormImplicit, "216.0.0.0/8"},
		{"single", "216.240.32.4", FormSingle, "216.240.32.4/32"},
		{"single ipv6", "2001:db8::1", FormSingle, "2001:db8::1/128"},
		{"default", "default", FormDefault, "0.0.0.0/0"},
		{"any", "ANY", FormDefault, "0.0.0.0/0"},
		{"surrounding space", "  10.0.0.0/8 ", FormCIDR, "10.0.0.0/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNetwork(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantForm, n.Form)
			assert.Equal(t, tt.want, n.String())
		})
	}
}

func TestParseNetworkErrors(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"nonsense",
		"216.240.32.0/33",
		"216.240.32.0/255.0.255.0",
		"216.240.32.0#0.0.255.0",
		"216.240.32.0#garbage",
		"216.240.32.0:255.0.255.0",
		"216.240.32.0 255.0.255.0",
		"216.240.32.9-216.240.32.1",
		"a-b",
		"216.240.032",
		"256.1",
		"1.2.3.4.5",
		"fe80::1%eth0",
		"fe80::/10#0.0.0.1",
		"2001:db8::/255.255.255.0",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNetwork(in)
			assert.ErrorIs(t, err, ErrInvalidNetwork)
		})
	}
}

func TestParseNetworkMaskErrorsAreTyped(t *testing.T) {
	_, err := ParseNetwork("216.240.32.0/255.0.255.0")
	assert.ErrorIs(t, err, ErrInvalidMask)

	_, err = ParseNetwork("216.240.32.0#0.0.255.0")
	assert.ErrorIs(t, err, ErrInvalidMask)
}

func TestFormLegacy(t *testing.T) {
	assert.False(t, FormCIDR.Legacy())
	assert.False(t, FormMask.Legacy())
	assert.False(t, FormInvalid.Legacy())
	for _, f := range []Form{FormHostmask, FormColonMask, FormSpaceMask, FormRange, FormImplicit, FormSingle, FormDefault} {
		assert.True(t, f.Legacy(), f.String())
	}
}

func TestFormString(t *testing.T) {
	assert.Equal(t, "cidr", FormCIDR.String())
	assert.Equal(t, "implicit", FormImplicit.String())
	assert.Equal(t, "invalid", Form(200).String())
}

func TestNetworkContains(t *testing.T) {
	n := MustParseNetwork("216.240.32")

	assert.True(t, n.Contains(netip.MustParseAddr("216.240.32.1")))
	assert.True(t, n.Contains(netip.MustParseAddr("216.240.32.255")))
	assert.False(t, n.Contains(netip.MustParseAddr("216.240.33.0")))
	assert.False(t, n.Contains(netip.MustParseAddr("::ffff:216.240.32.1")), "mapped address is another family")
	assert.False(t, n.Contains(netip.Addr{}))
	assert.False(t, Network{}.Contains(netip.MustParseAddr("216.240.32.1")))

	v6 := MustParseNetwork("2001::/32")
	assert.True(t, v6.Contains(netip.MustParseAddr("2001::1234")))
	assert.False(t, v6.Contains(netip.MustParseAddr("2001:1::1")))
	assert.False(t, v6.Contains(netip.MustParseAddr("32.1.0.0")))
}

func TestNetworkMetadata(t *testing.T) {
	n, err := ParseNetwork(" 10.0.0.1 - 10.0.0.4 ")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1 - 10.0.0.4", n.Literal)
	assert.Equal(t, V4, n.Version())
	assert.Len(t, n.Prefixes(), 3)

	assert.Equal(t, V6, MustParseNetwork("fe80::/10").Version())
	assert.Equal(t, "", Network{}.String())
}

func TestMustParseNetworkPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseNetwork("bogus") })
}
