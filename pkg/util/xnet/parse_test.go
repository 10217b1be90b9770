package xnet

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{name: "single IP", input: "192.168.1.1", wantStart: "192.168.1.1", wantEnd: "192.168.1.1"},
		{name: "CIDR /24", input: "192.168.1.0/24", wantStart: "192.168.1.0", wantEnd: "192.168.1.255"},
		{name: "CIDR host bits cleared", input: "192.168.1.77/24", wantStart: "192.168.1.0", wantEnd: "192.168.1.255"},
		{name: "CIDR /32", input: "10.0.0.1/32", wantStart: "10.0.0.1", wantEnd: "10.0.0.1"},
		{name: "mask notation", input: "192.168.1.0/255.255.255.0", wantStart: "192.168.1.0", wantEnd: "192.168.1.255"},
		{name: "explicit range", input: "10.0.0.1-10.0.0.100", wantStart: "10.0.0.1", wantEnd: "10.0.0.100"},
		{name: "explicit range with spaces", input: "10.0.0.1 - 10.0.0.100", wantStart: "10.0.0.1", wantEnd: "10.0.0.100"},
		{name: "IPv6 CIDR", input: "2001:db8::/32", wantStart: "2001:db8::", wantEnd: "2001:db8:ffff:ffff:ffff:ffff:ffff:ffff"},
		{name: "IPv6 range", input: "::1-::ff", wantStart: "::1", wantEnd: "::ff"},
		{name: "invalid", input: "invalid", wantErr: true},
		{name: "invalid range start", input: "invalid-10.0.0.1", wantErr: true},
		{name: "invalid range end", input: "10.0.0.1-invalid", wantErr: true},
		{name: "inverted range", input: "10.0.0.100-10.0.0.1", wantErr: true},
		{name: "mixed families", input: "192.168.1.1-2001:db8::1", wantErr: true},
		{name: "invalid CIDR", input: "192.168.1.0/99", wantErr: true},
		{name: "non-contiguous mask", input: "192.168.1.0/255.0.255.0", wantErr: true},
		{name: "IPv6 with IPv4 mask", input: "2001:db8::1/255.255.255.0", wantErr: true},
		// 掩码写法只接受纯 IPv4，IPv4-mapped IPv6 属于另一个地址族
		{name: "mapped address with mask", input: "::ffff:192.168.1.0/255.255.255.0", wantErr: true},
		{name: "zone", input: "fe80::1%eth0", wantErr: true},
		{name: "zone in CIDR", input: "fe80::1%eth0/64", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRange(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, r.From().String())
			assert.Equal(t, tt.wantEnd, r.To().String())
		})
	}
}

func TestParseRangeWhitespaceAroundSlash(t *testing.T) {
	for _, in := range []string{"192.168.1.0 / 24", "  192.168.1.0/24  ", "192.168.1.0 / 255.255.255.0"} {
		t.Run(in, func(t *testing.T) {
			r, err := ParseRange(in)
			require.NoError(t, err)
			assert.Equal(t, "192.168.1.0", r.From().String())
			assert.Equal(t, "192.168.1.255", r.To().String())
		})
	}
}

func TestParseRanges(t *testing.T) {
	set, err := ParseRanges([]string{
		"10.0.0.1-10.0.0.100",
		"192.168.1.0/24",
		"172.16.0.1",
	})
	require.NoError(t, err)
	assert.Len(t, set.Ranges(), 3)

	assert.True(t, set.Contains(netip.MustParseAddr("10.0.0.1")))
	assert.True(t, set.Contains(netip.MustParseAddr("10.0.0.100")))
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.0.101")))
	assert.True(t, set.Contains(netip.MustParseAddr("192.168.1.128")))
	assert.True(t, set.Contains(netip.MustParseAddr("172.16.0.1")))
	assert.False(t, set.Contains(netip.MustParseAddr("8.8.8.8")))

	_, err = ParseRanges([]string{"invalid"})
	assert.ErrorIs(t, err, ErrInvalidNetwork)
}

func TestParseRangesAcceptsLegacyForms(t *testing.T) {
	set, err := ParseRanges([]string{"216.240.32", "10.0.0.0#0.0.0.255"})
	require.NoError(t, err)
	assert.True(t, set.Contains(netip.MustParseAddr("216.240.32.200")))
	assert.True(t, set.Contains(netip.MustParseAddr("10.0.0.255")))
	assert.False(t, set.Contains(netip.MustParseAddr("10.0.1.0")))
}

func TestParseRangesMergesOverlapping(t *testing.T) {
	set, err := ParseRanges([]string{
		"10.0.0.50-10.0.0.150",
		"10.0.0.1-10.0.0.100",
		"10.0.0.200-10.0.0.255",
		"10.0.0.151-10.0.0.199", // 与邻居相邻
	})
	require.NoError(t, err)

	ranges := set.Ranges()
	require.Len(t, ranges, 1, "all ranges should merge into one")
	assert.Equal(t, "10.0.0.1", ranges[0].From().String())
	assert.Equal(t, "10.0.0.255", ranges[0].To().String())
}

func TestParseRangesEmpty(t *testing.T) {
	set, err := ParseRanges(nil)
	require.NoError(t, err)
	assert.Empty(t, set.Ranges())

	set, err = ParseRanges([]string{})
	require.NoError(t, err)
	assert.Empty(t, set.Ranges())
}
