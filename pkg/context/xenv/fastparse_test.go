package xenv_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xipcheck/pkg/context/xenv"
)

func reset(t *testing.T) {
	t.Helper()
	xenv.Reset()
	t.Cleanup(xenv.Reset)
}

func TestInitUnsetDefaultsToTrue(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "")

	require.NoError(t, xenv.Init())
	assert.True(t, xenv.FastParse())
	assert.True(t, xenv.IsInitialized())
}

func TestInitValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{" TRUE ", true},
		{"0", false},
		{"false", false},
		{"F", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			reset(t)
			t.Setenv(xenv.EnvFastParse, tt.value)

			require.NoError(t, xenv.Init())
			got, err := xenv.RequireFastParse()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitInvalidFallsBackToManual(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "sometimes")

	err := xenv.Init()
	assert.ErrorIs(t, err, xenv.ErrInvalidFastParse)
	assert.False(t, xenv.FastParse())
	assert.ErrorIs(t, xenv.Init(), xenv.ErrAlreadyInitialized)
}

func TestFastParseLazyInit(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "no")

	// "no" 不是 strconv.ParseBool 的合法值
	assert.False(t, xenv.FastParse())
	assert.True(t, xenv.IsInitialized())
}

func TestInitWith(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "true")

	require.NoError(t, xenv.InitWith(false))
	assert.False(t, xenv.FastParse())
	assert.ErrorIs(t, xenv.InitWith(true), xenv.ErrAlreadyInitialized)
}

func TestRequireFastParseNotInitialized(t *testing.T) {
	reset(t)
	_, err := xenv.RequireFastParse()
	assert.ErrorIs(t, err, xenv.ErrNotInitialized)
}

func TestMustInitPanics(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "maybe")
	assert.Panics(t, xenv.MustInit)
}

func TestLookupDoesNotInitialize(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "0")

	enabled, err := xenv.Lookup()
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, xenv.IsInitialized())
}

func TestParse(t *testing.T) {
	v, err := xenv.Parse("T")
	require.NoError(t, err)
	assert.True(t, v)

	_, err = xenv.Parse("")
	assert.ErrorIs(t, err, xenv.ErrInvalidFastParse)
}

func TestConcurrentFastParse(t *testing.T) {
	reset(t)
	t.Setenv(xenv.EnvFastParse, "1")

	var wg sync.WaitGroup
	results := make([]bool, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = xenv.FastParse()
		}()
	}
	wg.Wait()
	for _, r := range results {
		assert.True(t, r)
	}
}
