package xrun

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/omeyang/xipcheck/pkg/observability/xlog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGroupEmpty(t *testing.T) {
	g, _ := NewGroup(context.Background())
	assert.NoError(t, g.Wait())
}

func TestGroupServiceError(t *testing.T) {
	want := errors.New("boom")
	var stopped atomic.Bool

	g, ctx := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		stopped.Store(true)
		return ctx.Err()
	})
	g.Go(func(context.Context) error { return want })

	assert.ErrorIs(t, g.Wait(), want)
	assert.True(t, stopped.Load())
	assert.Error(t, ctx.Err())
}

func TestGroupCancelNilIsCleanExit(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	g.Go(func(context.Context) error {
		g.Cancel(nil)
		return nil
	})
	assert.NoError(t, g.Wait())
}

func TestGroupCancelCauseIsReturned(t *testing.T) {
	cause := errors.New("reload failed")
	g, _ := NewGroup(context.Background())
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return nil
	})
	g.Cancel(cause)
	assert.ErrorIs(t, g.Wait(), cause)
}

func TestGroupParentCanceled(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	g, _ := NewGroup(parent)
	g.Go(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})
	cancel()
	assert.NoError(t, g.Wait())
}

func TestGroupInternalCanceledIsKept(t *testing.T) {
	g, _ := NewGroup(context.Background())
	g.Go(func(context.Context) error { return context.Canceled })
	assert.ErrorIs(t, g.Wait(), context.Canceled)
}

func TestGroupNilInputs(t *testing.T) {
	g, _ := NewGroup(nil, nil, WithLogger(nil), WithName("")) //nolint:staticcheck // nil ctx 归一化
	g.Go(nil)
	assert.ErrorIs(t, g.Wait(), ErrNilFunc)

	g, _ = NewGroup(context.Background())
	g.GoWithName("nil", nil)
	assert.ErrorIs(t, g.Wait(), ErrNilFunc)

	g, _ = NewGroup(context.Background())
	g.Add("nil", nil)
	assert.ErrorIs(t, g.Wait(), ErrNilService)
}

func TestGroupNamedServiceLogs(t *testing.T) {
	var buf bytes.Buffer
	logger, cleanup, err := xlog.New().SetOutput(&buf).SetLevel(xlog.LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	g, _ := NewGroup(context.Background(), WithName("filter"), WithLogger(logger))
	g.Add("ok", ServiceFunc(func(context.Context) error { return nil }))
	g.GoWithName("bad", func(context.Context) error { return errors.New("broken pipe") })
	require.Error(t, g.Wait())

	out := buf.String()
	assert.Contains(t, out, "group=filter")
	assert.Contains(t, out, "service=ok")
	assert.Contains(t, out, "service stopped")
	assert.Contains(t, out, "service exited with error")
	assert.Contains(t, out, "broken pipe")
	assert.NotNil(t, g.Context())
}
