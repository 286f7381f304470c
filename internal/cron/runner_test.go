package cronrunner

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunner_Add_InvalidSpec(t *testing.T) {
	t.Parallel()

	r := New(context.Background())
	_, err := r.Add("not a schedule", func(context.Context) {})
	require.Error(t, err)

	// five-field specs are rejected because seconds are required
	_, err = r.Add("* * * * *", func(context.Context) {})
	require.Error(t, err)

	_, err = r.Add("@every 30s", func(context.Context) {})
	require.NoError(t, err)
}

func TestRunner_RunsJobs(t *testing.T) {
	t.Parallel()

	r := New(context.Background())

	var runs int64
	_, err := r.Add("@every 1s", ExpirySweep(func() []string {
		atomic.AddInt64(&runs, 1)
		return []string{"listing-1"}
	}))
	require.NoError(t, err)

	r.Start()
	require.Eventually(t, func() bool { return atomic.LoadInt64(&runs) > 0 }, 5*time.Second, 50*time.Millisecond)
	r.Stop()

	stopped := atomic.LoadInt64(&runs)
	time.Sleep(1500 * time.Millisecond)
	require.Equal(t, stopped, atomic.LoadInt64(&runs))
}

func TestRunner_SkipsAfterContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	r := New(ctx)

	var runs int64
	_, err := r.Add("@every 1s", func(context.Context) { atomic.AddInt64(&runs, 1) })
	require.NoError(t, err)

	cancel()
	r.Start()
	time.Sleep(1500 * time.Millisecond)
	r.Stop()

	require.Equal(t, int64(0), atomic.LoadInt64(&runs))
}

func TestNew_NilContext(t *testing.T) {
	t.Parallel()

	r := New(nil)
	require.NotNil(t, r.baseCtx)
}
