package hooks

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestUseQueryDeduplicatesInFlightFetches(t *testing.T) {
	t.Parallel()

	exec := newChanExecutor()
	rt := NewRuntime(WithExecutor(exec))
	renders := 0
	rt.SetRenderCallback(func() { renders++ })

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]string, error) {
		calls.Add(1)
		<-release
		return []string{"cron", "segfault"}, nil
	}

	component := func(c *Cursor) Query[[]string] {
		return UseQuery(c, "products", fetch)
	}

	first := render(rt, NewID(), component)
	second := render(rt, NewID(), component)
	assert.True(t, first.Loading)
	assert.True(t, second.Fetching)
	assert.Equal(t, 1, rt.Queries().Fetches("products"))

	close(release)
	exec.runNext(t)

	got := render(rt, NewID(), component)
	require.True(t, got.HasData)
	assert.False(t, got.Loading)
	assert.Equal(t, []string{"cron", "segfault"}, got.Data)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, 1, renders)
}

func TestUseQueryRefetchesLazilyWhenStale(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rt := NewRuntime(WithClock(clock.Now))
	rt.SetRenderCallback(func() {})

	version := 0
	fetch := func(ctx context.Context) (int, error) {
		version++
		return version, nil
	}
	id := NewID()
	component := func(c *Cursor) Query[int] {
		return UseQuery(c, "cart", fetch)
	}

	assert.Equal(t, 1, render(rt, id, component).Data)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 1, render(rt, id, component).Data)
	assert.Equal(t, 1, rt.Queries().Fetches("cart"))

	clock.Advance(DefaultStaleTime)
	assert.Equal(t, 2, render(rt, id, component).Data)
	assert.Equal(t, 2, rt.Queries().Fetches("cart"))
}

func TestUseQueryStoresFetchErrors(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	rt.SetRenderCallback(func() {})

	boom := errors.New("connection refused")
	var reported error
	fetch := func(ctx context.Context) (int, error) { return 0, boom }
	id := NewID()
	component := func(c *Cursor) Query[int] {
		return UseQueryWith(c, "profile", fetch, QueryOptions[int]{
			OnError: func(err error) { reported = err },
		})
	}

	got := render(rt, id, component)
	require.Error(t, got.Err)
	assert.False(t, got.Loading)
	assert.ErrorIs(t, got.Err, boom)
	var fetchErr *cuierrors.FetchError
	assert.ErrorAs(t, got.Err, &fetchErr)
	assert.Equal(t, "profile", fetchErr.Key)
	assert.Equal(t, got.Err, reported)

	render(rt, id, component)
	assert.Equal(t, 1, rt.Queries().Fetches("profile"), "failures are not retried until stale")
}

func TestUseQueryDisabledDoesNotFetch(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	fetch := func(ctx context.Context) (int, error) { return 1, nil }
	got := render(rt, NewID(), func(c *Cursor) Query[int] {
		return UseQueryWith(c, "addresses", fetch, QueryOptions[int]{Disabled: true})
	})
	assert.True(t, got.Loading)
	assert.Zero(t, rt.Queries().Fetches("addresses"))
}

func TestInvalidateAndSetQueryData(t *testing.T) {
	t.Parallel()

	rt := NewRuntime()
	renders := 0
	rt.SetRenderCallback(func() { renders++ })

	version := 0
	fetch := func(ctx context.Context) (int, error) {
		version++
		return version, nil
	}
	id := NewID()
	component := func(c *Cursor) Query[int] {
		return UseQuery(c, "cart", fetch)
	}

	require.Equal(t, 1, render(rt, id, component).Data)

	rt.Queries().SetQueryData("cart", 99)
	assert.Equal(t, 99, render(rt, id, component).Data)

	rt.Queries().Invalidate("cart")
	assert.Equal(t, 2, render(rt, id, component).Data)

	data, ok := QueryDataAs[int](rt.Queries(), "cart")
	require.True(t, ok)
	assert.Equal(t, 2, data)
	assert.Equal(t, 4, renders)
}

func TestMutationRollsBackOptimisticUpdateOnFailure(t *testing.T) {
	t.Parallel()

	exec := newChanExecutor()
	rt := NewRuntime(WithExecutor(exec))
	rt.SetRenderCallback(func() {})
	q := rt.Queries()
	q.SetQueryData("cart", 1)

	id := NewID()
	component := func(c *Cursor) Mutation[int, int] {
		var previous int
		return UseMutation(c, "updateCart", func(ctx context.Context, qty int) (int, error) {
			return 0, errors.New("payment service unavailable")
		}, MutationOptions[int, int]{
			OptimisticUpdate: func(qty int) {
				previous, _ = QueryDataAs[int](q, "cart")
				q.SetQueryData("cart", qty)
			},
			Rollback: func() { q.SetQueryData("cart", previous) },
		})
	}

	m := render(rt, id, component)
	m.Mutate(5)

	optimistic, _ := QueryDataAs[int](q, "cart")
	assert.Equal(t, 5, optimistic)
	assert.True(t, render(rt, id, component).Loading)

	exec.runNext(t)

	restored, _ := QueryDataAs[int](q, "cart")
	assert.Equal(t, 1, restored)
	after := render(rt, id, component)
	assert.False(t, after.Loading)
	assert.Error(t, after.Err)
}

func TestMutationMostRecentWins(t *testing.T) {
	t.Parallel()

	exec := newChanExecutor()
	rt := NewRuntime(WithExecutor(exec))
	rt.SetRenderCallback(func() {})

	gates := map[int]chan struct{}{1: make(chan struct{}), 2: make(chan struct{})}
	var succeeded []int
	var rollbacks atomic.Int32

	m := render(rt, NewID(), func(c *Cursor) Mutation[int, int] {
		return UseMutation(c, "updateCart", func(ctx context.Context, v int) (int, error) {
			<-gates[v]
			if v == 1 {
				return 0, errors.New("stale request failed")
			}
			return v, nil
		}, MutationOptions[int, int]{
			OnSuccess: func(v int) { succeeded = append(succeeded, v) },
			Rollback:  func() { rollbacks.Add(1) },
		})
	})

	m.Mutate(1)
	m.Mutate(2)

	close(gates[1])
	exec.runNext(t)
	assert.Empty(t, succeeded)
	assert.Zero(t, rollbacks.Load(), "superseded failures do not roll back")

	close(gates[2])
	exec.runNext(t)
	assert.Equal(t, []int{2}, succeeded)
}
