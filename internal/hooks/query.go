package hooks

import (
	"context"
	"time"

	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// Fetcher loads the data for one query key.
type Fetcher[T any] func(ctx context.Context) (T, error)

// QueryOptions tunes a single UseQuery call.
type QueryOptions[T any] struct {
	// Disabled suppresses fetching; cached data is still returned.
	Disabled  bool
	OnSuccess func(T)
	OnError   func(error)
}

// Query is the view of one cache entry handed to a component.
type Query[T any] struct {
	Data      T
	HasData   bool
	Loading   bool
	Fetching  bool
	Err       error
	UpdatedAt time.Time
}

type entry struct {
	data     any
	hasData  bool
	err      error
	updated  time.Time
	inflight bool
}

// QueryClient is the process-wide query cache of one Runtime. Entries are
// fresh for the runtime's stale time after their last fetch and are
// refetched lazily the next time a component reads them.
type QueryClient struct {
	rt        *Runtime
	entries   map[string]*entry
	mutations map[string]uint64
	fetches   map[string]int
}

func newQueryClient(rt *Runtime) *QueryClient {
	return &QueryClient{
		rt:        rt,
		entries:   make(map[string]*entry),
		mutations: make(map[string]uint64),
		fetches:   make(map[string]int),
	}
}

func (q *QueryClient) entry(key string) *entry {
	e, ok := q.entries[key]
	if !ok {
		e = &entry{}
		q.entries[key] = e
	}
	return e
}

func (q *QueryClient) stale(e *entry) bool {
	return e.updated.IsZero() || q.rt.now().Sub(e.updated) > q.rt.staleTime
}

// Invalidate marks key stale so the next reader refetches it.
func (q *QueryClient) Invalidate(key string) {
	e, ok := q.entries[key]
	if !ok {
		return
	}
	e.updated = time.Time{}
	q.rt.triggerRender()
}

// SetQueryData stores data for key as freshly fetched and clears any error.
func (q *QueryClient) SetQueryData(key string, data any) {
	e := q.entry(key)
	e.data = data
	e.hasData = true
	e.err = nil
	e.updated = q.rt.now()
	q.rt.triggerRender()
}

// QueryData returns the cached data for key.
func (q *QueryClient) QueryData(key string) (any, bool) {
	e, ok := q.entries[key]
	if !ok || !e.hasData {
		return nil, false
	}
	return e.data, true
}

// InFlight reports whether a fetch for key is running.
func (q *QueryClient) InFlight(key string) bool {
	e, ok := q.entries[key]
	return ok && e.inflight
}

// Fetches returns how many fetches were started for key.
func (q *QueryClient) Fetches(key string) int {
	return q.fetches[key]
}

// QueryDataAs is QueryData with a typed result.
func QueryDataAs[T any](q *QueryClient, key string) (T, bool) {
	v, ok := q.QueryData(key)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// UseQuery returns the cached state of key, starting a fetch when the entry
// is missing or stale and no fetch for key is already in flight.
func UseQuery[T any](c *Cursor, key string, fetch Fetcher[T]) Query[T] {
	return UseQueryWith(c, key, fetch, QueryOptions[T]{})
}

// UseQueryWith is UseQuery with options.
func UseQueryWith[T any](c *Cursor, key string, fetch Fetcher[T], opts QueryOptions[T]) Query[T] {
	s, _ := c.next(kindQuery)
	s.value = key

	q := c.rt.queries
	e := q.entry(key)
	if !opts.Disabled && !e.inflight && q.stale(e) {
		startFetch(q, key, e, fetch, opts)
	}

	return view[T](key, e)
}

func startFetch[T any](q *QueryClient, key string, e *entry, fetch Fetcher[T], opts QueryOptions[T]) {
	e.inflight = true
	q.fetches[key]++
	rt := q.rt

	rt.launch(func(ctx context.Context) func() {
		data, err := fetch(ctx)
		return func() {
			e.inflight = false
			e.updated = rt.now()
			if err != nil {
				e.err = cuierrors.NewFetchError(key, err)
				rt.log.Error(err, "query "+key+" failed")
				if opts.OnError != nil {
					opts.OnError(e.err)
				}
			} else {
				e.data = data
				e.hasData = true
				e.err = nil
				if opts.OnSuccess != nil {
					opts.OnSuccess(data)
				}
			}
			rt.triggerRender()
		}
	})
}

func view[T any](key string, e *entry) Query[T] {
	out := Query[T]{
		HasData:   e.hasData,
		Fetching:  e.inflight,
		Err:       e.err,
		UpdatedAt: e.updated,
		Loading:   !e.hasData && (e.inflight || e.err == nil),
	}
	if e.hasData {
		data, ok := e.data.(T)
		if !ok && e.data != nil {
			panic(cuierrors.NewContractError("query "+key, "cached data has a different type than requested"))
		}
		out.Data = data
	}
	return out
}
