package hooks

import (
	"context"

	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// MutateFunc performs a remote change with the given variables.
type MutateFunc[T, V any] func(ctx context.Context, vars V) (T, error)

// MutationOptions are the callbacks of one UseMutation call. OptimisticUpdate
// runs synchronously before the call starts; Rollback runs only when the call
// fails.
type MutationOptions[T, V any] struct {
	OptimisticUpdate func(V)
	Rollback         func()
	OnSuccess        func(T)
	OnError          func(error)
}

type mutationState struct {
	loading bool
	err     error
}

// Mutation is the state of one mutation hook plus its trigger.
type Mutation[T, V any] struct {
	Loading bool
	Err     error

	mutate func(V)
}

// Mutate starts the mutation. When several mutations for the same key
// overlap, only the most recently started one reports back; earlier
// completions are discarded.
func (m Mutation[T, V]) Mutate(vars V) {
	m.mutate(vars)
}

// UseMutation binds fn to a hook slot. Mutations sharing key share the
// latest-wins sequence even across components.
func UseMutation[T, V any](c *Cursor, key string, fn MutateFunc[T, V], opts MutationOptions[T, V]) Mutation[T, V] {
	s, fresh := c.next(kindMutation)
	if fresh {
		s.value = &mutationState{}
	}
	st := s.value.(*mutationState)
	rt := c.rt
	q := rt.queries

	mutate := func(vars V) {
		q.mutations[key]++
		seq := q.mutations[key]

		st.loading = true
		st.err = nil
		if opts.OptimisticUpdate != nil {
			opts.OptimisticUpdate(vars)
		}
		rt.triggerRender()

		rt.launch(func(ctx context.Context) func() {
			data, err := fn(ctx, vars)
			return func() {
				if q.mutations[key] != seq {
					rt.log.Debug("mutation " + key + " superseded; result discarded")
					return
				}
				st.loading = false
				if err != nil {
					st.err = cuierrors.NewFetchError(key, err)
					rt.log.Error(err, "mutation "+key+" failed")
					if opts.OnError != nil {
						opts.OnError(st.err)
					}
					if opts.Rollback != nil {
						opts.Rollback()
					}
				} else if opts.OnSuccess != nil {
					opts.OnSuccess(data)
				}
				rt.triggerRender()
			}
		})
	}

	return Mutation[T, V]{Loading: st.loading, Err: st.err, mutate: mutate}
}
