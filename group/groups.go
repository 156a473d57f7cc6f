package group

import (
	"github.com/m4gshm/gollections/convert/as"
	grouping "github.com/m4gshm/gollections/slice/group"
)

// Groups is records bucketed by group name.
type Groups[T any] struct {
	keys    []string
	buckets map[string][]T
}

// By buckets records by namer. Keys keep first occurrence order, buckets keep the records order.
func By[T any](records []T, namer func(T) string) Groups[T] {
	keys, buckets := grouping.Order(records, namer, as.Is[T])
	return Groups[T]{keys: keys, buckets: buckets}
}

func (g Groups[T]) Keys() []string {
	if len(g.keys) == 0 {
		return []string{}
	}
	return g.keys
}

func (g Groups[T]) Get(name string) []T {
	return g.buckets[name]
}

func (g Groups[T]) Len() int {
	return len(g.keys)
}
