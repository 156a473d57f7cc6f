// Package group maps ordered record collections to the names of their groups.
package group

import (
	"github.com/m4gshm/gollections/collection/mutable"
	"github.com/m4gshm/gollections/seq"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/objgroup/entity"
)

// Names applies namer to every record. The result has the records order and length.
func Names[T any](records []T, namer func(T) string) []string {
	if len(records) == 0 {
		return []string{}
	}
	return slice.Convert(records, namer)
}

// Seq is the lazy form of Names, namer is called on iteration.
func Seq[T any](records []T, namer func(T) string) seq.Seq[string] {
	return seq.Convert(seq.Of(records...), namer)
}

// Collect materializes a names sequence.
func Collect(names seq.Seq[string]) []string {
	if result := seq.Slice(names); len(result) > 0 {
		return result
	}
	return []string{}
}

// GroupNames maps records by their own group name capability.
func GroupNames[T entity.GroupNamer](records []T) []string {
	return Names(records, func(r T) string { return r.GroupName() })
}

// Distinct removes repeated names keeping the first occurrence order.
func Distinct(names []string) []string {
	uniques := mutable.NewSet[string]()
	return slice.Filter(names, func(name string) bool { return uniques.AddNew(name) })
}
