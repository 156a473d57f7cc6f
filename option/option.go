package option

import "fmt"

const none = "<none>"

// Value is a present or absent value of T. The zero Value is absent.
type Value[T any] struct {
	v  T
	ok bool
}

func Of[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

func Empty[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr converts a nullable reference, nil becomes absent.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

func (o Value[T]) IsPresent() bool {
	return o.ok
}

func (o Value[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Ptr returns a copy of the value reference or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.v
	return &v
}

func (o Value[T]) String() string {
	if !o.ok {
		return none
	}
	return fmt.Sprint(o.v)
}
