package entity

import (
	"fmt"

	"github.com/m4gshm/objgroup/option"
)

//go:generate fieldr

//go:fieldr -type Obj get-set

// Obj is an identified, named entity. Both fields are absent until set.
type Obj struct {
	Parent
	id   option.Value[int]
	name option.Value[string]
}

var _ GroupNamer = (*Obj)(nil)

func New() *Obj {
	return &Obj{}
}

// NewOf builds a record with both fields present.
func NewOf(id int, name, group string) *Obj {
	return &Obj{Parent: NewParent(group), id: option.Of(id), name: option.Of(name)}
}

func (o *Obj) String() string {
	if o == nil {
		return "Obj<nil>"
	}
	return fmt.Sprintf("Obj{id: %v, name: %v, group: %s}", o.id, o.name, o.group)
}
