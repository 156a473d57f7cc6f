package entity

// GroupNamer is anything that can tell the name of the group it belongs to.
type GroupNamer interface {
	GroupName() string
}

// Parent is the shared base of grouped entities.
type Parent struct {
	group string
}

var _ GroupNamer = (*Parent)(nil)

func NewParent(group string) Parent {
	return Parent{group: group}
}

// GroupName returns the group name, empty for a nil or ungrouped entity.
func (p *Parent) GroupName() string {
	if p == nil {
		return ""
	}
	return p.group
}

func (p *Parent) SetGroupName(group string) {
	if p != nil {
		p.group = group
	}
}
