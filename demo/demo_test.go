package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m4gshm/objgroup/entity"
)

func Test_Empty(t *testing.T) {
	assert.Equal(t, []string{}, Empty())
	assert.Equal(t, []string{}, Run(nil))
}

func Test_Run(t *testing.T) {
	records := []*entity.Obj{entity.NewOf(1, "x", "G"), entity.NewOf(2, "y", "G")}
	assert.Equal(t, []string{"G", "G"}, Run(records))
}

func Test_RunMatchesDirectCall(t *testing.T) {
	records := []*entity.Obj{entity.NewOf(1, "x", "A"), entity.New(), entity.NewOf(3, "z", "C")}

	names := Run(records)

	assert.Len(t, names, len(records))
	for i, r := range records {
		assert.Equal(t, r.GroupName(), names[i])
	}
}
