package rule

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/option"
	"github.com/m4gshm/objgroup/use"
)

func Test_CompileEmpty(t *testing.T) {
	_, err := Compile("  ")
	assert.Error(t, err)
}

func Test_CompileSyntaxError(t *testing.T) {
	_, err := Compile(`name ??`)
	assert.Error(t, err)
}

func Test_Eval(t *testing.T) {
	r, err := Compile(`name ?? "none"`)
	require.NoError(t, err)
	assert.Equal(t, `name ?? "none"`, r.String())

	name, err := r.Eval(entity.NewOf(1, "x", ""))
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	name, err = r.Eval(entity.New())
	require.NoError(t, err)
	assert.Equal(t, "none", name)
}

func Test_EvalByID(t *testing.T) {
	r, err := Compile(`id == nil ? "new" : (id % 2 == 0 ? "even" : "odd")`)
	require.NoError(t, err)

	o := entity.New()
	name, err := r.Eval(o)
	require.NoError(t, err)
	assert.Equal(t, "new", name)

	o.SetID(option.Of(4))
	name, err = r.Eval(o)
	require.NoError(t, err)
	assert.Equal(t, "even", name)

	o.SetID(option.Of(3))
	name, err = r.Eval(o)
	require.NoError(t, err)
	assert.Equal(t, "odd", name)
}

func Test_EvalCurrentGroup(t *testing.T) {
	r, err := Compile(`group + "/" + (name ?? "-")`)
	require.NoError(t, err)

	name, err := r.Eval(entity.NewOf(1, "x", "G"))
	require.NoError(t, err)
	assert.Equal(t, "G/x", name)
}

func Test_EvalNotString(t *testing.T) {
	r, err := Compile(`id`)
	require.NoError(t, err)

	_, err = r.Eval(entity.NewOf(1, "x", ""))
	assert.Error(t, err)
}

func Test_Assign(t *testing.T) {
	r, err := Compile(`"team-" + (name ?? "none")`)
	require.NoError(t, err)

	records := []*entity.Obj{entity.NewOf(1, "x", "G"), entity.New()}
	require.NoError(t, r.Assign(records))

	assert.Equal(t, "team-x", records[0].GroupName())
	assert.Equal(t, "team-none", records[1].GroupName())
}

func Test_AssignStopsAtFailure(t *testing.T) {
	r, err := Compile(`id == nil ? 0 : "ok"`)
	require.NoError(t, err)

	records := []*entity.Obj{entity.NewOf(1, "x", "G"), entity.New(), entity.NewOf(3, "z", "G")}
	err = r.Assign(records)

	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "record: 1")
		var useErr *use.Error
		if assert.True(t, errors.As(err, &useErr)) {
			assert.Equal(t, 1, useErr.Index())
		}
	}
	assert.Equal(t, "ok", records[0].GroupName())
	assert.Equal(t, "", records[1].GroupName())
	assert.Equal(t, "G", records[2].GroupName())
}

func Test_AssignEvalErrorHasIndex(t *testing.T) {
	r, err := Compile(`id % 2 == 0 ? "even" : "odd"`)
	require.NoError(t, err)

	err = r.Assign([]*entity.Obj{entity.NewOf(2, "x", ""), entity.NewOf(3, "y", ""), entity.New()})

	var useErr *use.Error
	if assert.True(t, errors.As(err, &useErr)) {
		assert.Equal(t, 2, useErr.Index())
	}
}
