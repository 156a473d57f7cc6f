// Package rule derives group names from record state with expr-lang expressions.
//
// An expression sees the variables id, name (nil when absent) and group (the current group name)
// and must produce a string, for example:
//
//	name ?? "anonymous"
//	id == nil ? "new" : (id % 2 == 0 ? "even" : "odd")
package rule

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"

	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/logger"
	"github.com/m4gshm/objgroup/use"
)

const (
	varID    = "id"
	varName  = "name"
	varGroup = "group"
)

type Rule struct {
	source  string
	program *vm.Program
}

func Compile(source string) (*Rule, error) {
	source = strings.TrimSpace(source)
	if len(source) == 0 {
		return nil, use.Err("empty group rule")
	}
	program, err := expr.Compile(source)
	if err != nil {
		return nil, errors.Wrapf(err, "compile group rule '%s'", source)
	}
	logger.Debugw("group rule compiled", "source", source)
	return &Rule{source: source, program: program}, nil
}

func (r *Rule) String() string {
	return r.source
}

// Eval computes the group name of the record.
func (r *Rule) Eval(o *entity.Obj) (string, error) {
	out, err := expr.Run(r.program, env(o))
	if err != nil {
		return "", errors.Wrapf(err, "eval group rule '%s'", r.source)
	}
	name, ok := out.(string)
	if !ok {
		return "", use.Errf("group rule '%s' result is not a string: %T", r.source, out)
	}
	return name, nil
}

// Assign sets the evaluated group name to each record in order, stopping at the first failure.
func (r *Rule) Assign(records []*entity.Obj) error {
	for i, o := range records {
		name, err := r.Eval(o)
		if err != nil {
			return use.RecordErr(err, i)
		}
		logger.Debugw("group assigned", "record", o, "group", name)
		if o != nil {
			o.SetGroupName(name)
		}
	}
	return nil
}

func env(o *entity.Obj) map[string]interface{} {
	var id, name interface{}
	if o == nil {
		return map[string]interface{}{varID: id, varName: name, varGroup: ""}
	}
	if v, ok := o.ID().Get(); ok {
		id = v
	}
	if v, ok := o.Name().Get(); ok {
		name = v
	}
	return map[string]interface{}{varID: id, varName: name, varGroup: o.GroupName()}
}
