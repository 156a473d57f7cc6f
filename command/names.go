package command

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/m4gshm/flag/flagenum"
	"github.com/m4gshm/gollections/collection/immutable"
	"github.com/m4gshm/gollections/slice"

	"github.com/m4gshm/objgroup/demo"
	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/group"
	"github.com/m4gshm/objgroup/use"
)

type column string

const (
	indexCol column = "index"
	idCol    column = "id"
	nameCol  column = "name"
	groupCol column = "group"
)

func toString[F ~string](from F) string { return string(from) }
func fromString[F ~string](s string) F  { return F(s) }

func NewNames() *Command {
	const (
		cmdName   = "names"
		fieldsArg = "fields"
	)
	var (
		flagSet  = flag.NewFlagSet(cmdName, flag.ExitOnError)
		distinct = flagSet.Bool("distinct", false, "print every group name once; not compatible with -fields")
		noColor  = flagSet.Bool("no-color", false, "disable group name highlighting")
	)
	defaultCols := slice.Of(groupCol)
	allowedCols := slice.Of(indexCol, idCol, nameCol, groupCol)
	cols, err := flagenum.Multiple(flagSet, fieldsArg, defaultCols, allowedCols, fromString[column], toString[column], "printed record fields")
	if err != nil {
		panic(err)
	}

	return New(
		cmdName, "prints the group name of each record in the records order",
		flagSet,
		func(context *Context) error {
			if *distinct && isSet(flagSet, fieldsArg) {
				return use.Err("-distinct prints group names only, remove -" + fieldsArg)
			}
			highlight := highlighter(*noColor)
			names := demo.Run(context.Records)
			if *distinct {
				for _, name := range group.Distinct(names) {
					if _, err := fmt.Fprintln(context.Out, highlight(name)); err != nil {
						return err
					}
				}
				return nil
			}
			selected := immutable.NewSet(*cols...)
			for i, o := range context.Records {
				line := make([]string, 0, len(allowedCols))
				for _, col := range allowedCols {
					if selected.Contains(col) {
						line = append(line, value(col, i, o, names[i], highlight))
					}
				}
				if _, err := fmt.Fprintln(context.Out, strings.Join(line, "\t")); err != nil {
					return err
				}
			}
			return nil
		},
	)
}

func value(col column, index int, o *entity.Obj, groupName string, highlight func(a ...interface{}) string) string {
	switch col {
	case indexCol:
		return strconv.Itoa(index)
	case idCol:
		return o.ID().String()
	case nameCol:
		return o.Name().String()
	default:
		return highlight(groupName)
	}
}

func isSet(flagSet *flag.FlagSet, name string) bool {
	set := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
