package command

import (
	"flag"
	"fmt"

	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/group"
)

func NewGroups() *Command {
	const (
		cmdName = "groups"
	)
	var (
		flagSet = flag.NewFlagSet(cmdName, flag.ExitOnError)
		noColor = flagSet.Bool("no-color", false, "disable group name highlighting")
	)
	return New(
		cmdName, "prints records bucketed by group name in first occurrence order",
		flagSet,
		func(context *Context) error {
			highlight := highlighter(*noColor)
			groups := group.By(context.Records, (*entity.Obj).GroupName)
			for _, name := range groups.Keys() {
				if _, err := fmt.Fprintln(context.Out, highlight(name)); err != nil {
					return err
				}
				for _, o := range groups.Get(name) {
					if _, err := fmt.Fprintln(context.Out, "\t"+o.String()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	)
}
