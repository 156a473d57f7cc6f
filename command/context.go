package command

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/input"
	"github.com/m4gshm/objgroup/logger"
	"github.com/m4gshm/objgroup/params"
	"github.com/m4gshm/objgroup/rule"
)

type Context struct {
	Config  *params.Config
	Records []*entity.Obj
	Out     io.Writer
}

// NewContext loads the configured records: files first, then inline ones.
// Records without a group get the default group, then the group rule is applied.
func NewContext(config *params.Config, out io.Writer) (*Context, error) {
	records := []*entity.Obj{}
	for _, path := range *config.Input {
		loaded, err := input.Load(path)
		if err != nil {
			return nil, err
		}
		records = append(records, loaded...)
	}
	inline, err := input.ParseAll(*config.Records)
	if err != nil {
		return nil, err
	}
	records = append(records, inline...)

	if group := *config.Group; len(group) > 0 {
		for _, o := range records {
			if len(o.GroupName()) == 0 {
				o.SetGroupName(group)
			}
		}
	}
	if source := *config.Rule; len(source) > 0 {
		r, err := rule.Compile(source)
		if err != nil {
			return nil, err
		}
		if err := r.Assign(records); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = os.Stdout
	}
	logger.Debugw("context", "records", records)
	return &Context{Config: config, Records: records, Out: out}, nil
}

func highlighter(noColor bool) func(a ...interface{}) string {
	c := color.New(color.FgGreen, color.Bold)
	if noColor {
		c.DisableColor()
	}
	return c.Sprint
}
