package params

import (
	"flag"

	"github.com/m4gshm/objgroup/input"
)

const (
	Name     = "objgroup"
	DebugArg = "debug"
)

func NewConfig(flagSet *flag.FlagSet) *Config {
	return &Config{
		Input:   multiVal(flagSet, "in", []string{}, "yaml file with a records sequence"),
		Records: multiVal(flagSet, "record", []string{}, "inline record; format - id"+input.RecordSeparator+"name["+input.RecordSeparator+"group]"),
		Group:   flagSet.String("group", "", "group name of records without one"),
		Rule:    flagSet.String("rule", "", "group name expression over id, name, group variables; example - name ?? \"anonymous\""),
		Debug:   flagSet.Bool(DebugArg, false, "enable debug logging"),
	}
}

type Config struct {
	Input   *[]string
	Records *[]string
	Group   *string
	Rule    *string
	Debug   *bool
}
