package params

import (
	"flag"
	"strings"

	"github.com/m4gshm/gollections/collection/mutable"

	"github.com/m4gshm/objgroup/use"
)

// multiflag is a repeatable string flag that rejects duplicated values.
type multiflag struct {
	name    string
	values  []string
	uniques *mutable.Set[string]
}

var _ flag.Getter = (*multiflag)(nil)

func (f *multiflag) String() string {
	if f == nil {
		return ""
	}
	return strings.Join(f.values, ",")
}

func (f *multiflag) Set(s string) error {
	if !f.uniques.AddNew(s) {
		return duplicated(s, f.name)
	}
	f.values = append(f.values, s)
	return nil
}

func (f *multiflag) Get() interface{} { return f.values }

func multiVal(flagSet *flag.FlagSet, name string, defValues []string, usage string) *[]string {
	values := &multiflag{name: name, values: []string{}, uniques: mutable.NewSet[string]()}
	for _, defValue := range defValues {
		if err := values.Set(defValue); err != nil {
			panic(err)
		}
	}
	flagSet.Var(values, name, usage)
	return &values.values
}

func duplicated(value, name string) error {
	return use.Errf("duplicated value %v of parameter %v", value, name)
}
