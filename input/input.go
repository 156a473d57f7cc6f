// Package input loads records from YAML documents and inline flag values.
package input

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/m4gshm/objgroup/entity"
	"github.com/m4gshm/objgroup/logger"
	"github.com/m4gshm/objgroup/option"
	"github.com/m4gshm/objgroup/use"
)

// RecordSeparator splits the id, name and group parts of an inline record.
const RecordSeparator = ":"

type record struct {
	ID    *int    `yaml:"id"`
	Name  *string `yaml:"name"`
	Group string  `yaml:"group"`
}

func (r record) toObj() *entity.Obj {
	o := entity.New()
	o.SetID(option.FromPtr(r.ID))
	o.SetName(option.FromPtr(r.Name))
	o.SetGroupName(r.Group)
	return o
}

// Decode reads YAML sequences of records from every document of the stream; missing keys remain absent.
func Decode(in io.Reader) ([]*entity.Obj, error) {
	decoder := yaml.NewDecoder(in)
	result := []*entity.Obj{}
	for doc := 0; ; doc++ {
		var records []record
		if err := decoder.Decode(&records); errors.Is(err, io.EOF) {
			return result, nil
		} else if err != nil {
			return nil, errors.Wrapf(err, "decode records, document %d", doc)
		}
		for _, r := range records {
			result = append(result, r.toObj())
		}
	}
}

func Load(path string) ([]*entity.Obj, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open records")
	}
	defer file.Close()

	records, err := Decode(file)
	if err != nil {
		return nil, errors.WithMessagef(err, "file %s", path)
	}
	logger.Debugw("records loaded", "file", path, "count", len(records))
	return records, nil
}

// Parse builds a record from the "id:name[:group]" form. Parts are trimmed, empty id or name parts are absent.
func Parse(value string) (*entity.Obj, error) {
	parts := strings.SplitN(value, RecordSeparator, 3)
	if len(parts) < 2 {
		return nil, use.Errf("invalid record '%s', expected id%sname[%sgroup]", value, RecordSeparator, RecordSeparator)
	}
	o := entity.New()
	if idPart := strings.TrimSpace(parts[0]); len(idPart) > 0 {
		id, err := strconv.Atoi(idPart)
		if err != nil {
			return nil, use.Errf("invalid record id '%s' in '%s'", idPart, value)
		}
		o.SetID(option.Of(id))
	}
	if name := strings.TrimSpace(parts[1]); len(name) > 0 {
		o.SetName(option.Of(name))
	}
	if len(parts) == 3 {
		o.SetGroupName(strings.TrimSpace(parts[2]))
	}
	return o, nil
}

// ParseAll parses inline records keeping the values order.
func ParseAll(values []string) ([]*entity.Obj, error) {
	result := make([]*entity.Obj, 0, len(values))
	for _, value := range values {
		o, err := Parse(value)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}
