package use

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_Err(t *testing.T) {
	err := Err("empty rule")
	assert.Equal(t, "empty rule", err.Error())
	assert.Equal(t, -1, err.Index())
	assert.Nil(t, err.Unwrap())

	assert.Equal(t, "bad id 'a'", Errf("bad id '%s'", "a").Error())
}

func Test_RecordErr(t *testing.T) {
	err := RecordErr(Err("not a string"), 2)
	assert.Equal(t, "not a string record: 2", err.Error())
	assert.Equal(t, 2, err.Index())

	var useErr *Error
	assert.True(t, errors.As(errors.Wrap(err, "assign"), &useErr))
	assert.Equal(t, 2, useErr.Index())
}

func Test_RecordErrCause(t *testing.T) {
	err := RecordErr(errors.Wrap(io.EOF, "eval"), 0)
	assert.Equal(t, "eval: EOF record: 0", err.Error())
	assert.True(t, errors.Is(err, io.EOF))
}
