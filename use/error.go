package use

import "fmt"

func Err(message string) *Error {
	return &Error{message: message, index: -1}
}

func Errf(format string, args ...interface{}) *Error {
	return Err(fmt.Sprintf(format, args...))
}

// RecordErr binds err to the record position in a collection.
func RecordErr(err error, index int) *Error {
	return &Error{message: err.Error(), index: index, cause: err}
}

type Error struct {
	message string
	index   int
	cause   error
}

func (e *Error) Error() string {
	m := e.message
	if e.index >= 0 {
		m += fmt.Sprintf(" record: %d", e.index)
	}
	return m
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Index returns the record position or -1.
func (e *Error) Index() int {
	return e.index
}
