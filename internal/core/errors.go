package core

import "errors"

// Failure categories of a wipe run. Each one is terminal.
var (
	ErrOpen         = errors.New("cannot open file (doesn't exist or too large -- try using zero64)")
	ErrSeek         = errors.New("cannot seek in file")
	ErrSeekBack     = errors.New("cannot seek back in file")
	ErrSize         = errors.New("cannot get file size")
	ErrSizeTooLarge = errors.New("cannot get file size (may be too large -- try using zero64)")
	ErrConfirmRead  = errors.New("cannot read confirmation")
	ErrWrite        = errors.New("cannot overwrite file with zeros")
	ErrDelete       = errors.New("cannot delete file")
)

// IOError ties a failure category to the error that caused it.
type IOError struct {
	Op  error
	Err error
}

func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op.Error()
	}
	return e.Op.Error() + ": " + e.Err.Error()
}

// Unwrap exposes both the category and the cause to errors.Is/As.
func (e *IOError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Op}
	}
	return []error{e.Op, e.Err}
}

func ioError(op, err error) *IOError {
	return &IOError{Op: op, Err: err}
}
