package emulator

import (
	"github.com/ezrec/futamura/translate"
)

var f = translate.From

// ErrRun indicates the input of a failed run.
type ErrRun struct {
	Input uint32
	Err   error
}

func (err *ErrRun) Error() string {
	return f("input %v %v", err.Input, err.Err)
}

func (err *ErrRun) Unwrap() error {
	return err.Err
}
