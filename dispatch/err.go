package dispatch

import (
	"errors"

	"github.com/ezrec/futamura/translate"
)

var f = translate.From

var (
	ErrPcTooLarge     = errors.New(f("pc was too large at runtime"))
	ErrVariantInvalid = errors.New(f("dispatch variant invalid"))
	ErrBoundInvalid   = errors.New(f("pc bound invalid"))
	ErrCodeMismatch   = errors.New(f("machine code differs from specialized code"))
)

// ErrRuntime indicates the pc of a runtime error.
type ErrRuntime struct {
	Pc  uint32
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%02x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
