package vm

import (
	"errors"

	"github.com/ezrec/futamura/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrIllegalInstruction = errors.New(f("illegal instruction"))
	ErrPcBounds           = errors.New(f("pc outside of code"))

	// Instruction decode errors
	ErrOpcodeTruncated = errors.New(f("truncated"))
	ErrOpcodeCond      = errors.New(f("cond"))
	ErrOpcodeArg1      = errors.New(f("arg1"))
	ErrOpcodeArg2      = errors.New(f("arg2"))
)

// ErrOpcode describes the instruction that failed to execute.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", uint8(eo.Opcode), Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
