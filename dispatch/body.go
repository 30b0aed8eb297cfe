package dispatch

import (
	"errors"

	"github.com/ezrec/futamura/vm"
)

// body is the interpreter body specialized to a single pc. The
// instruction at that pc is decoded and checked once, and its effect
// captured with constant operands.
type body struct {
	pc   uint32
	inst vm.Instruction
	err  error // If set, the body fails when reached.
	halt bool

	exec func(m *vm.Machine) (taken bool)
	next uint32 // pc when not branching
	jump uint32 // pc of a taken branch

	// Successor bodies, resolved by link.
	on_next *body
	on_jump *body
}

// specialize builds the body for pc.
func specialize(code []byte, pc uint32) (b body) {
	b.pc = pc

	inst, err := vm.Decode(code, pc)
	if err == nil {
		err = vm.Check(inst)
		if err != nil {
			err = errors.Join(vm.ErrOpcode(inst), err)
		}
	}
	b.inst = inst
	if err != nil {
		b.err = err
		return
	}

	b.next = pc + inst.Size()

	a1 := inst.Arg1
	a2 := inst.Arg2

	switch inst.Opcode {
	case vm.OP_STORE:
		b.exec = func(m *vm.Machine) bool { m.Store(a1, a2); return false }
	case vm.OP_LOAD:
		b.exec = func(m *vm.Machine) bool { m.Load(a1, a2); return false }
	case vm.OP_ADD:
		b.exec = func(m *vm.Machine) bool { m.Add(a1, a2); return false }
	case vm.OP_SUB:
		b.exec = func(m *vm.Machine) bool { m.Sub(a1, a2); return false }
	case vm.OP_MOVR:
		b.exec = func(m *vm.Machine) bool { m.Movr(a1, a2); return false }
	case vm.OP_MOVI:
		b.exec = func(m *vm.Machine) bool { m.Movi(a1, a2); return false }
	case vm.OP_BRANCH:
		cond := inst.Cond
		b.jump = pc + uint32(inst.Offset)
		b.exec = func(m *vm.Machine) bool {
			// Condition was checked by specialize.
			taken, _ := m.Taken(cond)
			return taken
		}
	case vm.OP_HALT:
		b.halt = true
	}

	return
}

// tooLarge is a successor body for a pc beyond the specialization bound.
func tooLarge(pc uint32) *body {
	return &body{pc: pc, err: ErrPcTooLarge}
}

// run applies the body to the machine. The caller moves the pc.
func (b *body) run(m *vm.Machine) (taken bool, halt bool, err error) {
	if b.err != nil {
		err = b.err
		return
	}

	if b.halt {
		halt = true
		return
	}

	taken = b.exec(m)
	return
}
