package vm

import (
	"errors"
	"fmt"
	"log"
	"slices"
)

const (
	NUM_REGS  = 16  // General purpose registers r0-r15.
	DATA_SIZE = 256 // Bytes in the data segment.
)

// Flags holds the condition bits computed by arithmetic instructions.
type Flags uint32

const (
	FLAG_N = Flags(1 << 0) // Negative
	FLAG_Z = Flags(1 << 1) // Zero
	FLAG_V = Flags(1 << 2) // Overflow (carry out of bit 31)
)

// String returns the flags as "nzv" letters, upper case when set.
func (fl Flags) String() string {
	out := []byte("nzv")
	for n, flag := range []Flags{FLAG_N, FLAG_Z, FLAG_V} {
		if fl&flag != 0 {
			out[n] -= 'a' - 'A'
		}
	}
	return string(out)
}

// Machine is the complete mutable state of one interpreter run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Register [NUM_REGS]uint32 // Register bank.
	Flags    Flags            // Flags from the last arithmetic instruction.
	Pc       uint32           // Offset of the next instruction in Code.

	Data *[DATA_SIZE]uint8 // Data segment.
	Code []uint8           // Code segment. Never written.
}

// NewMachine creates a machine for a program. If data is nil, a zeroed
// data segment is allocated.
func NewMachine(code []byte, data *[DATA_SIZE]uint8) (m *Machine) {
	if data == nil {
		data = &[DATA_SIZE]uint8{}
	}

	m = &Machine{
		Data: data,
		Code: slices.Clone(code),
	}

	return
}

// Reset clears the registers, flags and pc, and places the input in r0.
// The data segment is left untouched.
func (m *Machine) Reset(input uint32) {
	if m.Verbose {
		log.Printf("vm: reset r0=%d", input)
	}

	clear(m.Register[:])
	m.Flags = 0
	m.Pc = 0
	m.Register[0] = input
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 5s: %02x\n", "pc", m.Pc)
	text += fmt.Sprintf("% 5s: %v\n", "flags", m.Flags)
	for n, val := range m.Register {
		reg := fmt.Sprintf("r%d", n)
		text += fmt.Sprintf("% 5s: %04X_%04X\n", reg, val>>16, val&0xffff)
	}

	return
}

// address converts a register value to a data segment offset. The low
// byte is treated as a signed offset into the 256 byte window, so -1 is
// the last byte.
func address(value uint32) uint8 {
	return uint8(int8(value))
}

// Store writes the low byte of r[rval] to data[r[rptr]].
func (m *Machine) Store(rptr, rval uint8) {
	m.Data[address(m.Register[rptr])] = uint8(m.Register[rval])
}

// Load reads data[r[rptr]] into r[rdst].
func (m *Machine) Load(rptr, rdst uint8) {
	m.Register[rdst] = uint32(m.Data[address(m.Register[rptr])])
}

// SetFlags recomputes all flags from a widened arithmetic result.
func (m *Machine) SetFlags(res uint64) {
	m.Flags = 0
	if uint32(res) == 0 {
		m.Flags |= FLAG_Z
	}
	if int32(res) < 0 {
		m.Flags |= FLAG_N
	}
	// Any bit above the low 32 is an overflow.
	if res&^uint64(^uint32(0)) != 0 {
		m.Flags |= FLAG_V
	}
}

// Add computes r[rdst] += r[rsrc], with flags from the 64-bit sum.
func (m *Machine) Add(rdst, rsrc uint8) {
	res := uint64(m.Register[rdst]) + uint64(m.Register[rsrc])
	m.Register[rdst] = uint32(res)
	m.SetFlags(res)
}

// Sub computes r[rdst] -= r[rsrc]. The difference wraps at 32 bits before
// widening, so a borrow never sets FLAG_V.
func (m *Machine) Sub(rdst, rsrc uint8) {
	res := uint64(m.Register[rdst] - m.Register[rsrc])
	m.Register[rdst] = uint32(res)
	m.SetFlags(res)
}

// Movr copies r[rsrc] to r[rdst].
func (m *Machine) Movr(rdst, rsrc uint8) {
	m.Register[rdst] = m.Register[rsrc]
}

// Movi sets r[rdst] to an 8-bit immediate.
func (m *Machine) Movi(rdst, imm uint8) {
	m.Register[rdst] = uint32(imm)
}

// Check validates the operands of an instruction against the machine.
func Check(inst Instruction) (err error) {
	switch inst.Opcode {
	case OP_STORE, OP_LOAD, OP_ADD, OP_SUB, OP_MOVR:
		if inst.Arg1 >= NUM_REGS {
			err = ErrOpcodeArg1
		} else if inst.Arg2 >= NUM_REGS {
			err = ErrOpcodeArg2
		}
	case OP_MOVI:
		if inst.Arg1 >= NUM_REGS {
			err = ErrOpcodeArg1
		}
	case OP_BRANCH:
		if !inst.Cond.Valid() {
			err = ErrOpcodeCond
		}
	case OP_HALT:
		// pass
	default:
		return ErrIllegalInstruction
	}

	if err != nil {
		err = errors.Join(ErrIllegalInstruction, err)
	}

	return
}

// Execute executes a single decoded instruction and advances the pc.
// A halt leaves the pc on the halt instruction.
func (m *Machine) Execute(inst Instruction) (halt bool, err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()

	err = Check(inst)
	if err != nil {
		return
	}

	switch inst.Opcode {
	case OP_STORE:
		m.Store(inst.Arg1, inst.Arg2)
	case OP_LOAD:
		m.Load(inst.Arg1, inst.Arg2)
	case OP_ADD:
		m.Add(inst.Arg1, inst.Arg2)
	case OP_SUB:
		m.Sub(inst.Arg1, inst.Arg2)
	case OP_MOVR:
		m.Movr(inst.Arg1, inst.Arg2)
	case OP_MOVI:
		m.Movi(inst.Arg1, inst.Arg2)
	case OP_BRANCH:
		err = m.Branch(inst.Cond, inst.Offset)
		return
	case OP_HALT:
		halt = true
		return
	}

	m.Pc += inst.Size()

	return
}
