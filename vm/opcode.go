package vm

import (
	"encoding/binary"
)

// Opcode is the one byte instruction tag.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_STORE  = Opcode('S') // store
	OP_LOAD   = Opcode('L') // load
	OP_ADD    = Opcode('A') // add
	OP_SUB    = Opcode('U') // sub
	OP_MOVR   = Opcode('M') // movr
	OP_MOVI   = Opcode('I') // movi
	OP_BRANCH = Opcode('B') // b
	OP_HALT   = Opcode('H') // halt
)

// Cond is a branch condition code.
type Cond uint8

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_EQ = Cond('E') // eq
	COND_NE = Cond('N') // ne
	COND_LT = Cond('L') // lt
)

// Encoded instruction widths, opcode byte included.
const (
	SIZE_REG    = 3 // opcode, two register (or register + immediate) bytes
	SIZE_BRANCH = 6 // opcode, condition, 32-bit little-endian displacement
	SIZE_HALT   = 1 // opcode only
)

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	switch op {
	case OP_STORE, OP_LOAD, OP_ADD, OP_SUB, OP_MOVR, OP_MOVI, OP_BRANCH, OP_HALT:
		return true
	}
	return false
}

// OperandSize returns the number of operand bytes following the opcode.
// Unknown opcodes have no operands.
func (op Opcode) OperandSize() int {
	switch op {
	case OP_STORE, OP_LOAD, OP_ADD, OP_SUB, OP_MOVR, OP_MOVI:
		return SIZE_REG - 1
	case OP_BRANCH:
		return SIZE_BRANCH - 1
	}
	return 0
}

// Valid returns true if the condition is understood by the branch unit.
func (cc Cond) Valid() bool {
	switch cc {
	case COND_EQ, COND_NE, COND_LT:
		return true
	}
	return false
}

// makeReg creates a two-operand instruction.
func makeReg(op Opcode, a, b uint8) []byte {
	return []byte{byte(op), a, b}
}

// MakeStore creates a store of r[rval] to data[r[rptr]].
func MakeStore(rptr, rval uint8) []byte {
	return makeReg(OP_STORE, rptr, rval)
}

// MakeLoad creates a load of data[r[rptr]] into r[rdst].
func MakeLoad(rptr, rdst uint8) []byte {
	return makeReg(OP_LOAD, rptr, rdst)
}

// MakeAdd creates r[rdst] += r[rsrc].
func MakeAdd(rdst, rsrc uint8) []byte {
	return makeReg(OP_ADD, rdst, rsrc)
}

// MakeSub creates r[rdst] -= r[rsrc].
func MakeSub(rdst, rsrc uint8) []byte {
	return makeReg(OP_SUB, rdst, rsrc)
}

// MakeMovr creates r[rdst] = r[rsrc].
func MakeMovr(rdst, rsrc uint8) []byte {
	return makeReg(OP_MOVR, rdst, rsrc)
}

// MakeMovi creates r[rdst] = imm.
func MakeMovi(rdst, imm uint8) []byte {
	return makeReg(OP_MOVI, rdst, imm)
}

// MakeBranch creates a conditional branch. The displacement is relative
// to the address of the branch itself.
func MakeBranch(cond Cond, off int32) []byte {
	code := []byte{byte(OP_BRANCH), byte(cond), 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(code[2:], uint32(off))
	return code
}

// MakeHalt creates a halt.
func MakeHalt() []byte {
	return []byte{byte(OP_HALT)}
}
