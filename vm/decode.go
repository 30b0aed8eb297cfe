package vm

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Instruction is a decoded instruction. Which fields are meaningful
// depends on the opcode.
type Instruction struct {
	Opcode Opcode
	Arg1   uint8 // First operand: rptr for store/load, rdst otherwise.
	Arg2   uint8 // Second operand: rval, rdst for load, rsrc, or imm8.
	Cond   Cond  // Branch condition.
	Offset int32 // Branch displacement, relative to the branch address.
}

// Decode decodes the instruction at pc.
//
// Unknown opcodes decode without operands and without error; only
// execution rejects them. Operand values are not validated.
func Decode(code []byte, pc uint32) (inst Instruction, err error) {
	if uint64(pc) >= uint64(len(code)) {
		err = ErrPcBounds
		return
	}

	inst.Opcode = Opcode(code[pc])

	need := inst.Opcode.OperandSize()
	if uint64(pc)+1+uint64(need) > uint64(len(code)) {
		err = errors.Join(ErrIllegalInstruction, ErrOpcodeTruncated, ErrOpcode(inst))
		return
	}

	ops := code[pc+1 : pc+1+uint32(need)]

	switch need {
	case SIZE_REG - 1:
		inst.Arg1 = ops[0]
		inst.Arg2 = ops[1]
	case SIZE_BRANCH - 1:
		inst.Cond = Cond(ops[0])
		inst.Offset = int32(binary.LittleEndian.Uint32(ops[1:]))
	}

	return
}

// Size returns the encoded width of the instruction.
func (inst Instruction) Size() uint32 {
	return 1 + uint32(inst.Opcode.OperandSize())
}

// Bytes returns the encoded form of the instruction.
func (inst Instruction) Bytes() []byte {
	switch inst.Opcode.OperandSize() {
	case SIZE_REG - 1:
		return makeReg(inst.Opcode, inst.Arg1, inst.Arg2)
	case SIZE_BRANCH - 1:
		return MakeBranch(inst.Cond, inst.Offset)
	}
	return []byte{byte(inst.Opcode)}
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	switch inst.Opcode {
	case OP_STORE:
		out = fmt.Sprintf("%v [r%d], r%d", inst.Opcode, inst.Arg1, inst.Arg2)
	case OP_LOAD:
		out = fmt.Sprintf("%v r%d, [r%d]", inst.Opcode, inst.Arg2, inst.Arg1)
	case OP_ADD, OP_SUB, OP_MOVR:
		out = fmt.Sprintf("%v r%d, r%d", inst.Opcode, inst.Arg1, inst.Arg2)
	case OP_MOVI:
		out = fmt.Sprintf("%v r%d, %d", inst.Opcode, inst.Arg1, inst.Arg2)
	case OP_BRANCH:
		out = fmt.Sprintf("%v%v %+d", inst.Opcode, inst.Cond, inst.Offset)
	default:
		out = inst.Opcode.String()
	}

	return
}
