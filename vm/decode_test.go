package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		code []byte
		inst Instruction
		text string
	}){
		{"store", MakeStore(1, 2), Instruction{Opcode: OP_STORE, Arg1: 1, Arg2: 2}, "store [r1], r2"},
		{"load", MakeLoad(0, 3), Instruction{Opcode: OP_LOAD, Arg1: 0, Arg2: 3}, "load r3, [r0]"},
		{"add", MakeAdd(2, 1), Instruction{Opcode: OP_ADD, Arg1: 2, Arg2: 1}, "add r2, r1"},
		{"sub", MakeSub(15, 14), Instruction{Opcode: OP_SUB, Arg1: 15, Arg2: 14}, "sub r15, r14"},
		{"movr", MakeMovr(4, 2), Instruction{Opcode: OP_MOVR, Arg1: 4, Arg2: 2}, "movr r4, r2"},
		{"movi", MakeMovi(1, 200), Instruction{Opcode: OP_MOVI, Arg1: 1, Arg2: 200}, "movi r1, 200"},
		{"beq", MakeBranch(COND_EQ, 12), Instruction{Opcode: OP_BRANCH, Cond: COND_EQ, Offset: 12}, "beq +12"},
		{"bne", MakeBranch(COND_NE, -21), Instruction{Opcode: OP_BRANCH, Cond: COND_NE, Offset: -21}, "bne -21"},
		{"blt", MakeBranch(COND_LT, 0x7fffffff), Instruction{Opcode: OP_BRANCH, Cond: COND_LT, Offset: 0x7fffffff}, "blt +2147483647"},
		{"halt", MakeHalt(), Instruction{Opcode: OP_HALT}, "halt"},
		{"unknown", []byte{'Z'}, Instruction{Opcode: 'Z'}, "Opcode(90)"},
	}

	for _, entry := range table {
		inst, err := Decode(entry.code, 0)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
		assert.Equal(uint32(len(entry.code)), inst.Size(), entry.name)
		assert.Equal(entry.code, inst.Bytes(), entry.name)
		assert.Equal(entry.text, inst.String(), entry.name)
	}
}

func TestDecode_LittleEndian(t *testing.T) {
	assert := assert.New(t)

	inst, err := Decode([]byte{'B', 'L', 0x78, 0x56, 0x34, 0x12}, 0)
	assert.NoError(err)
	assert.Equal(int32(0x12345678), inst.Offset)

	inst, err = Decode([]byte{'B', 'N', 0xe5, 0xff, 0xff, 0xff}, 0)
	assert.NoError(err)
	assert.Equal(int32(-27), inst.Offset)
}

func TestDecode_Pc(t *testing.T) {
	assert := assert.New(t)

	code := append(MakeMovi(1, 1), MakeHalt()...)

	inst, err := Decode(code, 3)
	assert.NoError(err)
	assert.Equal(OP_HALT, inst.Opcode)

	// Decoding mid-instruction is allowed; the byte is the opcode.
	inst, err = Decode(code, 1)
	assert.NoError(err)
	assert.Equal(Opcode(1), inst.Opcode)

	_, err = Decode(code, 4)
	assert.ErrorIs(err, ErrPcBounds)

	_, err = Decode(code, 0xffffffff)
	assert.ErrorIs(err, ErrPcBounds)

	_, err = Decode(nil, 0)
	assert.ErrorIs(err, ErrPcBounds)
}

func TestDecode_Truncated(t *testing.T) {
	assert := assert.New(t)

	for _, code := range [][]byte{
		{'A'},
		{'A', 1},
		{'B', 'E', 0, 0, 0},
		{'B'},
	} {
		_, err := Decode(code, 0)
		assert.ErrorIs(err, ErrIllegalInstruction, "%q", code)
		assert.ErrorIs(err, ErrOpcodeTruncated, "%q", code)
	}
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("store", OP_STORE.String())
	assert.Equal("load", OP_LOAD.String())
	assert.Equal("add", OP_ADD.String())
	assert.Equal("sub", OP_SUB.String())
	assert.Equal("movr", OP_MOVR.String())
	assert.Equal("movi", OP_MOVI.String())
	assert.Equal("b", OP_BRANCH.String())
	assert.Equal("halt", OP_HALT.String())
	assert.Equal("Opcode(0)", Opcode(0).String())

	assert.Equal("eq", COND_EQ.String())
	assert.Equal("ne", COND_NE.String())
	assert.Equal("lt", COND_LT.String())
	assert.Equal("Cond(71)", Cond('G').String())
}

func TestOpcode_Valid(t *testing.T) {
	assert := assert.New(t)

	valid := 0
	for op := range 256 {
		if Opcode(op).Valid() {
			valid++
			assert.Contains("SLAUMIBH", string(rune(op)))
		}
	}
	assert.Equal(8, valid)

	for cc := range 256 {
		assert.Equal(cc == 'E' || cc == 'N' || cc == 'L', Cond(cc).Valid(), "cond %d", cc)
	}
}
