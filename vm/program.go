package vm

import (
	"fmt"
	"iter"
	"slices"
)

// FIBONACCI computes the nth fibonacci number, with f(0) = f(1) = 1.
// r0 is both the parameter and the result. The result is passed back
// through data[0], so only its low byte survives.
const FIBONACCI = "" +
	"M\x03\x00" + // 00: r3 := r0
	"I\x01\x01" + // 03: r1 := 1
	"I\x02\x01" + // 06: r2 := 1

	// if r3 < 2 -> done
	"I\x04\x02" + // 09: r4 := 2
	"M\x05\x03" + // 0c: r5 := r3
	"U\x05\x04" + // 0f: r5 := r5 - r4
	"BL\x21\x00\x00\x00" + // 12: blt 0x33

	// loop
	"I\x05\x01" + // 18: r5 := 1
	"U\x03\x05" + // 1b: r3 := r3 - r5
	"M\x04\x02" + // 1e: r4 := r2
	"A\x02\x01" + // 21: r2 := r2 + r1
	"M\x01\x04" + // 24: r1 := r4
	"M\x06\x03" + // 27: r6 := r3
	"U\x06\x05" + // 2a: r6 := r6 - r5
	"BN\xeb\xff\xff\xff" + // 2d: if r3 != 1 -> bne 0x18

	// done
	"I\x00\x00" + // 33: r0 := 0
	"S\x00\x02" + // 36: *r0 := r2
	"L\x00\x00" + // 39: r0 := *r0
	"H" // 3c: halt

// Program is a named code segment.
type Program struct {
	Name string
	Code []byte
}

// Fibonacci returns a fresh copy of the fibonacci program.
func Fibonacci() *Program {
	return &Program{
		Name: "fibonacci",
		Code: []byte(FIBONACCI),
	}
}

// Instructions iterates over the linear listing of the program, from pc 0
// until the end of the code or the first instruction that cannot be decoded.
func (prog *Program) Instructions() iter.Seq2[uint32, Instruction] {
	return func(yield func(pc uint32, inst Instruction) bool) {
		var pc uint32
		for {
			inst, err := Decode(prog.Code, pc)
			if err != nil {
				return
			}
			if !yield(pc, inst) {
				return
			}
			if !inst.Opcode.Valid() {
				return
			}
			pc += inst.Size()
		}
	}
}

// Clone returns a deep copy of the program.
func (prog *Program) Clone() *Program {
	return &Program{
		Name: prog.Name,
		Code: slices.Clone(prog.Code),
	}
}

// String returns a listing of the program.
func (prog *Program) String() (text string) {
	text = fmt.Sprintf("%v: %d bytes\n", prog.Name, len(prog.Code))
	for pc, inst := range prog.Instructions() {
		text += fmt.Sprintf("%02x: %v\n", pc, inst)
	}

	return
}
