// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"log"

	"github.com/ezrec/futamura/dispatch"
	"github.com/ezrec/futamura/vm"
)

// Emulator state. Program + machine + dispatch engine.
type Emulator struct {
	Verbose     bool             // If set, enables verbose logging.
	*vm.Machine                  // Reference to the machine state.
	Program     *vm.Program      // Reference to the running program.
	Engine      *dispatch.Engine // Reference to the dispatch engine.

	input uint32              // r0 at the last reset.
	data  [vm.DATA_SIZE]uint8 // Data segment owned by this emulator.
}

// NewEmulator creates a new emulator for a program. The engine is
// specialized to the program when the variant calls for it.
func NewEmulator(prog *vm.Program, variant dispatch.Variant, bound uint32) (emu *Emulator, err error) {
	emu = &Emulator{
		Program: prog.Clone(),
	}

	emu.Engine, err = dispatch.NewEngine(variant, emu.Program.Code, bound)
	if err != nil {
		emu = nil
		return
	}

	emu.Machine = vm.NewMachine(emu.Engine.Code(), &emu.data)

	return
}

// Reset the machine, with input in r0. The data segment is cleared.
func (emu *Emulator) Reset(input uint32) {
	emu.Machine.Verbose = emu.Verbose

	clear(emu.data[:])
	emu.Machine.Reset(input)
	emu.input = input
}

// Run the program from the last reset to completion, and return r0.
func (emu *Emulator) Run() (output uint32, err error) {
	defer func() {
		if err != nil {
			err = &ErrRun{Input: emu.input, Err: err}
		}
	}()

	emu.Engine.Verbose = emu.Verbose

	if emu.Verbose {
		log.Printf("emulator: %v %v dispatch, bound %d", emu.Program.Name, emu.Engine.Variant, emu.Engine.Bound)
	}

	err = emu.Engine.Run(emu.Machine)
	if err != nil {
		if emu.Verbose {
			log.Printf("emulator: %v\n%v", err, emu.Machine.String())
		}
		return
	}

	output = emu.Machine.Register[0]

	return
}

// Compute resets the machine with input and runs it.
func (emu *Emulator) Compute(input uint32) (output uint32, err error) {
	emu.Reset(input)
	return emu.Run()
}

// Ticks returns the instructions executed by the last run.
func (emu *Emulator) Ticks() int {
	return emu.Engine.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Machine.Pc)
}

// Instruction returns the instruction at the current program counter.
func (emu *Emulator) Instruction() (inst vm.Instruction, err error) {
	return vm.Decode(emu.Machine.Code, emu.Machine.Pc)
}
