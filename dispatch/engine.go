// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dispatch implements the fetch-decode-execute engine in three
// interchangeable variants.
//
// VARIANT_GENERIC decodes the instruction at the live pc on every step.
// VARIANT_PC builds one specialized body per pc below a bound, and looks
// the body up by pc on every step. VARIANT_TRANSITION also links every
// body to its successor bodies, so control passes from body to body
// without a pc lookup; the links form the control flow graph of the
// program itself.
package dispatch

import (
	"bytes"
	"iter"
	"log"
	"slices"

	"github.com/ezrec/futamura/vm"
)

const (
	PC_BOUND  = 64      // Default specialization bound.
	MAX_BOUND = 1 << 16 // Largest accepted specialization bound.
)

// Engine drives a machine until it halts or faults.
type Engine struct {
	Verbose bool    // If set, traces every instruction.
	Variant Variant // Dispatch variant.
	Bound   uint32  // Specialization bound for pc.
	Ticks   int     // Instructions executed by the last Run.

	code   []byte // Code the bodies are specialized to.
	bodies []body // Specialized bodies, indexed by pc.
}

// NewEngine creates an engine for a program. A zero bound selects PC_BOUND.
func NewEngine(variant Variant, code []byte, bound uint32) (eng *Engine, err error) {
	if bound == 0 {
		bound = PC_BOUND
	}

	if bound > MAX_BOUND {
		err = ErrBoundInvalid
		return
	}

	switch variant {
	case VARIANT_GENERIC, VARIANT_PC, VARIANT_TRANSITION:
		// pass
	default:
		err = ErrVariantInvalid
		return
	}

	eng = &Engine{
		Variant: variant,
		Bound:   bound,
		code:    slices.Clone(code),
	}

	if variant.Specialized() {
		eng.specialize()
	}

	if variant == VARIANT_TRANSITION {
		eng.link()
	}

	return
}

// specialize builds a body for every pc below the bound.
func (eng *Engine) specialize() {
	eng.bodies = make([]body, eng.Bound)
	for pc := range eng.Bound {
		eng.bodies[pc] = specialize(eng.code, pc)
	}
}

// successor returns the body to transfer to for pc.
func (eng *Engine) successor(pc uint32) *body {
	if pc >= eng.Bound {
		return tooLarge(pc)
	}
	return &eng.bodies[pc]
}

// link resolves the successor bodies of every body.
func (eng *Engine) link() {
	for n := range eng.bodies {
		b := &eng.bodies[n]
		if b.err != nil || b.halt {
			continue
		}
		b.on_next = eng.successor(b.next)
		if b.inst.Opcode == vm.OP_BRANCH {
			b.on_jump = eng.successor(b.jump)
		}
	}
}

// Transitions iterates over the control transfers of the linked bodies
// reachable from pc 0, as (from, to) pairs. A branch yields its fallthrough
// edge before its taken edge. Only VARIANT_TRANSITION engines have links.
func (eng *Engine) Transitions() iter.Seq2[uint32, uint32] {
	return func(yield func(from, to uint32) bool) {
		if eng.Variant != VARIANT_TRANSITION || len(eng.bodies) == 0 {
			return
		}

		seen := map[*body]bool{}
		work := []*body{&eng.bodies[0]}
		for len(work) > 0 {
			b := work[0]
			work = work[1:]
			if seen[b] {
				continue
			}
			seen[b] = true
			for _, succ := range []*body{b.on_next, b.on_jump} {
				if succ == nil {
					continue
				}
				if !yield(b.pc, succ.pc) {
					return
				}
				work = append(work, succ)
			}
		}
	}
}

// trace logs an instruction about to execute.
func (eng *Engine) trace(pc uint32, inst vm.Instruction) {
	if eng.Verbose {
		log.Printf("pc %02x: %v", pc, inst)
	}
}

// Run executes the machine from its current pc until a halt or a fault.
func (eng *Engine) Run(m *vm.Machine) (err error) {
	eng.Ticks = 0

	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: m.Pc, Err: err}
		}
	}()

	if eng.Variant.Specialized() && !bytes.Equal(m.Code, eng.code) {
		err = ErrCodeMismatch
		return
	}

	switch eng.Variant {
	case VARIANT_GENERIC:
		err = eng.runGeneric(m)
	case VARIANT_PC:
		err = eng.runPc(m)
	case VARIANT_TRANSITION:
		err = eng.runTransition(m)
	default:
		err = ErrVariantInvalid
	}

	if err == nil && eng.Verbose {
		log.Printf("halt")
	}

	return
}

// runGeneric decodes at the live pc on every step.
func (eng *Engine) runGeneric(m *vm.Machine) (err error) {
	for {
		var inst vm.Instruction
		inst, err = vm.Decode(m.Code, m.Pc)
		if err != nil {
			return
		}

		eng.trace(m.Pc, inst)

		var halt bool
		halt, err = m.Execute(inst)
		if err != nil {
			return
		}

		eng.Ticks++

		if halt {
			return
		}
	}
}

// runPc looks up the specialized body for the pc on every step.
func (eng *Engine) runPc(m *vm.Machine) (err error) {
	for {
		if m.Pc >= eng.Bound {
			err = ErrPcTooLarge
			return
		}

		b := &eng.bodies[m.Pc]
		if b.err == nil {
			eng.trace(b.pc, b.inst)
		}

		var taken, halt bool
		taken, halt, err = b.run(m)
		if err != nil {
			return
		}

		eng.Ticks++

		switch {
		case halt:
			return
		case taken:
			m.Pc = b.jump
		default:
			m.Pc = b.next
		}
	}
}

// runTransition looks up the body for the entry pc only, then follows
// the successor links.
func (eng *Engine) runTransition(m *vm.Machine) (err error) {
	b := eng.successor(m.Pc)

	for {
		if b.err == nil {
			eng.trace(b.pc, b.inst)
		}

		var taken, halt bool
		taken, halt, err = b.run(m)
		if err != nil {
			return
		}

		eng.Ticks++

		switch {
		case halt:
			return
		case taken:
			m.Pc = b.jump
			b = b.on_jump
		default:
			m.Pc = b.next
			b = b.on_next
		}
	}
}

// Code returns the code the engine was built for.
func (eng *Engine) Code() []byte {
	return eng.code
}
