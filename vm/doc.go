// Package vm implements the machine state, decoder, instruction semantics
// and branch unit of a small register-machine bytecode interpreter.
//
// The machine has sixteen 32-bit general-purpose registers (r0-r15), a
// flags register holding the Negative, Zero and Overflow bits computed by
// the last arithmetic instruction, a program counter into an immutable code
// segment, and a 256-byte data segment addressed by sign-extended 8-bit
// register values.
//
// Instructions are a one byte tag followed by a fixed, tag-dependent
// operand payload. The package also carries the compiled-in fibonacci
// program used by the dispatch engines and the CLI.
package vm
