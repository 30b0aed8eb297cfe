// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/futamura/dispatch"
	"github.com/ezrec/futamura/emulator"
	"github.com/ezrec/futamura/translate"
	"github.com/ezrec/futamura/vm"
)

var f = translate.From

var (
	ErrUsage = errors.New(f("invalid usage"))
)

// run parses the command line, runs the fibonacci program, and reports
// the result to stdout.
func run(args []string, stdout io.Writer, stderr io.Writer) (err error) {
	var variant string
	var bound uint
	var verbose bool
	var list bool

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		translate.Fprintf(stderr, "usage: %v [options] N\n", args[0])
		flags.PrintDefaults()
	}

	flags.StringVar(&variant, "s", dispatch.VARIANT_GENERIC.String(), "Dispatch variant (generic, pc, transition; or 0, 1, 2)")
	flags.UintVar(&bound, "b", dispatch.PC_BOUND, "Specialization bound for pc")
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&list, "l", false, "List the program before running")

	err = flags.Parse(args[1:])
	if err != nil {
		err = errors.Join(ErrUsage, err)
		return
	}

	if flags.NArg() != 1 {
		flags.Usage()
		err = ErrUsage
		return
	}

	input, err := strconv.ParseUint(flags.Arg(0), 10, 32)
	if err != nil {
		flags.Usage()
		err = errors.Join(ErrUsage, err)
		return
	}

	kind, err := dispatch.ParseVariant(variant)
	if err != nil {
		flags.Usage()
		err = errors.Join(ErrUsage, err)
		return
	}

	if bound > dispatch.MAX_BOUND {
		flags.Usage()
		err = errors.Join(ErrUsage, dispatch.ErrBoundInvalid)
		return
	}

	prog := vm.Fibonacci()
	if list {
		translate.Fprintf(stdout, "%v", prog.String())
	}

	emu, err := emulator.NewEmulator(prog, kind, uint32(bound))
	if err != nil {
		return
	}
	emu.Verbose = verbose

	emu.Reset(uint32(input))
	translate.Fprintf(stdout, "register r0 input is: %v\n", strconv.FormatUint(uint64(emu.Machine.Register[0]), 10))

	output, err := emu.Run()
	if err != nil {
		return
	}

	translate.Fprintf(stdout, "halt\n")
	translate.Fprintf(stdout, "register r0 output is: %v\n", strconv.FormatUint(uint64(output), 10))

	if verbose {
		log.Printf("%v: %d instructions", kind, emu.Ticks())
	}

	return
}

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)

	switch {
	case err == nil:
		// pass
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case errors.Is(err, ErrUsage):
		log.Fatalf("%v", ErrUsage)
	case errors.Is(err, vm.ErrIllegalInstruction):
		log.Fatalf("%v: %v", vm.ErrIllegalInstruction, err)
	case errors.Is(err, dispatch.ErrPcTooLarge):
		log.Fatalf("%v: %v", dispatch.ErrPcTooLarge, err)
	default:
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
