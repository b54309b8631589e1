// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/io"
)

func main() {
	var compile string
	var load string
	var save string
	var output string
	var trace bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble")
	flag.StringVar(&load, "l", "", ".ls8 file to load")
	flag.StringVar(&save, "s", "", "Save assembled program to .ls8 file, do not execute")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	// A lone argument is a program file, chosen by extension.
	if flag.NArg() == 1 && len(compile) == 0 && len(load) == 0 {
		if strings.HasSuffix(flag.Arg(0), ".asm") {
			compile = flag.Arg(0)
		} else {
			load = flag.Arg(0)
		}
	} else if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(compile) != 0 && len(load) != 0 {
		atexit.Fatalf("%v: -c and -l are exclusive", os.Args[0])
	}

	if len(compile) == 0 && len(load) == 0 {
		atexit.Fatalf("%v: no program, use -c or -l", os.Args[0])
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	// Compile a new instruction stream.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
		atexit.Register(func() { inf.Close() })

		asm := &cpu.Assembler{Verbose: verbose}
		for key, value := range emu.Defines() {
			asm.Predefine(key, value)
		}
		emu.Program, err = asm.Parse(inf)
		if err != nil {
			atexit.Fatalf("%v: %v", compile, err)
		}
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Register(func() { ouf.Close() })

		err = io.WriteLs8(ouf, emu.Program)
		if err != nil {
			atexit.Fatalf("%v: %v", save, err)
		}
		atexit.Exit(0)
	}

	if len(load) != 0 {
		inf, err := os.Open(load)
		if err != nil {
			atexit.Fatalf("%v: %v", load, err)
		}
		atexit.Register(func() { inf.Close() })
		emu.Loader = &io.Ls8{Input: inf}
	}

	if output == "-" {
		emu.Cpu.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { ouf.Close() })
		emu.Cpu.Output = ouf
	}

	if trace {
		tl := &io.TraceLog{Output: os.Stderr}
		emu.Cpu.Observer = tl.Observe
	}

	err := emu.Reset()
	if err != nil {
		atexit.Fatalf("%v", err)
	}

	err = emu.Run()
	if err != nil {
		log.Print(err)
		if verbose {
			log.Printf("\n%v", emu.Cpu.String())
		}
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
