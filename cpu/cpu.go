package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"
	"strings"
)

// State is the execution state of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING = State(0) // running
	STATE_HALTED  = State(1) // halted
	STATE_FAULTED = State(2) // faulted
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"SP_INIT":     fmt.Sprintf("0x%x", SP_INIT),
	"REG_IM":      fmt.Sprintf("%v", REG_IM),
	"REG_IS":      fmt.Sprintf("%v", REG_IS),
	"REG_SP":      fmt.Sprintf("%v", REG_SP),
}

// Trace is the CPU state recorded after a completed instruction cycle.
// Operands that the instruction does not use are zero.
type Trace struct {
	Pc       int                   // Address of the instruction.
	Opcode   uint8                 // Opcode byte.
	OperandA uint8                 // First operand byte.
	OperandB uint8                 // Second operand byte.
	Register [REGISTER_COUNT]uint8 // Registers after execution.
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Output   io.Writer   // Destination of PRN output.
	Observer func(Trace) // If set, called after every completed cycle.

	Memory   Memory    // Main memory.
	Register Registers // Register bank.
	Pc       int       // Program counter.
	Fl       uint8     // Flags.
	Im       uint8     // Interrupt mask (reserved).
	Is       uint8     // Interrupt status (reserved).

	Ticks int // CPU ticks counter.

	state State
	fault error
}

// NewCpu creates a new CPU in the reset state, printing to stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: os.Stdout,
	}
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "fl", "state",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
		case "fl":
			strval = fmt.Sprintf("%08b", cpu.Fl)
		case "state":
			strval = cpu.state.String()
		default:
			val := cpu.Register.Data[reg[1]-'0']
			strval = fmt.Sprintf("%02X", val)
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, and sets the stack pointer.
// - Zeros the program counter, flags and statistics counters.
// - Returns to the running state.
// Memory is left untouched.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Register.Reset()
	cpu.Pc = 0
	cpu.Fl = 0
	cpu.Im = 0
	cpu.Is = 0
	cpu.Ticks = 0
	cpu.state = STATE_RUNNING
	cpu.fault = nil
}

// Load a program into memory at address 0.
func (cpu *Cpu) Load(program []uint8) (err error) {
	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// State returns the current execution state.
func (cpu *Cpu) State() State {
	return cpu.state
}

// Fault returns the fault that stopped the CPU, if any.
func (cpu *Cpu) Fault() error {
	return cpu.fault
}

// Halted returns true once HLT has executed.
func (cpu *Cpu) Halted() bool {
	return cpu.state == STATE_HALTED
}

// Run ticks the CPU until it halts or faults.
// A clean halt returns nil, a fault returns an *ErrFault.
func (cpu *Cpu) Run() (err error) {
	for cpu.state == STATE_RUNNING {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return cpu.fault
}

// Tick executes a single CPU instruction cycle.
// Once halted or faulted no further cycles execute.
func (cpu *Cpu) Tick() (err error) {
	switch cpu.state {
	case STATE_HALTED:
		return
	case STATE_FAULTED:
		return cpu.fault
	}

	pc := cpu.Pc
	trace, err := cpu.Execute()
	if err != nil {
		cpu.state = STATE_FAULTED
		cpu.fault = &ErrFault{Pc: pc, Err: err}
		if cpu.Verbose {
			log.Printf("cpu: %v", cpu.fault)
		}
		return cpu.fault
	}

	cpu.Ticks += 1

	if cpu.Observer != nil {
		cpu.Observer(trace)
	}

	return
}

// fetch reads the opcode and the operands it declares.
func (cpu *Cpu) fetch() (ins Instruction, operands [2]uint8, err error) {
	code, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	ins, err = Decode(code)
	if err != nil {
		err = errors.Join(ErrOpcode(code), err)
		return
	}

	for n := range ins.Operands {
		operands[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
			return
		}
	}

	return
}

// Execute fetches, decodes and executes the instruction at the program
// counter. The CPU state is unchanged on error.
func (cpu *Cpu) Execute() (trace Trace, err error) {
	ins, operands, err := cpu.fetch()
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(ins.Code), err)
		}
	}()

	if cpu.Verbose {
		log.Printf("%02x: %v", cpu.Pc, disassemble(ins, operands))
	}

	a, b := int(operands[0]), int(operands[1])
	next_pc := cpu.Pc + ins.Size()

	switch ins.Class {
	case OP_CONTROL:
		switch ins.Code {
		case CODE_HLT:
			cpu.state = STATE_HALTED
		default:
			err = ErrOpcodeUnknown
			return
		}
	case OP_DATA:
		switch ins.Code {
		case CODE_LDI:
			err = cpu.Register.Set(a, b)
		case CODE_PRN:
			var value uint8
			value, err = cpu.Register.Get(a)
			if err != nil {
				return
			}
			out := cpu.Output
			if out == nil {
				out = io.Discard
			}
			_, err = fmt.Fprintf(out, "%d\n", value)
		default:
			err = ErrOpcodeUnknown
		}
		if err != nil {
			return
		}
	case OP_ALU:
		err = Alu(ins.AluOp, &cpu.Register, a, b)
		if err != nil {
			return
		}
	default:
		err = ErrOpcodeUnknown
		return
	}

	trace = Trace{
		Pc:       cpu.Pc,
		Opcode:   ins.Code,
		OperandA: operands[0],
		OperandB: operands[1],
		Register: cpu.Register.Data,
	}

	cpu.Pc = next_pc

	return
}

// disassemble formats an instruction and its operands.
func disassemble(ins Instruction, operands [2]uint8) string {
	words := []string{ins.Mnemonic}
	for n := range ins.Operands {
		words = append(words, fmt.Sprintf("0x%02x", operands[n]))
	}

	return strings.Join(words, " ")
}
