// Package cpu implements the LS-8 microprocessor and its assembler.
//
// The CPU consists of 256 bytes of memory, eight 8-bit general-purpose
// registers (r0-r7, with r7 used as the stack pointer by convention), a
// program counter, a flags register and an ALU. Instructions are one opcode
// byte followed by zero, one or two operand bytes; the operand count of every
// opcode comes from a single opcode table.
//
// The assembler provides a small assembly language for the LS-8 instruction
// set, supporting labels, equates, raw data and compile-time expression
// evaluation.
package cpu
