package io

import (
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/ls8/cpu"
)

// TraceLog writes one line per executed instruction:
//
//	TRACE: pc | opcode a b | r0 r1 r2 r3 r4 r5 r6 r7
type TraceLog struct {
	Output io.Writer
}

// Observe formats a cpu.Trace. It is suitable for use as cpu.Cpu.Observer.
func (tl *TraceLog) Observe(trace cpu.Trace) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |",
		trace.Pc, trace.Opcode, trace.OperandA, trace.OperandB)
	for _, reg := range trace.Register {
		fmt.Fprintf(&sb, " %02X", reg)
	}
	sb.WriteByte('\n')

	io.WriteString(tl.Output, sb.String())
}
