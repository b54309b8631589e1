package io_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

var _ = Describe("TraceLog", func() {
	var (
		buf *bytes.Buffer
		tl  *io.TraceLog
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		tl = &io.TraceLog{Output: buf}
	})

	It("should format a single trace", func() {
		tl.Observe(cpu.Trace{
			Pc:       0x1f,
			Opcode:   cpu.CODE_ADD,
			OperandA: 1,
			OperandB: 2,
			Register: [cpu.REGISTER_COUNT]uint8{1, 2, 3, 4, 5, 6, 0xfe, 0xf4},
		})
		Expect(buf.String()).To(Equal("TRACE: 1F | A0 01 02 | 01 02 03 04 05 06 FE F4\n"))
	})

	It("should observe every cycle of a running cpu", func() {
		c := cpu.NewCpu()
		c.Output = &bytes.Buffer{}
		c.Observer = tl.Observe
		Expect(c.Load([]uint8{cpu.CODE_LDI, 2, 0x33, cpu.CODE_HLT})).To(Succeed())

		Expect(c.Run()).To(Succeed())
		Expect(buf.String()).To(Equal(
			"TRACE: 00 | 82 02 33 | 00 00 33 00 00 00 00 F4\n" +
				"TRACE: 03 | 01 00 00 | 00 00 33 00 00 00 00 F4\n"))
	})

	It("should not observe a faulting cycle", func() {
		c := cpu.NewCpu()
		c.Observer = tl.Observe
		Expect(c.Load([]uint8{0xff})).To(Succeed())

		Expect(c.Run()).To(MatchError(cpu.ErrOpcodeUnknown))
		Expect(buf.String()).To(BeEmpty())
	})
})
