package io_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/io"
)

var _ = Describe("Ls8", func() {
	parse := func(lines ...string) ([]uint8, error) {
		loader := &io.Ls8{Input: strings.NewReader(strings.Join(lines, "\n"))}
		return loader.Binary()
	}

	Context("Binary", func() {
		It("should read one byte per line", func() {
			data, err := parse(
				"# print8.ls8",
				"",
				"10000010 # LDI R0,8",
				"00000000",
				"00001000",
				"01000111 # PRN R0",
				"00000000",
				"   00000001   # HLT",
			)
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}))
		})

		It("should accept an empty program", func() {
			data, err := parse("# nothing here", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(BeEmpty())
		})

		It("should reject short numbers", func() {
			_, err := parse("00000001", "0101")
			Expect(err).To(MatchError(io.ErrLs8Syntax))

			var line *io.ErrLs8Line
			Expect(err).To(BeAssignableToTypeOf(line))
			Expect(err.(*io.ErrLs8Line).LineNo).To(Equal(2))
		})

		It("should reject non-binary digits", func() {
			_, err := parse("00000002")
			Expect(err).To(MatchError(io.ErrLs8Syntax))
		})

		It("should reject extra words", func() {
			_, err := parse("00000001 00000001")
			Expect(err).To(MatchError(io.ErrLs8Syntax))
		})

		It("should require an input", func() {
			_, err := (&io.Ls8{}).Binary()
			Expect(err).To(MatchError(io.ErrLs8Empty))
		})
	})

	Context("WriteLs8", func() {
		It("should round trip an assembled program", func() {
			asm := &cpu.Assembler{}
			prog, err := asm.Parse(strings.NewReader("LDI R0,8\nPRN R0\nHLT\n"))
			Expect(err).NotTo(HaveOccurred())

			buf := &bytes.Buffer{}
			Expect(io.WriteLs8(buf, prog)).To(Succeed())
			Expect(buf.String()).To(Equal(strings.Join([]string{
				"10000010 # LDI R0 8",
				"00000000",
				"00001000",
				"01000111 # PRN R0",
				"00000000",
				"00000001 # HLT",
				"",
			}, "\n")))

			image, err := prog.Binary()
			Expect(err).NotTo(HaveOccurred())

			data, err := (&io.Ls8{Input: buf}).Binary()
			Expect(err).NotTo(HaveOccurred())
			Expect(data).To(Equal(image))
		})
	})
})

var _ = Describe("Rom", func() {
	It("should return a copy of its data", func() {
		rom := &io.Rom{Data: []uint8{cpu.CODE_HLT}}

		data, err := rom.Binary()
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]uint8{cpu.CODE_HLT}))

		data[0] = 0
		Expect(rom.Data[0]).To(Equal(cpu.CODE_HLT))
	})
})
