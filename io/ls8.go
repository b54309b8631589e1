package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/ls8/cpu"
)

// Ls8 reads a program in the .ls8 text format: one 8 digit binary
// byte per line. Text after '#' is a comment and blank lines are ignored.
type Ls8 struct {
	Input io.Reader
}

var _ Loader = (*Ls8)(nil)

// Binary parses the whole input into a program image.
func (lc *Ls8) Binary() (data []uint8, err error) {
	if lc.Input == nil {
		err = ErrLs8Empty
		return
	}

	scanner := bufio.NewScanner(lc.Input)

	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno++

		line, _, _ := strings.Cut(text, "#")
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		if len(words) != 1 || len(words[0]) != 8 {
			err = &ErrLs8Line{LineNo: lineno, Line: text, Err: ErrLs8Syntax}
			return
		}

		var value uint64
		value, err = strconv.ParseUint(words[0], 2, 8)
		if err != nil {
			err = &ErrLs8Line{LineNo: lineno, Line: text, Err: ErrLs8Syntax}
			return
		}

		data = append(data, uint8(value))
	}

	err = scanner.Err()
	return
}

// WriteLs8 writes an assembled program in the .ls8 text format.
// The source words are kept as a comment on the first byte of each line.
func WriteLs8(w io.Writer, prog *cpu.Program) (err error) {
	bw := bufio.NewWriter(w)

	for _, op := range prog.Opcodes {
		for n, value := range op.Bytes {
			if n == 0 {
				_, err = fmt.Fprintf(bw, "%08b # %s\n", value, strings.Join(op.Words, " "))
			} else {
				_, err = fmt.Fprintf(bw, "%08b\n", value)
			}
			if err != nil {
				return
			}
		}
	}

	err = bw.Flush()
	return
}
