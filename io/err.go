package io

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrLs8Syntax = errors.New(f(".ls8 syntax"))
	ErrLs8Empty  = errors.New(f(".ls8 input missing"))
)

// ErrLs8Line indicates the location of a .ls8 syntax error.
type ErrLs8Line struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLs8Line) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLs8Line) Unwrap() error {
	return err.Err
}
