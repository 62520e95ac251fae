// Package leb128 implements unsigned LEB128, the little-endian base 128
// variable length integer coding, as a comparator for package vlu8.
//
// Each byte carries 7 payload bits, least significant group first, and bit 7
// is set when another byte follows. The scalar functions work on values of up
// to 56 bits packed into a single little-endian word, mirroring the vlu8
// scalar API. The vector functions use the unbounded form, up to 10 bytes per
// uint64.
package leb128

import (
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/calebcase/vlu/internal/bitfield"
)

// Error classes.
var (
	Error           = errs.Class("leb128")
	OutOfRangeError = errs.Class("leb128: out of range")
	TruncatedError  = errs.Class("leb128: truncated")
	OverflowError   = errs.Class("leb128: overflow")
)

const (
	// Max56 is the largest value the scalar word codec accepts.
	Max56 = 1<<56 - 1

	// MaxSize is the largest scalar packet size in bytes.
	MaxSize = 8

	// MaxVarintSize is the largest encoded size of a uint64 in bytes.
	MaxVarintSize = 10

	more  = 0x80
	stops = 0x8080808080808080
)

// Result is the outcome of a scalar encode or decode. For encoders Val is the
// encoded word, for decoders it is the value. Shamt is the size in bytes.
type Result struct {
	Val   uint64
	Shamt int
}

// EncodedSize returns the number of bytes needed to encode num.
func EncodedSize(num uint64) int {
	if num == 0 {
		return 1
	}

	return (bits.Len64(num) + 6) / 7
}

// DecodedSize returns the number of bytes of the encoding that starts in the
// low byte of word. Words with no terminating byte report MaxSize.
func DecodedSize(word uint64) int {
	last := ^word & stops
	if last == 0 {
		return MaxSize
	}

	return bits.TrailingZeros64(last)/8 + 1
}

// Encode56 encodes num, at most 56 bits, into a little-endian word.
func Encode56(num uint64) (r Result, err error) {
	if num > Max56 {
		return Result{}, OutOfRangeError.New("%#x does not fit in 56 bits", num)
	}

	var leb uint64
	for i := 0; i < MaxSize; i++ {
		b := bitfield.Extract(num, 0, 7)
		num >>= 7
		if num != 0 {
			b |= more
		}

		leb = bitfield.Replace(leb, b, uint(i*8), 8)

		if num == 0 {
			return Result{Val: leb, Shamt: i + 1}, nil
		}
	}

	panic(Error.New("unterminated encoding"))
}

// Decode56 decodes the encoding in the low bytes of word. Bytes after the
// terminating byte are ignored.
func Decode56(word uint64) Result {
	var num uint64
	for i := 0; i < MaxSize; i++ {
		b := bitfield.Extract(word, uint(i*8), 8)
		num |= bitfield.Insert(b, uint(i*7), 7)

		if b&more == 0 {
			return Result{Val: num, Shamt: i + 1}
		}
	}

	return Result{Val: num, Shamt: MaxSize}
}
