package vlu8

import (
	"math/bits"

	"github.com/zeebo/errs"

	"github.com/calebcase/vlu/internal/bitfield"
)

// Error classes.
var (
	Error           = errs.Class("vlu8")
	OutOfRangeError = errs.Class("vlu8: out of range")
	TruncatedError  = errs.Class("vlu8: truncated")
	OverflowError   = errs.Class("vlu8: overflow")
)

const (
	// Max56 is the largest value that fits in a single packet.
	Max56 = 1<<56 - 1

	// MaxSize is the largest packet size in bytes.
	MaxSize = 8

	// MaxChainSize is the largest encoded size of a uint64 in bytes.
	MaxChainSize = 10

	// MaxChain is the number of packets a decoder accepts for a single
	// value.
	MaxChain = 1 << 16

	// PayloadBits is the payload carried by a continuation packet.
	PayloadBits = 56

	continuation = 0xff
)

// Result is the outcome of a scalar encode or decode. For encoders Val is the
// encoded word, for decoders it is the value. Shamt is the packet size in
// bytes, which is also the number of low bits taken by the unary prefix.
type Result struct {
	Val   uint64
	Shamt int
}

// EncodedSize returns the size in bytes of the first packet for num.
func EncodedSize(num uint64) int {
	if num == 0 {
		return 1
	}

	size := 9 - (bits.LeadingZeros64(num)-1)/7
	if size > MaxSize {
		return MaxSize
	}

	return size
}

// DecodedSize returns the size in bytes of the packet starting in the low byte
// of word.
func DecodedSize(word uint64) int {
	size := bits.TrailingZeros64(^word) + 1
	if size > MaxSize {
		return MaxSize
	}

	return size
}

// Continued reports whether the packet in word is followed by another packet
// of the same value.
func Continued(word uint64) bool {
	return word&0xff == continuation
}

// Encode56 encodes a value of at most 56 bits into a single packet.
func Encode56(num uint64) (r Result, err error) {
	if num > Max56 {
		return Result{}, OutOfRangeError.New("%#x does not fit in 56 bits", num)
	}

	// The general formula yields a zero shift for zero.
	if num == 0 {
		return Result{Val: 0, Shamt: 1}, nil
	}

	lz := bits.LeadingZeros64(num)
	t1 := 8 - (lz-1)/7
	shamt := t1 + 1

	return Result{
		Val:   num<<shamt | (1<<(shamt-1) - 1),
		Shamt: shamt,
	}, nil
}

// Decode56 decodes a single packet. Bits above the payload are ignored.
func Decode56(word uint64) Result {
	t1 := bits.TrailingZeros64(^word)
	shamt := t1 + 1
	if shamt > MaxSize {
		shamt = MaxSize
	}

	return Result{
		Val:   word >> shamt & bitfield.Mask(uint(shamt*7)),
		Shamt: shamt,
	}
}

// Encode encodes the first packet of num. Values wider than 56 bits produce a
// continuation packet holding the low 56 bits; the remaining bits, num >> 56,
// belong in the next packet.
func Encode(num uint64) Result {
	if num == 0 {
		return Result{Val: 0, Shamt: 1}
	}

	t1 := 8 - (bits.LeadingZeros64(num)-1)/7
	if t1 >= 8 {
		return Result{Val: num<<8 | continuation, Shamt: 8}
	}

	shamt := t1 + 1

	return Result{
		Val:   num<<shamt | (1<<(shamt-1) - 1),
		Shamt: shamt,
	}
}

// Decode decodes the packet in word. A continuation packet decodes to its 56
// payload bits with Shamt 8; use Continued to tell it apart from a final
// eight byte packet.
func Decode(word uint64) Result {
	t1 := bits.TrailingZeros64(^word)

	shamt := t1 + 1
	if t1 >= 8 {
		shamt = 8
	}

	return Result{
		Val:   word >> shamt & bitfield.Mask(uint(shamt*7)),
		Shamt: shamt,
	}
}
