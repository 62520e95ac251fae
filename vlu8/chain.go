package vlu8

import (
	"encoding/binary"
	"math/big"
)

// load64 reads the little-endian word at the start of buf. Missing bytes past
// the end of buf read as zero.
func load64(buf []byte) uint64 {
	if len(buf) >= 8 {
		return binary.LittleEndian.Uint64(buf)
	}

	var scratch [8]byte
	copy(scratch[:], buf)

	return binary.LittleEndian.Uint64(scratch[:])
}

// store writes the low size bytes of word to dst in little-endian order.
func store(dst []byte, word uint64, size int) {
	if size < 1 || size > MaxSize {
		panic(Error.New("invalid packet size: %d", size))
	}

	if size == 8 {
		binary.LittleEndian.PutUint64(dst, word)

		return
	}

	_ = dst[size-1]
	for i := 0; i < size; i++ {
		dst[i] = byte(word >> (8 * i))
	}
}

// ChainSize returns the number of bytes needed to encode num including any
// continuation packets.
func ChainSize(num uint64) int {
	if num > Max56 {
		return MaxSize + EncodedSize(num>>PayloadBits)
	}

	return EncodedSize(num)
}

// PutUint64 encodes num into dst and returns the number of bytes written. It
// panics if dst is too small; ChainSize or MaxChainSize bytes are enough.
func PutUint64(dst []byte, num uint64) (n int) {
	for {
		r := Encode(num)
		store(dst[n:], r.Val, r.Shamt)
		n += r.Shamt

		if !Continued(r.Val) {
			return n
		}

		num >>= PayloadBits
	}
}

// AppendUint64 appends the encoding of num to dst.
func AppendUint64(dst []byte, num uint64) []byte {
	var buf [MaxChainSize]byte
	n := PutUint64(buf[:], num)

	return append(dst, buf[:n]...)
}

// Uint64 decodes the chain at the start of buf and returns the value and the
// number of bytes consumed.
//
// If buf ends inside the chain the missing bytes read as zero, the returned
// value is the zero padded decoding, n is len(buf) and err is a
// TruncatedError. Chains wider than 64 bits return an OverflowError.
func Uint64(buf []byte) (v uint64, n int, err error) {
	for i := 0; ; i++ {
		if n >= len(buf) {
			return v, n, TruncatedError.New("chain ends after %d bytes", n)
		}

		word := load64(buf[n:])
		r := Decode(word)

		switch {
		case i == 0:
			v = r.Val
		case i == 1 && r.Val>>(64-PayloadBits) == 0:
			v |= r.Val << PayloadBits
		default:
			return v, n, OverflowError.New("chain does not fit in 64 bits")
		}

		if n+r.Shamt > len(buf) {
			return v, len(buf), TruncatedError.New(
				"packet of %d bytes at offset %d exceeds buffer of %d bytes",
				r.Shamt,
				n,
				len(buf),
			)
		}

		n += r.Shamt

		if !Continued(word) {
			return v, n, nil
		}
	}
}

var max56 = new(big.Int).SetUint64(Max56)

// BigSize returns the number of bytes needed to encode the magnitude of x.
func BigSize(x *big.Int) int {
	if x.BitLen() <= PayloadBits {
		return EncodedSize(new(big.Int).Abs(x).Uint64())
	}

	limbs := (x.BitLen() - 1) / PayloadBits
	top := new(big.Int).Abs(x)
	top.Rsh(top, uint(limbs*PayloadBits))

	return limbs*MaxSize + EncodedSize(top.Uint64())
}

// AppendBig appends the encoding of the magnitude of x to dst. The sign is
// not encoded; package integer handles signed values.
func AppendBig(dst []byte, x *big.Int) []byte {
	rest := new(big.Int).Abs(x)
	limb := new(big.Int)

	var buf [MaxSize]byte
	for rest.BitLen() > PayloadBits {
		limb.And(rest, max56)
		store(buf[:], limb.Uint64()<<8|continuation, MaxSize)
		dst = append(dst, buf[:]...)

		rest.Rsh(rest, PayloadBits)
	}

	r := Encode(rest.Uint64())
	store(buf[:], r.Val, r.Shamt)

	return append(dst, buf[:r.Shamt]...)
}

// Big decodes the chain at the start of buf into a new big.Int. Truncation is
// handled as in Uint64. Chains longer than MaxChain packets return an
// OverflowError.
func Big(buf []byte) (x *big.Int, n int, err error) {
	x = new(big.Int)
	limb := new(big.Int)

	for i := 0; ; i++ {
		if i >= MaxChain {
			return x, n, OverflowError.New("chain longer than %d packets", MaxChain)
		}

		if n >= len(buf) {
			return x, n, TruncatedError.New("chain ends after %d bytes", n)
		}

		word := load64(buf[n:])
		r := Decode(word)

		limb.SetUint64(r.Val)
		limb.Lsh(limb, uint(i*PayloadBits))
		x.Or(x, limb)

		if n+r.Shamt > len(buf) {
			return x, len(buf), TruncatedError.New(
				"packet of %d bytes at offset %d exceeds buffer of %d bytes",
				r.Shamt,
				n,
				len(buf),
			)
		}

		n += r.Shamt

		if !Continued(word) {
			return x, n, nil
		}
	}
}
