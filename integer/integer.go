// Package integer encodes signed integers of any width as VLU8 chains.
//
// Signed values use a sign-magnitude layout: the magnitude is shifted left by
// one bit and bit 0 holds the sign. Small magnitudes of either sign therefore
// stay in one byte (-63 to +63) and the chain grows with the magnitude.
package integer

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/vlu/vlu8"
)

// Error classes.
var (
	Error           = errs.Class("integer")
	OutOfRangeError = errs.Class("integer: out of range")
)

// Block is a signed integer number. Value is the big-endian magnitude.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block for v.
func FromInt64(v int64) *Block {
	return FromBig(big.NewInt(v))
}

// FromBig returns the block for x.
func FromBig(x *big.Int) *Block {
	return &Block{
		Value:    magnitude(new(big.Int).Abs(x)),
		Negative: x.Sign() < 0,
	}
}

// Big returns the value of the block.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Int64 returns the value of the block if it fits in an int64.
func (b Block) Int64() (int64, error) {
	i := b.Big()
	if !i.IsInt64() {
		return 0, OutOfRangeError.New("%s does not fit in 64 bits", i)
	}

	return i.Int64(), nil
}

// magnitude returns the big-endian bytes of i.
func magnitude(i *big.Int) []byte {
	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// pack returns the sign-magnitude form of b. Negative zero packs as zero.
func pack(b *Block) *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	negative := b.Negative && i.Sign() != 0

	i.Lsh(i, 1)
	if negative {
		i.SetBit(i, 0, 1)
	}

	return i
}

// unpack sets b from the sign-magnitude form i. i is modified.
func unpack(b *Block, i *big.Int) {
	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)
	b.Value = magnitude(i)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	return vlu8.AppendBig(nil, pack(&b)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	i, n, err := vlu8.Big(data)
	if err != nil {
		return err
	}

	if n != len(data) {
		return Error.New("%d trailing bytes", len(data)-n)
	}

	unpack(b, i)

	return nil
}

// Schema for an integer.
type Schema struct {
	// Bits limits the width of the magnitude. Zero means unbounded.
	Bits uint64

	Signed bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	vd     vlu8.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, vd vlu8.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		vd:     vd,
	}
}

// Decode reads the next block. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode(b *Block) (err error) {
	if !d.vd.Next() {
		if err = d.vd.Err(); err != nil {
			return Error.Wrap(err)
		}

		return io.EOF
	}

	defer Error.WrapP(&err)

	i, err := d.vd.Big()
	if err != nil {
		return err
	}

	out := Block{}
	if d.schema.Signed {
		unpack(&out, i)
	} else {
		out.Value = magnitude(i)
	}

	if d.schema.Bits != 0 && uint64(new(big.Int).SetBytes(out.Value).BitLen()) > d.schema.Bits {
		return OutOfRangeError.New("magnitude exceeds %d bits", d.schema.Bits)
	}

	*b = out

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ve     vlu8.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ve vlu8.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ve:     ve,
	}
}

// Encode writes a block to the encoder.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	i := new(big.Int).SetBytes(b.Value)

	if e.schema.Bits != 0 && uint64(i.BitLen()) > e.schema.Bits {
		return OutOfRangeError.New("magnitude exceeds %d bits", e.schema.Bits)
	}

	if e.schema.Signed {
		i = pack(b)
	} else if b.Negative && i.Sign() != 0 {
		return OutOfRangeError.New("negative value for unsigned schema")
	}

	return e.ve.Big(i)
}
