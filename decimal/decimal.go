package decimal

import (
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/vlu/integer"
	"github.com/calebcase/vlu/vlu8"
)

// Error classes.
var (
	Error           = errs.Class("decimal")
	SyntaxError     = errs.Class("decimal: syntax")
	OutOfRangeError = errs.Class("decimal: out of range")
)

var ten = big.NewInt(10)

// Block is a fixed point base 10 decimal number: Value * 10^-Scale.
type Block struct {
	Value *integer.Block
	Scale uint32
}

// Parse reads a decimal in the form [+-]digits[.digits]. The scale is the
// number of digits after the point, so trailing zeros are kept.
func Parse(s string) (b *Block, err error) {
	text := s

	negative := false
	if len(text) > 0 && (text[0] == '-' || text[0] == '+') {
		negative = text[0] == '-'
		text = text[1:]
	}

	whole, frac := text, ""
	if i := strings.IndexByte(text, '.'); i >= 0 {
		whole, frac = text[:i], text[i+1:]
	}

	if len(whole)+len(frac) == 0 {
		return nil, SyntaxError.New("%q: no digits", s)
	}

	for _, r := range whole + frac {
		if r < '0' || r > '9' {
			return nil, SyntaxError.New("%q: invalid character %q", s, r)
		}
	}

	if uint64(len(frac)) > math.MaxUint32 {
		return nil, OutOfRangeError.New("%q: too many fraction digits", s)
	}

	digits := whole + frac
	if digits == "" {
		digits = "0"
	}

	i, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, SyntaxError.New("%q", s)
	}

	if negative {
		i.Neg(i)
	}

	return &Block{
		Value: integer.FromBig(i),
		Scale: uint32(len(frac)),
	}, nil
}

// value returns the unscaled value. A nil Value reads as zero.
func (b Block) value() *big.Int {
	if b.Value == nil {
		return new(big.Int)
	}

	return b.Value.Big()
}

// String formats the decimal with exactly Scale fraction digits.
func (b Block) String() string {
	i := b.value()

	digits := new(big.Int).Abs(i).String()
	if pad := int(b.Scale) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	sb := strings.Builder{}
	if i.Sign() < 0 {
		sb.WriteByte('-')
	}

	point := len(digits) - int(b.Scale)
	sb.WriteString(digits[:point])
	if b.Scale > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[point:])
	}

	return sb.String()
}

// Rat returns the exact value of the decimal.
func (b Block) Rat() *big.Rat {
	denom := new(big.Int).Exp(ten, big.NewInt(int64(b.Scale)), nil)

	return new(big.Rat).SetFrac(b.value(), denom)
}

// Rescale returns the same number with the given scale. Reducing the scale is
// only allowed when the dropped digits are zero.
func (b Block) Rescale(scale uint32) (_ *Block, err error) {
	i := b.value()

	switch {
	case scale > b.Scale:
		f := new(big.Int).Exp(ten, big.NewInt(int64(scale-b.Scale)), nil)
		i.Mul(i, f)
	case scale < b.Scale:
		f := new(big.Int).Exp(ten, big.NewInt(int64(b.Scale-scale)), nil)

		var m big.Int
		i.QuoRem(i, f, &m)
		if m.Sign() != 0 {
			return nil, OutOfRangeError.New("%s does not fit scale %d", b, scale)
		}
	}

	return &Block{
		Value: integer.FromBig(i),
		Scale: scale,
	}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The output is the signed
// value followed by the scale, each as a VLU8 chain.
func (b Block) MarshalBinary() (data []byte, err error) {
	defer Error.WrapP(&err)

	value := b.Value
	if value == nil {
		value = &integer.Block{}
	}

	data, err = value.MarshalBinary()
	if err != nil {
		return nil, err
	}

	return vlu8.AppendUint64(data, uint64(b.Scale)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	_, n, err := vlu8.Big(data)
	if err != nil {
		return err
	}

	value := &integer.Block{}

	err = value.UnmarshalBinary(data[:n])
	if err != nil {
		return err
	}

	scale, m, err := vlu8.Uint64(data[n:])
	if err != nil {
		return err
	}

	if n+m != len(data) {
		return Error.New("%d trailing bytes", len(data)-n-m)
	}

	if scale > math.MaxUint32 {
		return OutOfRangeError.New("scale %d", scale)
	}

	b.Value = value
	b.Scale = uint32(scale)

	return nil
}

// Schema represents a configured number format.
type Schema struct {
	// Scale is used for every value when Fixed is set and the scale is
	// then not written to the stream.
	Scale uint32
	Fixed bool
}

// Decoder is a decoder.
type Decoder struct {
	schema Schema
	vd     vlu8.Decoder
	id     *integer.Decoder
}

// NewDecoder returns a new decoder.
func NewDecoder(schema Schema, vd vlu8.Decoder) *Decoder {
	return &Decoder{
		schema: schema,
		vd:     vd,
		id: integer.NewDecoder(integer.Schema{
			Signed: true,
		}, vd),
	}
}

// Decode reads the next block. It returns io.EOF at the end of the stream.
func (d *Decoder) Decode(b *Block) (err error) {
	value := &integer.Block{}

	err = d.id.Decode(value)
	if err != nil {
		if err == io.EOF {
			return err
		}

		return Error.Wrap(err)
	}

	defer Error.WrapP(&err)

	if d.schema.Fixed {
		b.Value = value
		b.Scale = d.schema.Scale

		return nil
	}

	if !d.vd.Next() {
		if err = d.vd.Err(); err != nil {
			return err
		}

		return vlu8.TruncatedError.New("stream ends before scale")
	}

	scale, err := d.vd.Uint64()
	if err != nil {
		return err
	}

	if scale > math.MaxUint32 {
		return OutOfRangeError.New("scale %d", scale)
	}

	b.Value = value
	b.Scale = uint32(scale)

	return nil
}

// Encoder is an encoder.
type Encoder struct {
	schema Schema
	ve     vlu8.Encoder
	ie     *integer.Encoder
}

// NewEncoder returns a new encoder.
func NewEncoder(schema Schema, ve vlu8.Encoder) *Encoder {
	return &Encoder{
		schema: schema,
		ve:     ve,
		ie: integer.NewEncoder(integer.Schema{
			Signed: true,
		}, ve),
	}
}

// Encode writes a block to the encoder. With a fixed schema the block is
// rescaled to the schema scale first.
func (e *Encoder) Encode(b *Block) (err error) {
	defer Error.WrapP(&err)

	if e.schema.Fixed {
		b, err = b.Rescale(e.schema.Scale)
		if err != nil {
			return err
		}

		return e.ie.Encode(b.Value)
	}

	value := b.Value
	if value == nil {
		value = &integer.Block{}
	}

	err = e.ie.Encode(value)
	if err != nil {
		return err
	}

	return e.ve.Uint64(uint64(b.Scale))
}
