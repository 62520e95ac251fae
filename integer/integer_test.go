package integer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/vlu/vlu8"
)

func TestMarshalUnmarshal(t *testing.T) {
	type TC struct {
		name string
		blk  *Block
		data []byte
	}

	tcs := []TC{
		{
			name: "+0",
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "+1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0100,
			},
		},
		{
			name: "-1",
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
			data: []byte{
				0b0000_0110,
			},
		},
		{
			name: "-127",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1101,
				0b0000_0011,
			},
		},
		{
			name: "+127",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b1111_1001,
				0b0000_0011,
			},
		},
		{
			name: "+32767",
			blk: &Block{
				Value: []byte{
					0b0111_1111,
					0b1111_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b1111_0011,
				0b1111_1111,
				0b0000_0111,
			},
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.blk.MarshalBinary()
				require.NoError(t, err)
				require.Equal(t, tc.data, data)
			})

			t.Run("unmarshal", func(t *testing.T) {
				blk := &Block{}
				err := blk.UnmarshalBinary(tc.data)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)
				require.Zero(t, i.Cmp(blk.Big()))
			})
		})
	}

	t.Run("negative zero", func(t *testing.T) {
		data, err := Block{Value: []byte{0}, Negative: true}.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, []byte{0}, data)
	})

	t.Run("trailing", func(t *testing.T) {
		err := (&Block{}).UnmarshalBinary([]byte{0b0000_0100, 0})
		require.Error(t, err)
		require.True(t, Error.Has(err))
	})

	t.Run("truncated", func(t *testing.T) {
		err := (&Block{}).UnmarshalBinary([]byte{0b1111_0011, 0b1111_1111})
		require.Error(t, err)
		require.True(t, vlu8.TruncatedError.Has(err))
	})
}

func TestInt64(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 63, -64, 1 << 40, -1 << 62, -1 << 63, 1<<63 - 1} {
		blk := FromInt64(v)

		data, err := blk.MarshalBinary()
		require.NoError(t, err)

		out := &Block{}
		require.NoError(t, out.UnmarshalBinary(data))

		got, err := out.Int64()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	_, err := FromBig(new(big.Int).Lsh(big.NewInt(1), 63)).Int64()
	require.True(t, OutOfRangeError.Has(err))
}

func TestEncodeDecode(t *testing.T) {
	type TC struct {
		name   string
		schema Schema
		blk    *Block
		data   []byte
	}

	tcs := []TC{
		{
			name: "0",
			schema: Schema{
				Bits: 64,
			},
			blk: &Block{
				Value: []byte{
					0b0000_0000,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0000,
			},
		},
		{
			name: "1",
			schema: Schema{
				Bits: 64,
			},
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0010,
			},
		},
		{
			name: "+1",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: false,
			},
			data: []byte{
				0b0000_0100,
			},
		},
		{
			name: "-1",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0000_0001,
				},
				Negative: true,
			},
			data: []byte{
				0b0000_0110,
			},
		},
		{
			name: "-63",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0011_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1110,
			},
		},
		{
			name: "+63",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0011_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b1111_1100,
			},
		},
		{
			name: "+4095",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0000_1111,
					0b1111_1111,
				},
				Negative: false,
			},
			data: []byte{
				0b1111_1001,
				0b0111_1111,
			},
		},
		{
			name: "-524287",
			schema: Schema{
				Bits:   64,
				Signed: true,
			},
			blk: &Block{
				Value: []byte{
					0b0000_0111,
					0b1111_1111,
					0b1111_1111,
				},
				Negative: true,
			},
			data: []byte{
				0b1111_1011,
				0b1111_1111,
				0b0111_1111,
			},
		},
		{
			name: "-26187124863169134960105517574620793217733136368344518315866330944769070371237396439066160738607233257207093473020480568073738052367083144426628220715007",
			schema: Schema{
				Bits:   504,
				Signed: true,
			},
			blk: &Block{
				Value:    append([]byte{0b0111_1111}, bytes.Repeat([]byte{0b1111_1111}, 62)...),
				Negative: true,
			},
			data: append(
				bytes.Repeat([]byte{0b1111_1111}, 8*8),
				append([]byte{0b0111_1111}, bytes.Repeat([]byte{0b1111_1111}, 7)...)...,
			),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)

			t.Run("encode", func(t *testing.T) {
				enc := NewEncoder(tc.schema, vlu8.NewEncoder(buf))
				err := enc.Encode(tc.blk)
				require.NoError(t, err)
				require.Equal(t, tc.data, buf.Bytes())
			})

			t.Run("decode", func(t *testing.T) {
				dec := NewDecoder(tc.schema, vlu8.NewDecoder(buf))
				blk := &Block{}
				err := dec.Decode(blk)
				require.NoError(t, err)
				require.Equal(t, tc.blk, blk)

				// These checks ensure that our test case name matches the value.
				i := new(big.Int)
				err = i.UnmarshalText([]byte(tc.name))
				require.NoError(t, err)

				bs := i.Bytes()
				if len(bs) == 0 {
					bs = []byte{0}
				}
				require.Equal(t, bs, blk.Value)

				if i.Sign() < 0 {
					require.True(t, blk.Negative)
				} else {
					require.False(t, blk.Negative)
				}

				err = dec.Decode(blk)
				require.True(t, errors.Is(err, io.EOF))
			})
		})
	}
}

func TestSchema(t *testing.T) {
	buf := bytes.NewBuffer(nil)

	enc := NewEncoder(Schema{Bits: 8}, vlu8.NewEncoder(buf))
	err := enc.Encode(&Block{Value: []byte{0x01, 0x00}})
	require.True(t, OutOfRangeError.Has(err))

	err = enc.Encode(&Block{Value: []byte{0x01}, Negative: true})
	require.True(t, OutOfRangeError.Has(err))
	require.Zero(t, buf.Len())

	require.NoError(t, enc.Encode(&Block{Value: []byte{0xff}}))
	require.NoError(t, NewEncoder(Schema{}, vlu8.NewEncoder(buf)).Encode(&Block{Value: []byte{0x01, 0x00}}))

	dec := NewDecoder(Schema{Bits: 8}, vlu8.NewDecoder(buf))
	blk := &Block{}
	require.NoError(t, dec.Decode(blk))
	require.Equal(t, []byte{0xff}, blk.Value)

	// A rejected value leaves the block as it was.
	err = dec.Decode(blk)
	require.True(t, OutOfRangeError.Has(err))
	require.Equal(t, &Block{Value: []byte{0xff}}, blk)

	buf.Write([]byte{0b0000_0110})
	signed := NewDecoder(Schema{Bits: 8, Signed: true}, vlu8.NewDecoder(buf))
	neg := &Block{Value: []byte{0x02}}
	require.NoError(t, signed.Decode(neg))
	require.Equal(t, &Block{Value: []byte{0x01}, Negative: true}, neg)
}

func BenchmarkEncode(b *testing.B) {
	buf := bytes.NewBuffer(nil)
	ve := vlu8.NewEncoder(buf)

	schema := Schema{
		Bits:   64,
		Signed: true,
	}
	enc := NewEncoder(schema, ve)

	blk := &Block{
		Value: []byte{
			0b0000_0111,
			0b1111_1111,
			0b1111_1111,
		},
		Negative: true,
	}

	for n := 0; n < b.N; n++ {
		err := enc.Encode(blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := []byte{
		0b1111_1011,
		0b1111_1111,
		0b0111_1111,
	}

	blk := Block{}

	for n := 0; n < b.N; n++ {
		buf := bytes.NewBuffer(data)
		vd := vlu8.NewDecoder(buf)

		schema := Schema{
			Bits:   64,
			Signed: true,
		}
		dec := NewDecoder(schema, vd)

		err := dec.Decode(&blk)
		if err != nil {
			b.Fatalf("%+v", err)
		}
	}
}
