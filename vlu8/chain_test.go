package vlu8_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/oops"
	"github.com/calebcase/vlu/vlu8"
)

func TestChain(t *testing.T) {
	type TC struct {
		Input  uint64
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{
			Input:  0,
			Output: []byte{0b_0000_0000},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  0x7f,
			Output: []byte{0b_1111_1110},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  0x80,
			Output: []byte{0b_0000_0001, 0b_0000_0010},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  vlu8.Max56,
			Output: []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  1 << 56,
			Output: []byte{0xff, 0, 0, 0, 0, 0, 0, 0, 0b_0000_0010},
			Mark:   oops.New("unexpected"),
		},
		{
			Input:  0x7f00000000000000,
			Output: []byte{0xff, 0, 0, 0, 0, 0, 0, 0, 0b_1111_1110},
			Mark:   oops.New("unexpected"),
		},
		{
			Input: 0xffffffffffffffff,
			Output: []byte{
				0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
				0b_1111_1101, 0b_0000_0011,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%#x", i, tc.Input), func(t *testing.T) {
			require.Equal(t, len(tc.Output), vlu8.ChainSize(tc.Input), tc.Mark)

			output := vlu8.AppendUint64(nil, tc.Input)
			require.Equal(t, tc.Output, output, tc.Mark)

			v, n, err := vlu8.Uint64(output)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, len(tc.Output), n, tc.Mark)
			require.Equal(t, tc.Input, v, tc.Mark)

			x, n, err := vlu8.Big(output)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, len(tc.Output), n, tc.Mark)
			require.Zero(t, new(big.Int).SetUint64(tc.Input).Cmp(x), tc.Mark)
		})
	}
}

func TestChainRange(t *testing.T) {
	var buf [vlu8.MaxChainSize]byte

	for shift := 0; shift < 64; shift++ {
		for _, v := range []uint64{1 << shift, 1<<shift - 1, 1<<shift | 1} {
			n := vlu8.PutUint64(buf[:], v)
			require.Equal(t, vlu8.ChainSize(v), n, "%#x", v)

			d, m, err := vlu8.Uint64(buf[:n])
			require.NoError(t, err, "%#x", v)
			require.Equal(t, n, m, "%#x", v)
			require.Equal(t, v, d, "%#x", v)
		}
	}
}

func TestChainTruncated(t *testing.T) {
	data := vlu8.AppendUint64(nil, 0xffffffffffffffff)

	for cut := 0; cut < len(data); cut++ {
		v, n, err := vlu8.Uint64(data[:cut])
		require.Error(t, err, "cut=%d", cut)
		require.True(t, vlu8.TruncatedError.Has(err), "cut=%d: %v", cut, err)
		require.Equal(t, cut, n, "cut=%d", cut)

		if cut > 0 && cut < 8 {
			require.Equal(t, uint64(0x00ffffffffffffff)>>(8*(8-cut)), v, "cut=%d", cut)
		}
	}
}

func TestChainOverflow(t *testing.T) {
	type TC struct {
		Input []byte
		Mark  error
	}

	tcs := []TC{
		{
			// Second packet carries 9 bits.
			Input: []byte{0xff, 0, 0, 0, 0, 0, 0, 0, 0b_0000_0001, 0b_0000_0100},
			Mark:  oops.New("unexpected"),
		},
		{
			// Three packets.
			Input: []byte{
				0xff, 0, 0, 0, 0, 0, 0, 0,
				0xff, 0, 0, 0, 0, 0, 0, 0,
				0b_0000_0010,
			},
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			_, _, err := vlu8.Uint64(tc.Input)
			require.Error(t, err, tc.Mark)
			require.True(t, vlu8.OverflowError.Has(err), tc.Mark)

			x, n, err := vlu8.Big(tc.Input)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, len(tc.Input), n, tc.Mark)
			require.Greater(t, x.BitLen(), 64, tc.Mark)
		})
	}
}

func TestBig(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	inputs := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Lsh(big.NewInt(1), 56),
		new(big.Int).Lsh(big.NewInt(1), 112),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1)),
	}

	for i := 0; i < 100; i++ {
		inputs = append(inputs, new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(rng.Intn(600)))))
	}

	for _, x := range inputs {
		data := vlu8.AppendBig(nil, x)
		require.Equal(t, vlu8.BigSize(x), len(data), spew.Sdump(x, data))

		y, n, err := vlu8.Big(data)
		require.NoError(t, err)
		require.Equal(t, len(data), n)
		require.Zero(t, x.Cmp(y), spew.Sdump(x, y, data))

		if x.IsUint64() {
			require.Equal(t, vlu8.AppendUint64(nil, x.Uint64()), data)
		}
	}

	t.Run("sign ignored", func(t *testing.T) {
		require.Equal(t,
			vlu8.AppendBig(nil, big.NewInt(300)),
			vlu8.AppendBig(nil, big.NewInt(-300)),
		)
	})
}
