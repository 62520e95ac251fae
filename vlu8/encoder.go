package vlu8

import (
	"io"
	"math/big"
)

// Encoder writes values to a stream.
type Encoder interface {
	Uint64(v uint64) (err error)
	Big(v *big.Int) (err error)
	Written() uint64
}

type encoder struct {
	w io.Writer

	buf     [MaxChainSize]byte
	written uint64
}

// NewEncoder returns an encoder writing to w. Each value is written with a
// single call to w.Write.
func NewEncoder(w io.Writer) Encoder {
	e := &encoder{
		w: w,
	}

	return e
}

func (e *encoder) Uint64(v uint64) (err error) {
	n := PutUint64(e.buf[:], v)

	return e.write(e.buf[:n])
}

func (e *encoder) Big(v *big.Int) (err error) {
	if v.Sign() < 0 {
		return OutOfRangeError.New("negative value: %s", v)
	}

	return e.write(AppendBig(nil, v))
}

func (e *encoder) write(data []byte) (err error) {
	n, err := e.w.Write(data)
	e.written += uint64(n)
	if err != nil {
		return Error.Wrap(err)
	}

	return nil
}

// Written returns the number of bytes written so far.
func (e *encoder) Written() uint64 {
	return e.written
}
