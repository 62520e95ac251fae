package vlu8

import (
	"errors"
	"io"
	"math/big"
)

// Decoder reads values from a stream one chain at a time.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Consumed() uint64
	Data() []byte

	Uint64() (_ uint64, err error)
	Big() (_ *big.Int, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	packet [MaxSize]byte
	data   []byte

	err error
}

// NewDecoder returns a decoder reading from r. It reads exactly the bytes of
// each chain, so r does not need to be buffered for correctness.
func NewDecoder(r io.Reader) Decoder {
	d := &decoder{
		r: r,
	}

	return d
}

// Next reads the next chain. It returns false at the end of the stream or on
// error; Err distinguishes the two.
//
// When the stream ends inside a chain Err is a TruncatedError and Data keeps
// the partial chain, so Uint64 and Big still return its zero padded value
// alongside the TruncatedError, as DecodeVec does.
func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	d.data = d.data[:0]

	for packets := 0; ; packets++ {
		if packets >= MaxChain {
			d.err = OverflowError.New("chain longer than %d packets", MaxChain)

			return false
		}

		n, err := io.ReadFull(d.r, d.packet[:1])
		d.consumed += uint64(n)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF) && packets == 0:
				// Clean end of stream.
			case errors.Is(err, io.EOF):
				d.err = TruncatedError.New("stream ends inside a chain")
			default:
				d.err = Error.Wrap(err)
			}

			return false
		}

		size := DecodedSize(uint64(d.packet[0]))

		n, err = io.ReadFull(d.r, d.packet[1:size])
		d.consumed += uint64(n)
		d.data = append(d.data, d.packet[:1+n]...)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				d.err = TruncatedError.New(
					"stream ends inside a packet of %d bytes",
					size,
				)
			} else {
				d.err = Error.Wrap(err)
			}

			return false
		}

		if d.packet[0] != continuation {
			return true
		}
	}
}

// Err returns the error that stopped Next, if any.
func (d *decoder) Err() error {
	return d.err
}

// Consumed returns the number of bytes read from the stream.
func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the raw bytes of the current chain, or of the partial chain
// after a TruncatedError. The slice is reused by the next call to Next.
func (d *decoder) Data() []byte {
	return d.data
}

// Uint64 decodes the current chain.
func (d *decoder) Uint64() (_ uint64, err error) {
	v, _, err := Uint64(d.data)

	return v, err
}

// Big decodes the current chain of any width.
func (d *decoder) Big() (_ *big.Int, err error) {
	x, _, err := Big(d.data)

	return x, err
}
