package leb128

import (
	"encoding/binary"
)

// PutUvarint encodes num into dst and returns the number of bytes written. It
// panics if dst is too small.
func PutUvarint(dst []byte, num uint64) (n int) {
	for num >= more {
		dst[n] = byte(num) | more
		num >>= 7
		n++
	}

	dst[n] = byte(num)

	return n + 1
}

// AppendUvarint appends the encoding of num to dst.
func AppendUvarint(dst []byte, num uint64) []byte {
	var buf [MaxVarintSize]byte
	n := PutUvarint(buf[:], num)

	return append(dst, buf[:n]...)
}

// Uvarint decodes the value at the start of buf and returns it with the
// number of bytes consumed. An unterminated value returns what was read with
// a TruncatedError; more than 64 bits return an OverflowError.
func Uvarint(buf []byte) (v uint64, n int, err error) {
	var shift uint
	for i, b := range buf {
		if i == MaxVarintSize-1 && b > 1 || i >= MaxVarintSize {
			return v, i, OverflowError.New("encoding does not fit in 64 bits")
		}

		v |= uint64(b&^more) << shift
		if b&more == 0 {
			return v, i + 1, nil
		}

		shift += 7
	}

	return v, len(buf), TruncatedError.New("encoding ends after %d bytes", len(buf))
}

// EncodeVec packs values into a new buffer.
func EncodeVec(values []uint64) []byte {
	return AppendVec(nil, values)
}

// AppendVec packs values and appends them to dst.
func AppendVec(dst []byte, values []uint64) []byte {
	size := 0
	for _, v := range values {
		size += EncodedSize(v)
	}

	off := len(dst)
	if cap(dst)-len(dst) < size {
		next := make([]byte, len(dst), len(dst)+size)
		copy(next, dst)
		dst = next
	}

	dst = dst[:len(dst)+size]

	for _, v := range values {
		off += PutUvarint(dst[off:], v)
	}

	return dst
}

// ItemsInBuffer returns the number of values packed in buf. An unterminated
// trailing value counts, matching DecodeVec.
func ItemsInBuffer(buf []byte) (count int) {
	for _, b := range buf {
		if b&more == 0 {
			count++
		}
	}

	if len(buf) > 0 && buf[len(buf)-1]&more != 0 {
		count++
	}

	return count
}

// DecodeVec unpacks every value in buf. An unterminated trailing value is
// appended and reported with a TruncatedError.
func DecodeVec(buf []byte) (values []uint64, err error) {
	values = make([]uint64, 0, ItemsInBuffer(buf))

	for off := 0; off < len(buf); {
		if off+8 <= len(buf) {
			word := binary.LittleEndian.Uint64(buf[off:])
			if ^word&stops != 0 {
				r := Decode56(word)
				values = append(values, r.Val)
				off += r.Shamt

				continue
			}
		}

		v, n, err := Uvarint(buf[off:])
		if err != nil {
			if TruncatedError.Has(err) {
				values = append(values, v)
			}

			return values, err
		}

		values = append(values, v)
		off += n
	}

	return values, nil
}
