package vlu8

// EncodeVec packs values into a new buffer.
func EncodeVec(values []uint64) []byte {
	return AppendVec(nil, values)
}

// AppendVec packs values and appends them to dst. The output size is computed
// up front so dst grows at most once.
func AppendVec(dst []byte, values []uint64) []byte {
	size := 0
	for _, v := range values {
		size += ChainSize(v)
	}

	off := len(dst)
	dst = grow(dst, size)

	for _, v := range values {
		off += PutUint64(dst[off:], v)
	}

	return dst
}

func grow(dst []byte, size int) []byte {
	if cap(dst)-len(dst) < size {
		next := make([]byte, len(dst), len(dst)+size)
		copy(next, dst)
		dst = next
	}

	return dst[:len(dst)+size]
}

// ItemsInBuffer returns the number of values packed in buf. A chain cut short
// by the end of buf counts as a value, matching DecodeVec.
func ItemsInBuffer(buf []byte) (count int) {
	open := false
	for off := 0; off < len(buf); {
		word := load64(buf[off:])
		off += DecodedSize(word)

		open = Continued(word)
		if !open {
			count++
		}
	}

	if open {
		count++
	}

	return count
}

// DecodeVec unpacks every value in buf.
//
// When the last packet runs past the end of buf it is decoded with the
// missing bytes as zero, appended, and a TruncatedError is returned with the
// values. A chain wider than 64 bits stops decoding with an OverflowError.
func DecodeVec(buf []byte) (values []uint64, err error) {
	values = make([]uint64, 0, ItemsInBuffer(buf))

	for off := 0; off < len(buf); {
		word := load64(buf[off:])
		r := Decode(word)

		if !Continued(word) && off+r.Shamt <= len(buf) {
			values = append(values, r.Val)
			off += r.Shamt

			continue
		}

		v, n, err := Uint64(buf[off:])
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
