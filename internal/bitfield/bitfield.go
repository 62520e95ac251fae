// Package bitfield provides helpers for reading and writing bit fields packed
// into a uint64 word. Bit 0 is the least significant bit.
package bitfield

// Mask returns a mask of the low width bits. Widths of 64 or more select the
// whole word.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<width - 1
}

// Extract returns the width bits of value starting at offset.
func Extract(value uint64, offset, width uint) uint64 {
	if offset >= 64 {
		return 0
	}

	return (value >> offset) & Mask(width)
}

// Insert returns the low width bits of value moved to offset.
func Insert(value uint64, offset, width uint) uint64 {
	if offset >= 64 {
		return 0
	}

	return (value & Mask(width)) << offset
}

// Replace overwrites the width bits of orig at offset with the low bits of
// replacement.
func Replace(orig, replacement uint64, offset, width uint) uint64 {
	if offset >= 64 {
		return orig
	}

	return orig&^(Mask(width)<<offset) | Insert(replacement, offset, width)
}
