// Package vlu8 implements VLU8, the Variable Length Unary integer coding with
// an 8 bit basic unit.
//
// VLU is a little-endian variable length integer coding that prefixes the
// payload bits with a unary coded length. The length is recovered by counting
// the trailing one bits of the first byte, a single bit count instruction,
// instead of testing a continuation bit in every byte as LEB128 does.
//
// Packet
//
// This diagram shows the first byte of a packet (bit 0 on the left) and the
// number of bytes that follow it. A run of k one bits terminated by a zero
// bit announces k additional bytes. The payload starts right after the
// terminating zero.
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Bytes | Payload bits |
//  |---------------|---------------||-------|--------------|
//  | 0 |                           || 1     | 7            |
//  | 1 . 0 |                       || 2     | 14           |
//  | 1 . 1 . 0 |                   || 3     | 21           |
//  | 1 . 1 . 1 . 0 |               || 4     | 28           |
//  | 1 . 1 . 1 . 1 . 0 |           || 5     | 35           |
//  | 1 . 1 . 1 . 1 . 1 . 0 |       || 6     | 42           |
//  | 1 . 1 . 1 . 1 . 1 . 1 . 0 |   || 7     | 49           |
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 0 || 8     | 56           |
//  | 1 . 1 . 1 . 1 . 1 . 1 . 1 . 1 || 8 + … | 56 + more    |
//  |---------------|---------------||-------|--------------|
//
// Zero is the single byte 0x00.
//
// Encoding a value that fits in 56 bits:
//
//	shamt   = 8 - (clz(num) - 1) / 7 + 1
//	encoded = num << shamt | (1 << (shamt - 1)) - 1
//
// Decoding:
//
//	shamt = ctz(^encoded) + 1
//	num   = encoded >> shamt & (1 << (shamt * 7)) - 1
//
// Continuation
//
// When all eight bits of the first byte are set the packet is eight bytes
// long, holds 56 payload bits and is followed by another packet carrying the
// next 56 bits of the same value. A value is therefore a chain of packets,
// least significant limb first, where every packet but the last starts with
// 0xff. The last packet is an ordinary packet and is never zero unless the
// chain is a single packet. A uint64 needs at most two packets (10 bytes);
// arbitrary width values are supported through math/big.
//
// Buffers
//
// EncodeVec and DecodeVec pack and unpack slices of values. DecodeVec reads a
// 64 bit window at every packet, zero padding the window at the end of the
// buffer instead of reading past it. A buffer whose last packet is cut short
// decodes with the missing bytes as zeros and the call reports a
// TruncatedError. Buffers that were not produced by this package may decode
// to garbage; that can not be detected.
package vlu8
