// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = value * 10 ^ -scale
//
// Where number is fixed point number, value is an unscaled signed integer,
// and scale is the count of digits after the decimal point. For example:
//
//  1.23 = 123 * 10^-2
//
// Value is unbounded. Scale is up to 2^32 - 1.
//
// Encoding
//
// The decimal is laid out first by the unscaled integer value (with sign bit)
// as described by package integer, then the scale as an unsigned VLU8 chain.
// Both chains are self delimiting so a stream of decimals needs no framing.
//
// When the schema fixes the scale, only the value is written and every
// decoded block takes the schema scale.
//
// Examples
//
// Zero (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 | 0 | 0 . 0 . 0 . 0 . 0 . 0 | Value 0, 1 byte packet.
//  |-------------------------------|
//  | 0 | 0 . 0 . 0 . 0 . 0 . 0 . 0 | Scale 0, 1 byte packet.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD -0.0001 (2 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 0 | 1 | 1 . 0 . 0 . 0 . 0 . 0 | Value -1, 1 byte packet.
//  |-------------------------------|
//  | 0 | 0 . 0 . 1 . 0 . 0 . 0 . 0 | Scale 4, 1 byte packet.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// USD 20.47 (3 bytes)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |---------------|---------------|
//  | 1 . 0 | 0 | 1 . 1 . 1 . 1 . 1 | Value +2047, 2 byte packet.
//  | 1 . 1 . 1 . 1 . 1 . 1 . 0 . 0 |
//  |-------------------------------|
//  | 0 | 0 . 1 . 0 . 0 . 0 . 0 . 0 | Scale 2, 1 byte packet.
//  |---------------|---------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Bits are drawn least significant first: bit 0 of the first byte is the
// leftmost column.
package decimal
