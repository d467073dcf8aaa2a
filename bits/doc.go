// Package bits provides MSB first bit addressing over byte slices.
//
// Bit 0 of a slice is the most significant bit of byte 0, bit 8 the most
// significant bit of byte 1, and so on:
//
//  | byte 0                        | byte 1                          |
//  |-------------------------------|---------------------------------|
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 | 8 | 9 | 10 | 11 | 12 | ...      |
//
// Copy moves a run of bits between arbitrary offsets on either side,
// including runs that straddle byte boundaries on both ends. Offsets and
// lengths are expressed in bits throughout.
package bits
