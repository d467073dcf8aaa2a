// Package blobpack packs arbitrary byte buffers into fixed size blobs
// suitable for blob carrying transactions. A blob is an array of 32 byte
// field elements and a field element must encode a value below the field
// modulus, so only a subset of its bits may carry payload. Packing produces
// the minimum number of blobs for a payload; unpacking losslessly recovers
// the payload from the blob sequence.
//
// Two strategies solve the same problem, trading efficiency for encoding
// simplicity:
//
//  * Naive packs 31 of the 32 bytes of each field element (248 bits), byte
//    aligned. Simple indexing, no bit shifting, roughly 3% overhead.
//  * Tight packs 254 of the 256 bits of each field element, crossing byte
//    boundaries. Maximal density, requires bit level slicing.
//
// Field Element Layout
//
// Naive reserves the final byte of every element:
//
//  | byte 0 .. byte 30 | byte 31   |
//  |-------------------|-----------|
//  | payload           | 0000 0000 |
//
// Tight reserves the final two bits of every element. Payload bits are laid
// down most significant bit first and groups straddle byte boundaries (254
// does not divide 8):
//
//  | bit 0 .. bit 253    | bit 254 | bit 255 |
//  |---------------------|---------|---------|
//  | payload (MSB first) | 0       | 0       |
//
// Keeping the reserved bits zero guarantees structurally that every element
// is below the modulus; no value is ever checked against it.
//
// Padding
//
// Payloads rarely fill a whole number of blobs. Before encoding, a single
// 0x80 marker byte is appended after the payload and the remainder is zero
// filled up to the blob boundary:
//
//  | payload | 1000 0000 | 0000 0000 ... |
//
// Unpacking scans from the end: zeros are fill and the first non zero byte
// must be the marker. The marker travels with the payload, so it counts
// toward the blob budget, and one byte of total transaction capacity is
// reserved for it. That is why MaxUsefulBytesPerTx subtracts one.
//
// A blob carries no header, length prefix, checksum, or version. The
// payload length is recovered solely by the marker scan.
package blobpack
