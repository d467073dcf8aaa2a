package bits

// Get returns bit off of buf (0 or 1).
func Get(buf []byte, off int) byte {
	return buf[off/8] >> (7 - uint(off%8)) & 1
}

// Set sets bit off of buf to v. Any non zero v sets the bit.
func Set(buf []byte, off int, v byte) {
	mask := byte(1) << (7 - uint(off%8))

	if v == 0 {
		buf[off/8] &^= mask
	} else {
		buf[off/8] |= mask
	}
}

// Copy copies n bits from src starting at bit srcOff into dst starting at
// bit dstOff. Bits outside the destination run keep their value. Both runs
// must lie within their slices (indexing panics otherwise) and must not
// overlap in memory.
func Copy(dst []byte, dstOff int, src []byte, srcOff int, n int) {
	// Byte aligned prefixes need no shifting at all.
	if dstOff%8 == 0 && srcOff%8 == 0 {
		whole := n / 8

		copy(dst[dstOff/8:dstOff/8+whole], src[srcOff/8:srcOff/8+whole])

		dstOff += whole * 8
		srcOff += whole * 8
		n -= whole * 8
	}

	for ; n >= 8; n -= 8 {
		writeByte(dst, dstOff, readByte(src, srcOff))

		dstOff += 8
		srcOff += 8
	}

	for ; n > 0; n-- {
		Set(dst, dstOff, Get(src, srcOff))

		dstOff++
		srcOff++
	}
}

// readByte reads the 8 bits at off, which may straddle two bytes.
func readByte(src []byte, off int) byte {
	i, s := off/8, uint(off%8)

	if s == 0 {
		return src[i]
	}

	return src[i]<<s | src[i+1]>>(8-s)
}

// writeByte writes the 8 bits of v at off, which may straddle two bytes,
// preserving the surrounding bits.
func writeByte(dst []byte, off int, v byte) {
	i, s := off/8, uint(off%8)

	if s == 0 {
		dst[i] = v

		return
	}

	dst[i] = dst[i]&(0xff<<(8-s)) | v>>s
	dst[i+1] = dst[i+1]&(0xff>>s) | v<<(8-s)
}
