package blobpack

import "github.com/calebcase/blobpack/bits"

// The tight layout treats the chunk as one contiguous bitstream, most
// significant bit first, partitioned into 254 bit groups. Group i lands in
// bits 0-253 of element i; bits 254 and 255 stay zero. Groups straddle byte
// boundaries (254 does not divide 8), so every copy goes through the bits
// package.

func tightEncode(chunk []byte, blob Blob) {
	for i := 0; i < TightFieldElementsPerBlob; i++ {
		offset := i * BytesPerFieldElement
		element := blob[offset : offset+BytesPerFieldElement]

		bits.Copy(
			element, 0,
			chunk, i*TightUsableBitsPerElement,
			TightUsableBitsPerElement,
		)
	}
}

func tightDecode(blob Blob, chunk []byte) {
	for i := 0; i < TightFieldElementsPerBlob; i++ {
		offset := i * BytesPerFieldElement
		element := blob[offset : offset+BytesPerFieldElement]

		bits.Copy(
			chunk, i*TightUsableBitsPerElement,
			element, 0,
			TightUsableBitsPerElement,
		)
	}
}
