package blobpack

// naiveUsableBytesPerElement is the byte aligned width of the naive layout:
// bytes 0-30 of every element are payload, byte 31 stays zero.
const naiveUsableBytesPerElement = NaiveUsableBitsPerElement / 8

func naiveEncode(chunk []byte, blob Blob) {
	for i := 0; i < NaiveFieldElementsPerBlob; i++ {
		copy(
			blob[i*BytesPerFieldElement:],
			chunk[i*naiveUsableBytesPerElement:(i+1)*naiveUsableBytesPerElement],
		)
	}
}

func naiveDecode(blob Blob, chunk []byte) {
	for i := 0; i < NaiveFieldElementsPerBlob; i++ {
		offset := i * BytesPerFieldElement

		copy(
			chunk[i*naiveUsableBytesPerElement:],
			blob[offset:offset+naiveUsableBytesPerElement],
		)
	}
}
