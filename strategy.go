package blobpack

// Strategy describes how one blob's worth of payload bytes is laid out
// across field elements. The padding and assembly pipeline is identical for
// every strategy; only the element layout and the derived capacities differ.
type Strategy struct {
	Name string

	// FieldElementsPerBlob is the number of 32 byte field elements in
	// one blob.
	FieldElementsPerBlob int

	// UsableBitsPerElement is the number of payload bits each field
	// element carries. The remaining bits stay zero to keep the element
	// below the field modulus.
	UsableBitsPerElement int

	// encode lays chunk (UsableBytesPerBlob payload bytes) out into
	// blob (BlobSize bytes, zero filled). decode is its exact inverse.
	encode func(chunk []byte, blob Blob)
	decode func(blob Blob, chunk []byte)
}

// UsableBytesPerBlob returns the number of payload bytes one blob carries.
func (s Strategy) UsableBytesPerBlob() int {
	return s.FieldElementsPerBlob * s.UsableBitsPerElement / 8
}

// BlobSize returns the on wire size of one blob in bytes.
func (s Strategy) BlobSize() int {
	return s.FieldElementsPerBlob * BytesPerFieldElement
}

// MaxUsefulBytesPerTx returns the largest payload Pack accepts. One byte of
// total capacity is reserved for the padding marker.
func (s Strategy) MaxUsefulBytesPerTx() int {
	return s.UsableBytesPerBlob()*MaxBlobsPerTx - 1
}

var (
	// Naive packs 31 bytes into each field element, byte aligned.
	Naive = Strategy{
		Name:                 "naive",
		FieldElementsPerBlob: NaiveFieldElementsPerBlob,
		UsableBitsPerElement: NaiveUsableBitsPerElement,
		encode:               naiveEncode,
		decode:               naiveDecode,
	}

	// Tight packs 254 bits into each field element, crossing byte
	// boundaries.
	Tight = Strategy{
		Name:                 "tight",
		FieldElementsPerBlob: TightFieldElementsPerBlob,
		UsableBitsPerElement: TightUsableBitsPerElement,
		encode:               tightEncode,
		decode:               tightDecode,
	}

	// Strategies lists every packing strategy.
	Strategies = []Strategy{
		Naive,
		Tight,
	}
)
