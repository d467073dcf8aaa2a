package blobpack

// Wire layout facts shared by both strategies.
const (
	// BytesPerFieldElement is the on wire size of a field element,
	// including its reserved bits.
	BytesPerFieldElement = 32

	// MaxBlobsPerTx is the maximum number of blobs one transaction may
	// carry.
	MaxBlobsPerTx = 2
)

// Per strategy element counts and usable widths.
const (
	NaiveFieldElementsPerBlob = 1016
	NaiveUsableBitsPerElement = 248

	TightFieldElementsPerBlob = 4096
	TightUsableBitsPerElement = 254
)

// Blob is one blob on the wire: FieldElementsPerBlob consecutive 32 byte
// field elements. Its length depends on the strategy that produced it (see
// Strategy.BlobSize).
type Blob []byte
