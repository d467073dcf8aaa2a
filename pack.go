package blobpack

// Pack encodes data into the minimum number of blobs. It fails with
// ErrDataLength if data is empty or longer than MaxUsefulBytesPerTx.
func (s Strategy) Pack(data []byte) ([]Blob, error) {
	if len(data) == 0 {
		return nil, ErrDataLength.New("no data")
	}
	if len(data) > s.MaxUsefulBytesPerTx() {
		return nil, ErrDataLength.New(
			"%d bytes given, at most %d fit in one tx",
			len(data),
			s.MaxUsefulBytesPerTx(),
		)
	}

	usable := s.UsableBytesPerBlob()

	// The marker byte travels with the payload and counts toward the
	// blob budget, so an exact multiple of the blob capacity spills
	// into one more blob.
	needed := len(data) + 1
	n := (needed + usable - 1) / usable

	padded, err := pad(data, n*usable)
	if err != nil {
		return nil, Error.Trace(err)
	}

	blobs := make([]Blob, n)
	for i := range blobs {
		blobs[i] = make(Blob, s.BlobSize())
		s.encode(padded[i*usable:(i+1)*usable], blobs[i])
	}

	return blobs, nil
}

// Unpack reverses Pack. Blob order is significant: blob i holds payload
// chunk i. Every blob must be BlobSize bytes (ErrDataLength otherwise); the
// blob count is not cross validated against any declared capacity. It fails
// with ErrUnpad when the decoded bytes hold no valid padding marker.
func (s Strategy) Unpack(blobs []Blob) ([]byte, error) {
	for i, b := range blobs {
		if len(b) != s.BlobSize() {
			return nil, ErrDataLength.New(
				"blob %d is %d bytes, expected %d",
				i,
				len(b),
				s.BlobSize(),
			)
		}
	}

	usable := s.UsableBytesPerBlob()

	padded := make([]byte, len(blobs)*usable)
	for i, b := range blobs {
		s.decode(b, padded[i*usable:(i+1)*usable])
	}

	return unpad(padded)
}
