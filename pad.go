package blobpack

// marker terminates the payload inside the zero fill.
const marker = 0x80

// pad returns data grown to size bytes: the payload, one marker byte, then
// zero fill. There must be room for the marker, so len(data) must be
// strictly less than size. Pack guarantees that by counting the marker
// toward the blob budget; the check here makes it a hard precondition
// rather than an assumption.
func pad(data []byte, size int) ([]byte, error) {
	if len(data) >= size {
		return nil, Error.New(
			"no room for padding marker: %d bytes into %d",
			len(data),
			size,
		)
	}

	padded := make([]byte, size)
	copy(padded, data)
	padded[len(data)] = marker

	return padded, nil
}

// unpad strips the marker and zero fill, returning the payload. Scanning
// runs backward from the last byte: zeros are fill and the first non zero
// byte must be the marker.
func unpad(padded []byte) ([]byte, error) {
	for i := len(padded) - 1; i >= 0; i-- {
		switch padded[i] {
		case marker:
			return padded[:i], nil
		case 0x00:
			continue
		default:
			return nil, ErrUnpad.New(
				"unexpected byte %#02x at offset %d",
				padded[i],
				i,
			)
		}
	}

	return nil, ErrUnpad.New("no marker found")
}
