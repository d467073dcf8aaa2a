package blobpack

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"
)

// Error is the namespace for internal failures.
var Error = oops.Namespace("blobpack")

// Failure classes surfaced by Pack and Unpack. Callers distinguish them
// with Class.Has.
var (
	// ErrDataLength indicates an input violated a size precondition:
	// empty, larger than MaxUsefulBytesPerTx, or a blob of the wrong
	// wire size.
	ErrDataLength = errs.Class("bad data length")

	// ErrUnpad indicates decoded payload bytes held no valid padding
	// marker (corrupted, truncated, or non conforming blob data).
	ErrUnpad = errs.Class("failed to unpad")
)
