// Package zerr defines the typed error taxonomy shared by the frame and
// block decoders.
package zerr

import "fmt"

type constError string

func (err constError) Error() string {
	return string(err)
}

const (
	// ErrTruncated is returned when a read runs past the end of the input,
	// or a pre-flight length check fails before a header, block body,
	// block checksum, or content checksum is read.
	ErrTruncated constError = "lz4frame truncated"

	// ErrCorrupted is returned when the input is well-formed enough to
	// parse but violates an LZ4 frame or block invariant.
	ErrCorrupted constError = "lz4frame corrupted"

	// ErrMagic is a specific cause of ErrCorrupted: the frame magic did
	// not match the supported LZ4 frame magic number.
	ErrMagic constError = "lz4frame bad magic"

	// ErrVersion is a specific cause of ErrCorrupted: the FLG version
	// bits did not equal the one supported frame version.
	ErrVersion constError = "lz4frame unsupported version"

	// ErrReserveBitSet is a specific cause of ErrCorrupted: the reserved
	// FLG bit was set. Reserved BD bits are reported as ErrBlockDescriptor.
	ErrReserveBitSet constError = "lz4frame reserved bit set"

	// ErrBlockDescriptor is a specific cause of ErrCorrupted: the BD byte
	// carried a nonzero reserved bit.
	ErrBlockDescriptor constError = "lz4frame invalid BD byte"

	// ErrHeaderHash is a specific cause of ErrCorrupted: the header XXH32
	// checksum did not match.
	ErrHeaderHash constError = "lz4frame header hash mismatch"

	// ErrBlockHash is a specific cause of ErrCorrupted: a per-block XXH32
	// checksum did not match.
	ErrBlockHash constError = "lz4frame block hash mismatch"

	// ErrBadOffset is a specific cause of ErrCorrupted: a match offset was
	// zero or exceeded the current output length.
	ErrBadOffset constError = "lz4frame bad match offset"

	// ErrContentSize is a specific cause of ErrCorrupted: the declared
	// content size did not match the produced output length.
	ErrContentSize constError = "lz4frame content size mismatch"

	// ErrContentHash is the sentinel wrapped by ChecksumMismatchError when
	// the content-level XXH32 checksum does not match.
	ErrContentHash constError = "lz4frame content hash mismatch"

	// ErrUnsupported is returned for recognized-but-unimplemented LZ4
	// features: a dictionary ID, a content size or length accumulator
	// that overflows the host's index type, or output exceeding a
	// caller-supplied ceiling.
	ErrUnsupported constError = "lz4frame unsupported feature"

	// ErrDictId is a specific cause of ErrUnsupported: the header carried
	// a dictionary ID and preset dictionaries are not implemented.
	ErrDictId constError = "lz4frame dictionary id"

	// ErrLenOverflow is a specific cause of ErrUnsupported: a literal or
	// match length extension overflowed the host's int.
	ErrLenOverflow constError = "lz4frame length overflow"

	// ErrContentSzRange is a specific cause of ErrUnsupported: the
	// declared content size exceeds the host's addressable buffer length.
	ErrContentSzRange constError = "lz4frame content size exceeds host range"

	// ErrOutputLimit is a specific cause of ErrUnsupported: the output
	// grew past the ceiling set with WithMaxOutputSize.
	ErrOutputLimit constError = "lz4frame output limit exceeded"
)

// WrapCorrupted joins 'err' to the broad ErrCorrupted sentinel so callers
// may errors.Is against either the specific cause or the general kind.
func WrapCorrupted(err error) error {
	return fmt.Errorf("%w: %w", ErrCorrupted, err)
}

// WrapTruncated joins 'err' to the broad ErrTruncated sentinel.
func WrapTruncated(err error) error {
	return fmt.Errorf("%w: %w", ErrTruncated, err)
}

// WrapUnsupported joins 'err' to the broad ErrUnsupported sentinel.
func WrapUnsupported(err error) error {
	return fmt.Errorf("%w: %w", ErrUnsupported, err)
}

// ChecksumMismatchError is returned when the content-level XXH32 checksum
// does not match the produced plaintext. Unlike the other error kinds, the
// mismatching payload is retained so a caller may choose to accept lossy
// data at their own discretion.
type ChecksumMismatchError struct {
	Plaintext []byte
	Want      uint32
	Got       uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s: want %#08x got %#08x", ErrContentHash, e.Want, e.Got)
}

func (e *ChecksumMismatchError) Unwrap() error {
	return ErrContentHash
}
