package lz4frame

import (
	"errors"

	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

//  Forward declare internal errors

const (
	ErrTruncated       = zerr.ErrTruncated
	ErrCorrupted       = zerr.ErrCorrupted
	ErrMagic           = zerr.ErrMagic
	ErrVersion         = zerr.ErrVersion
	ErrReserveBitSet   = zerr.ErrReserveBitSet
	ErrBlockDescriptor = zerr.ErrBlockDescriptor
	ErrHeaderHash      = zerr.ErrHeaderHash
	ErrBlockHash       = zerr.ErrBlockHash
	ErrBadOffset       = zerr.ErrBadOffset
	ErrContentSize     = zerr.ErrContentSize
	ErrContentHash     = zerr.ErrContentHash
	ErrUnsupported     = zerr.ErrUnsupported
	ErrDictId          = zerr.ErrDictId
	ErrLenOverflow     = zerr.ErrLenOverflow
	ErrContentSzRange  = zerr.ErrContentSzRange
	ErrOutputLimit     = zerr.ErrOutputLimit
)

// ChecksumMismatchError reports a content checksum failure. It carries
// the produced plaintext so callers may accept lossy data at their own
// discretion.
type ChecksumMismatchError = zerr.ChecksumMismatchError

// Returns true if 'err' indicates that the read input is corrupted.
func Lz4Corrupted(err error) bool {
	return errors.Is(err, ErrCorrupted)
}
