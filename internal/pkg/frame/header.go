package frame

import (
	"math"

	"github.com/Dukandar/lz4frame/internal/pkg/cursor"
	"github.com/Dukandar/lz4frame/internal/pkg/descriptor"
	"github.com/Dukandar/lz4frame/internal/pkg/xxh32"
	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

// see lz4_Frame_Format.md

const (
	lz4FrameMagic uint32 = 0x184D2204
	lz4FrameVers         = 1
)

type HeaderT struct {
	Sz        int
	ContentSz uint64
	Flags     descriptor.Flags
	BlockDesc descriptor.Block
}

// ReadHeader parses the frame header at the start of 'src' and returns it
// along with its size in bytes.
//
// Skippable frames (magic 0x184D2A50..5F) and legacy frames (0x184C2102)
// are not recognized; their magics are rejected as corrupted along with
// everything else that is not the standard frame magic.
func ReadHeader(src []byte) (hdr HeaderT, err error) {
	crs := cursor.New(src)

	magic, err := crs.U32()
	if err != nil {
		return hdr, err
	}
	if magic != lz4FrameMagic {
		return hdr, zerr.WrapCorrupted(zerr.ErrMagic)
	}

	flg, err := crs.U8()
	if err != nil {
		return hdr, err
	}
	bd, err := crs.U8()
	if err != nil {
		return hdr, err
	}

	hdr.Flags = descriptor.Flags(flg)
	hdr.BlockDesc = descriptor.Block(bd)

	if err = sanityCheck(hdr); err != nil {
		return hdr, err
	}

	if hdr.Flags.ContentSize() {
		// The 8-byte content size, the header checksum, and at least an
		// EndMark must still fit.
		if err = crs.Require(8 + 1 + 4); err != nil {
			return hdr, err
		}
		hdr.ContentSz, _ = crs.U64()

		if hdr.ContentSz > math.MaxInt {
			return hdr, zerr.WrapUnsupported(zerr.ErrContentSzRange)
		}
	}

	if hdr.Flags.DictId() {
		// Detection only; preset dictionaries are not implemented.
		return hdr, zerr.WrapUnsupported(zerr.ErrDictId)
	}

	readHash, err := crs.U8()
	if err != nil {
		return hdr, err
	}

	// The hash covers FLG through the last optional field, magic and
	// checksum byte excluded. The checksum is the hash's second byte.
	calcHash := byte(xxh32.ChecksumZero(src[4:crs.Offset()-1]) >> 8)
	if calcHash != readHash {
		return hdr, zerr.WrapCorrupted(zerr.ErrHeaderHash)
	}

	hdr.Sz = crs.Offset()
	return hdr, nil
}

func sanityCheck(hdr HeaderT) (err error) {

	switch {
	case hdr.Flags.Version() != lz4FrameVers:
		err = zerr.WrapCorrupted(zerr.ErrVersion)
	case hdr.Flags.Reserved():
		err = zerr.WrapCorrupted(zerr.ErrReserveBitSet)
	case !hdr.BlockDesc.Valid():
		err = zerr.WrapCorrupted(zerr.ErrBlockDescriptor)
	}

	return
}
