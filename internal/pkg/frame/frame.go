// Package frame implements the LZ4 frame container: header, block stream,
// EndMark, and the XXH32 integrity checks at each layer.
package frame

import (
	"github.com/Dukandar/lz4frame/internal/pkg/block"
	"github.com/Dukandar/lz4frame/internal/pkg/cursor"
	"github.com/Dukandar/lz4frame/internal/pkg/descriptor"
	"github.com/Dukandar/lz4frame/internal/pkg/opts"
	"github.com/Dukandar/lz4frame/internal/pkg/xxh32"
	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

const (
	// Smallest well-formed frame: magic + FLG + BD + HC + EndMark.
	lz4MinFrameSz = 11

	// WindowSz bounds how far back a dependent block's matches may reach
	// into the previously decoded output.
	WindowSz = 64 << 10
)

// Decompress returns the uncompressed content of the single LZ4 frame in
// 'src'. On failure the partial output is discarded, except for a content
// checksum mismatch where it rides along in the error.
func Decompress(src []byte, o *opts.OptsT) ([]byte, error) {

	if len(src) < lz4MinFrameSz {
		return nil, zerr.ErrTruncated
	}

	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}

	var (
		crs      = cursor.New(src)
		blkCheck = hdr.Flags.BlockChecksum()
		linked   = !hdr.Flags.BlockIndependence()
		dst      = o.Dst[:0]
	)

	if err := crs.Skip(hdr.Sz); err != nil {
		return nil, err
	}

	for {
		mark, err := crs.U32()
		if err != nil {
			return nil, err
		}

		blkSz := descriptor.DataBlockSize(mark)
		if blkSz.EOF() {
			break
		}

		// Reserve room for the optional block checksum and at least an
		// EndMark so a truncated tail fails before any payload work.
		need := blkSz.Size() + 4
		if blkCheck {
			need += 4
		}
		if err := crs.Require(need); err != nil {
			return nil, err
		}

		payload, _ := crs.Bytes(blkSz.Size())

		if blkCheck {
			readHash, _ := crs.U32()
			if calcHash := xxh32.ChecksumZero(payload); readHash != calcHash {
				return nil, zerr.WrapCorrupted(zerr.ErrBlockHash)
			}
		}

		if blkSz.Uncompressed() {
			dst = append(dst, payload...)
		} else {
			win := 0
			if linked {
				win = WindowSz
			}
			if dst, err = block.Decode(payload, dst, win); err != nil {
				return nil, err
			}
		}

		if o.MaxOutputSz > 0 && len(dst) > o.MaxOutputSz {
			return nil, zerr.WrapUnsupported(zerr.ErrOutputLimit)
		}

		if o.Handler != nil {
			o.Handler(int64(crs.Offset()), int64(len(dst)))
		}
	}

	if hdr.Flags.ContentSize() && !o.SkipContentSz && uint64(len(dst)) != hdr.ContentSz {
		return nil, zerr.WrapCorrupted(zerr.ErrContentSize)
	}

	if hdr.Flags.ContentChecksum() {
		readHash, err := crs.U32()
		if err != nil {
			return nil, err
		}
		if calcHash := xxh32.ChecksumZero(dst); readHash != calcHash {
			return nil, &zerr.ChecksumMismatchError{
				Plaintext: dst,
				Want:      readHash,
				Got:       calcHash,
			}
		}
	}

	return dst, nil
}
