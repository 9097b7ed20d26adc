// Package block implements the LZ4 block format: a sequence of tokenized
// literal runs and back-reference matches, terminated by a literal-only
// sequence.
package block

import (
	"github.com/Dukandar/lz4frame/internal/pkg/cursor"
	"github.com/Dukandar/lz4frame/internal/pkg/zerr"
)

const (
	// A token nibble of 15 means the length continues in extension bytes.
	extNibble = 15

	// Minimum match length; the token's low nibble is a bias above this.
	minMatchSz = 4
)

// Decode appends the decompressed content of the LZ4 block in 'src' to
// 'dst' and returns the extended slice.
//
// Matches may reference at most 'win' trailing bytes of the incoming dst
// (the dependent-block carry) plus whatever the block itself has already
// produced. Pass win == 0 for an independent block.
//
// An empty src is valid and produces nothing.
func Decode(src, dst []byte, win int) ([]byte, error) {
	if win > len(dst) {
		win = len(dst)
	}

	var (
		crs  = cursor.New(src)
		base = len(dst) - win
	)

	for !crs.Done() {
		token, err := crs.U8()
		if err != nil {
			return nil, err
		}

		litLen := int(token >> 4)
		if litLen == extNibble {
			if litLen, err = extendLen(crs, litLen); err != nil {
				return nil, err
			}
		}

		lits, err := crs.Bytes(litLen)
		if err != nil {
			return nil, err
		}
		dst = append(dst, lits...)

		// The final sequence of a block is literals only; it is detected
		// by input exhaustion immediately after the literal copy.
		if crs.Done() {
			break
		}

		offset, err := crs.U16()
		if err != nil {
			return nil, err
		}
		if offset == 0 || int(offset) > len(dst)-base {
			return nil, zerr.WrapCorrupted(zerr.ErrBadOffset)
		}

		matchLen := int(token&0xF) + minMatchSz
		if token&0xF == extNibble {
			if matchLen, err = extendLen(crs, matchLen); err != nil {
				return nil, err
			}
		}

		// Byte at a time so an overlapping match replicates bytes the
		// copy itself is producing (offset < matchLen is the RLE case).
		pos := len(dst) - int(offset)
		for i := 0; i < matchLen; i++ {
			dst = append(dst, dst[pos+i])
		}
	}

	return dst, nil
}

// extendLen accumulates length extension bytes onto 'acc': each 0xFF adds
// 255 and continues, the first byte below 0xFF terminates. The wire format
// places no bound on the sum, so every step checks for int overflow.
func extendLen(crs *cursor.Cursor, acc int) (int, error) {
	for {
		b, err := crs.U8()
		if err != nil {
			return 0, err
		}
		acc += int(b)
		if acc < 0 {
			return 0, zerr.WrapUnsupported(zerr.ErrLenOverflow)
		}
		if b != 0xFF {
			return acc, nil
		}
	}
}
