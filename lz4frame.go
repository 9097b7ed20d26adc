// Package lz4frame decompresses LZ4 frames held entirely in memory.
//
// The package accepts a contiguous byte buffer holding one LZ4 frame and
// returns the original uncompressed bytes, rejecting malformed,
// truncated, or unsupported input with typed errors. Encoding, skippable
// frames, legacy frames, multi-frame concatenation, and preset
// dictionaries are out of scope.
package lz4frame

import (
	"github.com/Dukandar/lz4frame/internal/pkg/block"
	"github.com/Dukandar/lz4frame/internal/pkg/frame"
)

// Decompress returns the uncompressed content of the single LZ4 frame in
// 'src'.
//
// Specify optional parameters in 'opts'.
func Decompress(src []byte, opts ...OptT) ([]byte, error) {
	o := parseOpts(opts...)
	return frame.Decompress(src, &o)
}

// DecompressBlock decompresses a single raw LZ4 block with no frame
// container around it.
//
// Use WithBlockPrefixWindow to supply the dependent-block carry when the
// block was cut out of a linked-blocks frame.
func DecompressBlock(src []byte, opts ...BlockOptT) ([]byte, error) {
	o := parseBlockOpts(opts...)

	prefix := o.Prefix
	if len(prefix) > frame.WindowSz {
		prefix = prefix[len(prefix)-frame.WindowSz:]
	}

	out, err := block.Decode(src, append(o.Dst[:0], prefix...), len(prefix))
	if err != nil {
		return nil, err
	}
	return out[len(prefix):], nil
}
