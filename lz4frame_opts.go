package lz4frame

import "github.com/Dukandar/lz4frame/internal/pkg/opts"

// OptT is a function that sets an option on a frame decompress call.
type OptT func(*opts.OptsT)

// Progress callback function type.
type CbProgressT = opts.ProgressFuncT

/////////////////
// Frame options
/////////////////

// Enable content size check.  Defaults to enabled.
//
// According to spec, the content size is informational so in some cases it
// may be desirable to skip the check.
func WithContentSizeCheck(enabled bool) OptT {
	return func(o *opts.OptsT) {
		o.SkipContentSz = !enabled
	}
}

// Provide a destination buffer.  The output is appended to dst[:0],
// avoiding an allocation when the caller can bound the output size.
func WithDst(dst []byte) OptT {
	return func(o *opts.OptsT) {
		o.Dst = dst
	}
}

// Abort with an unsupported-feature error once the accumulated output
// exceeds 'n' bytes.  A ceiling against decompression-bomb inputs;
// disabled when n <= 0, which is the default.
func WithMaxOutputSize(n int) OptT {
	return func(o *opts.OptsT) {
		o.MaxOutputSz = n
	}
}

// Decoder will emit tuple (src_block_offset, dst_offset) on each block
// boundary.
//
// Offsets are relative to the start of the frame and the start of the
// output respectively.
func WithProgress(cb CbProgressT) OptT {
	return func(o *opts.OptsT) {
		o.Handler = cb
	}
}

/////////////////
// Block options
/////////////////

// BlockOptT is a function that sets an option on a block decompress call.
type BlockOptT func(*opts.BlockOptsT)

// Supply the dependent-block carry for a single out-of-frame block
// decode.  Only the last 64KiB is used.
func WithBlockPrefixWindow(prefix []byte) BlockOptT {
	return func(o *opts.BlockOptsT) {
		o.Prefix = prefix
	}
}

// Provide a destination buffer for a block decode.
func WithBlockDst(dst []byte) BlockOptT {
	return func(o *opts.BlockOptsT) {
		o.Dst = dst
	}
}

func parseOpts(optFuncs ...OptT) opts.OptsT {
	var o opts.OptsT
	for _, oFunc := range optFuncs {
		oFunc(&o)
	}
	return o
}

func parseBlockOpts(optFuncs ...BlockOptT) opts.BlockOptsT {
	var o opts.BlockOptsT
	for _, oFunc := range optFuncs {
		oFunc(&o)
	}
	return o
}
