package opts

// Emits offset in bytes from beginning of frame of src and corresponding
// decoded output on each block boundary.
type ProgressFuncT func(srcOff, dstOff int64)

// OptsT carries the parsed options for a frame decompress call.
type OptsT struct {
	Dst           []byte
	MaxOutputSz   int
	Handler       ProgressFuncT
	SkipContentSz bool
}

// BlockOptsT carries the parsed options for a single-block decompress call.
type BlockOptsT struct {
	Prefix []byte
	Dst    []byte
}
