package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	lz4Ext   = ".lz4"
	outExt   = ".out"
	dstPerms = 0600
)

// ioTarget resolves a subcommand's source/destination pair. An empty or
// "-" source reads stdin; a "-" output writes stdout.
type ioTarget struct {
	src   *os.File
	srcSz int64
	dst   *os.File
}

func newTarget(name, output string, forceOverwrite bool) (*ioTarget, error) {

	tgt := &ioTarget{srcSz: -1}

	ok := false
	defer func() {
		if !ok {
			tgt.Close()
		}
	}()

	if name != "" && name != "-" {
		var err error
		if tgt.src, err = os.Open(name); err != nil {
			return nil, fmt.Errorf("cannot open source '%s': %w", name, err)
		}

		// Source size is recorded when available; it stays -1 otherwise.
		if fi, err := tgt.src.Stat(); err == nil {
			tgt.srcSz = fi.Size()
		}
	}

	if output != "-" {
		dstName := output
		if dstName == "" {
			if !strings.HasSuffix(name, lz4Ext) {
				return nil, fmt.Errorf("cannot determine an output filename for '%s'", name)
			}
			dstName = strings.TrimSuffix(name, lz4Ext)
		}

		if fileExists(dstName) && !forceOverwrite {
			return nil, fmt.Errorf("output file '%s' already exists", dstName)
		}

		var err error
		tgt.dst, err = os.OpenFile(dstName, os.O_CREATE|os.O_RDWR|os.O_TRUNC, dstPerms)
		if err != nil {
			return nil, fmt.Errorf("fail create output file '%s': %w", dstName, err)
		}
	}

	ok = true
	return tgt, nil
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return (err == nil) || !errors.Is(err, os.ErrNotExist)
}

func (t *ioTarget) Close() error {
	var errList []error
	for _, fh := range []*os.File{t.src, t.dst} {
		if fh != nil {
			errList = append(errList, fh.Close())
		}
	}
	t.src, t.dst = nil, nil
	return errors.Join(errList...)
}

func (t *ioTarget) Reader() io.Reader {
	if t.src == nil {
		return os.Stdin
	}
	return t.src
}

func (t *ioTarget) Writer() io.WriteCloser {
	if t.dst == nil {
		return os.Stdout
	}
	return t.dst
}

func (t *ioTarget) SrcName() string {
	if t.src == nil {
		return strStdin
	}
	return t.src.Name()
}

func (t *ioTarget) DstName() string {
	if t.dst == nil {
		return "<STDOUT>"
	}
	return t.dst.Name()
}
