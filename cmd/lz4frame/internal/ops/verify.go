package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Dukandar/lz4frame"
	"github.com/Dukandar/lz4frame/internal/pkg/frame"
)

const (
	strStdin = "<STDIN>"
)

func RunVerify() error {
	rdwr, err := newTarget(CLI.Verify.File, "-", false)

	if err != nil {
		return err
	}

	defer rdwr.Close()

	return _verify(rdwr)
}

func _verify(rdwr *ioTarget) error {

	src, err := io.ReadAll(rdwr.Reader())
	if err != nil {
		return fmt.Errorf("fail read source: %w", err)
	}

	if len(src) == 0 {
		fmt.Fprintf(os.Stdout, "No data to verify\n")
		return nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleColoredBright)
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Verify results")
	t.AppendHeader(table.Row{"Key", "Value"})

	hdr, err := frame.ReadHeader(src)
	if err != nil {
		return err
	}

	t.AppendRows([]table.Row{
		{"File name", rdwr.SrcName()},
		{"Version", hdr.Flags.Version()},
		{"Block max size", fmt.Sprintf("%s (%d bytes)", hdr.BlockDesc.Idx().Str(), hdr.BlockDesc.Size())},
		{"Independent blocks", hdr.Flags.BlockIndependence()},
		{"Block checksums", hdr.Flags.BlockChecksum()},
		{"Content checksum", hdr.Flags.ContentChecksum()},
	})

	if hdr.Flags.ContentSize() {
		t.AppendRow(table.Row{"Content size", hdr.ContentSz})
	}

	if !CLI.Verify.Skip {
		var (
			start    = time.Now()
			dst, err = lz4frame.Decompress(src)
			tdiff    = time.Since(start)
		)

		// Surface the decoded length even when only the trailing
		// content checksum disagrees.
		var cerr *lz4frame.ChecksumMismatchError
		if errors.As(err, &cerr) {
			dst = cerr.Plaintext
		} else if err != nil {
			return err
		}

		percent := float64(len(src)) / float64(len(dst)) * 100.0

		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"InSize", len(src)},
			{"OutSize", len(dst)},
			{"Duration", tdiff.Round(time.Microsecond)},
			{"Ratio", fmt.Sprintf("%.2f%%", percent)},
		})

		if cerr != nil {
			t.AppendSeparator()
			t.AppendRow(table.Row{"Content checksum", cerr.Error()})
			t.Render()
			return cerr
		}
	}

	t.Render()
	return nil
}
