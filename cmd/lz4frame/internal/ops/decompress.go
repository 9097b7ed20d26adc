package ops

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Dukandar/lz4frame"
	"github.com/Dukandar/lz4frame/pkg/sparse"
)

func RunDecompress() error {
	rdwr, err := newTarget(CLI.Decompress.File, CLI.Decompress.Output, CLI.Decompress.Force)

	if err != nil {
		return err
	}

	defer rdwr.Close()

	return _decompress(rdwr)
}

func _decompress(rdwr *ioTarget) error {

	src, err := io.ReadAll(rdwr.Reader())
	if err != nil {
		return fmt.Errorf("fail read source: %w", err)
	}

	var (
		wr io.WriteCloser = rdwr.Writer()
		pw progress.Writer
		tr *progress.Tracker
	)

	if wr != os.Stdout && CLI.Decompress.Sparse {
		wr = sparse.NewWriter(wr)
	}

	opts := []lz4frame.OptT{}

	if CLI.Decompress.MaxSize > 0 {
		opts = append(opts, lz4frame.WithMaxOutputSize(CLI.Decompress.MaxSize))
	}

	if wr != os.Stdout && !CLI.Decompress.Quiet {
		msg := "Decompressing"
		pw = newProgressWriter(1)
		pw.SetMessageLength(len(msg))

		tr = &progress.Tracker{
			Message: msg,
			Units:   progress.UnitsBytes,
			Total:   int64(len(src)),
		}

		pw.AppendTracker(tr)

		cbHandler := func(srcOff, dstOff int64) {
			tr.SetValue(srcOff)
		}

		opts = append(opts, lz4frame.WithProgress(cbHandler))

		go pw.Render()
	}

	start := time.Now()

	dst, err := lz4frame.Decompress(src, opts...)
	if err != nil {
		return err
	}

	if _, err := wr.Write(dst); err != nil {
		return err
	}

	// Decompress does not close the underlying writer
	if err := wr.Close(); err != nil {
		return err
	}

	if pw != nil {
		tdiff := time.Since(start)

		tr.MarkAsDone()

		for pw.IsRenderInProgress() {
			time.Sleep(time.Millisecond * 100)
		}

		percent := float64(len(src)) / float64(len(dst)) * 100.0

		t := table.NewWriter()
		t.SetTitle("Decompress results")
		t.SetStyle(table.StyleColoredBright)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Key", "Value"})
		t.AppendRows([]table.Row{
			{"Input", rdwr.SrcName()},
			{"Output", rdwr.DstName()},
			{"InSize", len(src)},
			{"OutSize", len(dst)},
			{"Duration", tdiff.Round(time.Microsecond)},
			{"Ratio", fmt.Sprintf("%.2f%%", percent)},
		})
		t.Render()
	}
	return nil
}
