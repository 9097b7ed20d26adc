package ops

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gammazero/workerpool"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Dukandar/lz4frame"
)

type batchResultT struct {
	src string
	dst string
	sz  int
	dur time.Duration
	err error
}

// RunBatch decompresses each input file on a worker pool. Files are
// independent, so inter-file concurrency needs no coordination beyond
// collecting results.
func RunBatch() error {

	var (
		wp      = workerpool.New(CLI.Batch.Workers)
		mtx     sync.Mutex
		results = make([]batchResultT, 0, len(CLI.Batch.Files))
	)

	start := time.Now()

	for _, name := range CLI.Batch.Files {
		name := name
		wp.Submit(func() {
			res := decompressOne(name)
			mtx.Lock()
			results = append(results, res)
			mtx.Unlock()
		})
	}

	wp.StopWait()

	tdiff := time.Since(start)

	sort.Slice(results, func(i, j int) bool {
		return results[i].src < results[j].src
	})

	var errList []error

	if !CLI.Batch.Quiet {
		t := table.NewWriter()
		t.SetTitle("Batch results")
		t.SetStyle(table.StyleColoredBright)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Input", "Output", "OutSize", "Duration", "Status"})

		for _, res := range results {
			status := "ok"
			if res.err != nil {
				status = res.err.Error()
			}
			t.AppendRow(table.Row{res.src, res.dst, res.sz, res.dur.Round(time.Microsecond), status})
		}

		t.AppendFooter(table.Row{"Total", "", "", tdiff.Round(time.Microsecond), ""})
		t.Render()
	}

	for _, res := range results {
		if res.err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", res.src, res.err))
		}
	}

	return errors.Join(errList...)
}

func decompressOne(name string) batchResultT {
	res := batchResultT{src: name}

	src, err := os.ReadFile(name)
	if err != nil {
		res.err = err
		return res
	}

	start := time.Now()
	dst, err := lz4frame.Decompress(src)
	res.dur = time.Since(start)

	if err != nil {
		res.err = err
		return res
	}

	res.sz = len(dst)
	res.dst = batchOutputName(name)

	if fileExists(res.dst) && !CLI.Batch.Force {
		res.err = fmt.Errorf("output file '%s' already exists", res.dst)
		return res
	}

	res.err = os.WriteFile(res.dst, dst, dstPerms)
	return res
}

func batchOutputName(name string) string {
	if strings.HasSuffix(name, lz4Ext) {
		return strings.TrimSuffix(name, lz4Ext)
	}
	return name + outExt
}
