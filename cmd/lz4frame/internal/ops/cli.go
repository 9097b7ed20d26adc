package ops

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

var CLI struct {
	Decompress struct {
		File    string `optional:"" arg:"" type:"existingfile"`
		Output  string `help:"Output filename; use '-' for stdout" short:"o"`
		Force   bool   `help:"Force overwrite of existing file" short:"f"`
		Quiet   bool   `help:"Do not write progress to stdout" short:"q"`
		Sparse  bool   `help:"Enable sparse writes" short:"s"`
		MaxSize int    `help:"Abort if output exceeds this many bytes [0 unlimited]" default:"0"`
	} `cmd:"" aliases:"d,decomp" help:"Decompress an lz4 frame"`
	Verify struct {
		File string `optional:"" arg:"" type:"existingfile"`
		Skip bool   `help:"Parse the frame header only" short:"s"`
	} `cmd:"" aliases:"v,ver" help:"Verify an lz4 frame"`
	Batch struct {
		Files   []string `arg:"" type:"existingfile" help:"Files to decompress"`
		Workers int      `help:"Number of concurrent workers" default:"4" short:"w"`
		Force   bool     `help:"Force overwrite of existing files" short:"f"`
		Quiet   bool     `help:"Do not render the results table" short:"q"`
	} `cmd:"" aliases:"b" help:"Decompress many lz4 files concurrently"`
}

func newProgressWriter(nTrackers int) progress.Writer {
	pw := progress.NewWriter()
	pw.SetAutoStop(true)
	pw.SetMessageLength(24)
	pw.SetNumTrackersExpected(nTrackers)
	pw.SetSortBy(progress.SortByPercentDsc)
	pw.SetStyle(progress.StyleDefault)
	pw.SetTrackerLength(25)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Percentage = true
	pw.Style().Visibility.Speed = true
	pw.Style().Visibility.Time = true
	return pw
}
