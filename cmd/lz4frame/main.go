package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Dukandar/lz4frame/cmd/lz4frame/internal/ops"
)

func main() {

	var (
		errS string
		kctx = kong.Parse(&ops.CLI)
	)

	switch kctx.Command() {
	case "decompress", "decompress <file>":
		if err := ops.RunDecompress(); err != nil {
			errS = fmt.Sprintf("fail decompress: %v", err)
		}
	case "verify", "verify <file>":
		if err := ops.RunVerify(); err != nil {
			errS = fmt.Sprintf("fail verify: %v", err)
		}
	case "batch <files>":
		if err := ops.RunBatch(); err != nil {
			errS = fmt.Sprintf("fail batch: %v", err)
		}
	default:
		errS = fmt.Sprintf("unknown command '%s'", kctx.Command())
	}

	if errS != "" {
		fmt.Fprintf(os.Stderr, "lz4frame: %s\n", errS)
		os.Exit(1)
	}
}
