// Command img2gwd converts a directory of PNG or WebP files to GWD.
//
// Usage: img2gwd [flags] input_dir output_dir
//
// Files with other extensions are skipped. A file that fails to convert
// is logged and the run continues with the next file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/advsys3/gwd/internal/convert"
	"github.com/advsys3/gwd/internal/logging"
)

func main() {
	logLevel := flag.String("log-level", "info", "logging level: debug, info, warn, error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input_dir output_dir\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	logging.SetLevel(*logLevel)

	inDir, outDir := flag.Arg(0), flag.Arg(1)

	converted, failed, err := convert.Batch(inDir, outDir, []string{".png", ".webp"}, ".gwd", convert.ImageToGWD)
	if err != nil {
		log.Fatalf("batch conversion failed: %v", err)
	}

	logging.Info("done: %d converted, %d failed", converted, failed)
}
