// Command gwd2img converts a directory of GWD files to PNG or WebP.
//
// Usage: gwd2img [flags] input_dir output_dir
//
// Files without a .gwd extension are skipped. A file that fails to
// convert is logged and the run continues with the next file.
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
	format := flag.String("format", "png", "output image format: png or webp")
	quality := flag.Int("quality", 85, "webp quality (1-100)")
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
	opts := convert.Options{Format: *format, Quality: *quality}

	converted, failed, err := convert.Batch(inDir, outDir, []string{".gwd"}, opts.Extension(),
		func(in, out string) error { return convert.GWDToImage(in, out, opts) })
	if err != nil {
		log.Fatalf("batch conversion failed: %v", err)
	}

	logging.Info("done: %d converted, %d failed", converted, failed)
}
