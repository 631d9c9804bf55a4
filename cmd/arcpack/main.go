// Command arcpack packs a directory into an AdvSys3 resource archive,
// or extracts an existing one.
//
// Usage:
//
//	arcpack [flags] input_dir output_file
//	arcpack -x archive_file output_dir
//
// Packing order follows the -order JSON file (an array of {"name": ...}
// objects) when given, otherwise the sorted directory listing. Stock
// archives number entries from the system setup entry upward starting
// at 10000; adjust with -restart and -restart-index when repacking
// archives that use a different marker.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/advsys3/gwd/arc"
	"github.com/advsys3/gwd/internal/logging"
)

type orderEntry struct {
	Name string `json:"name"`
}

func main() {
	extract := flag.Bool("x", false, "extract an archive instead of packing")
	orderFile := flag.String("order", "", "JSON file listing entry names in packing order")
	restart := flag.String("restart", arc.DefaultRestartName, "entry name that restarts index numbering")
	restartIndex := flag.Uint("restart-index", arc.DefaultRestartIndex, "index assigned at the restart entry")
	logLevel := flag.String("log-level", "info", "logging level: debug, info, warn, error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input_dir output_file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s -x archive_file output_dir\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}
	logging.SetLevel(*logLevel)

	if *extract {
		if err := extractArchive(flag.Arg(0), flag.Arg(1)); err != nil {
			log.Fatalf("extract failed: %v", err)
		}
		return
	}

	opts := &arc.Options{
		RestartName:  *restart,
		RestartIndex: uint32(*restartIndex), // #nosec G115 -- flag value, operator controlled
	}
	if err := packDirectory(flag.Arg(0), flag.Arg(1), *orderFile, opts); err != nil {
		log.Fatalf("pack failed: %v", err)
	}
}

func packDirectory(inDir, outFile, orderFile string, opts *arc.Options) error {
	names, err := entryNames(inDir, orderFile)
	if err != nil {
		return err
	}

	entries := make([]arc.Entry, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(inDir, name))
		if err != nil {
			return err
		}
		entries = append(entries, arc.Entry{Name: name, Data: data})
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if err := arc.Pack(f, entries, opts); err != nil {
		return err
	}
	logging.Info("packed %d entries into %s", len(entries), outFile)
	return f.Close()
}

// entryNames resolves the packing order: the order file when present,
// otherwise the sorted directory listing.
func entryNames(inDir, orderFile string) ([]string, error) {
	if orderFile == "" {
		dirEntries, err := os.ReadDir(inDir)
		if err != nil {
			return nil, err
		}
		var names []string
		for _, e := range dirEntries {
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
		return names, nil
	}

	data, err := os.ReadFile(orderFile)
	if err != nil {
		return nil, err
	}
	var order []orderEntry
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("parse order file %s: %w", orderFile, err)
	}
	names := make([]string, len(order))
	for i, e := range order {
		names[i] = e.Name
	}
	return names, nil
}

func extractArchive(archiveFile, outDir string) error {
	f, err := os.Open(archiveFile)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	entries, err := arc.Unpack(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for _, e := range entries {
		name := filepath.Base(e.Name) // entry names must not escape outDir
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, e.Data, 0o644); err != nil {
			return err
		}
		logging.Debug("extracted %s (index %d, %d bytes)", name, e.Index, len(e.Data))
	}
	logging.Info("extracted %d entries into %s", len(entries), outDir)
	return nil
}
