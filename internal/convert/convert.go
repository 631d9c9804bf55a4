// Package convert wires the GWD codec to interchange image formats and
// drives directory-to-directory batch conversion for the CLIs.
package convert

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/webp"

	"github.com/advsys3/gwd"
	"github.com/advsys3/gwd/internal/logging"
)

// ErrUnsupportedFormat indicates an interchange format outside png/webp.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Options configures interchange image output.
type Options struct {
	// Format selects the output encoding: "png" (default) or "webp".
	Format string
	// Quality is the lossy WebP quality (1-100); 0 means 85.
	Quality int
}

func (o Options) format() string {
	if o.Format == "" {
		return "png"
	}
	return strings.ToLower(o.Format)
}

func (o Options) quality() int {
	if o.Quality <= 0 {
		return 85
	}
	return o.Quality
}

// Extension returns the output file extension for the configured format.
func (o Options) Extension() string {
	return "." + o.format()
}

// GWDToImage decodes one GWD file and writes it as a PNG or WebP file.
// The image is encoded in memory first, so a failure leaves no output.
func GWDToImage(inPath, outPath string, opts Options) error {
	img, err := gwd.Read(inPath)
	if err != nil {
		return err
	}

	data, err := encodeImage(img, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}

// ImageToGWD decodes one PNG or WebP file and writes it as a GWD file.
func ImageToGWD(inPath, outPath string) error {
	img, err := decodeImageFile(inPath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := gwd.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}

func encodeImage(img image.Image, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	switch opts.format() {
	case "png":
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
	case "webp":
		if err := webp.Encode(&buf, img, webp.Options{Quality: opts.quality()}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}
	return buf.Bytes(), nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Decode(f)
	case ".webp":
		return webp.Decode(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Batch converts every file in inDir whose extension matches one of
// inExts, writing the result to outDir with outExt. A file that fails
// to convert is logged and the batch continues; non-matching files are
// skipped. Returns the number of converted and failed files.
func Batch(inDir, outDir string, inExts []string, outExt string, fn func(in, out string) error) (int, int, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, 0, err
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return 0, 0, err
	}

	converted, failed := 0, 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if !matchesExt(ext, inExts) {
			continue
		}

		inPath := filepath.Join(inDir, name)
		outPath := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+outExt)

		if err := fn(inPath, outPath); err != nil {
			logging.Error("failed to convert %s: %v", inPath, err)
			failed++
			continue
		}
		logging.Info("converted %s -> %s", inPath, outPath)
		converted++
	}
	return converted, failed, nil
}

func matchesExt(ext string, exts []string) bool {
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
