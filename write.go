package gwd

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
)

// EncodeRaster encodes a 3-channel raster as a 24-bit GWD stream.
// Channels are written in the raster's stored order; no alpha sub-image
// is emitted. The declared payload size is the uncompressed plane size,
// which is what the original tools record.
func EncodeRaster(w io.Writer, ras *Raster) error {
	if err := ras.validate(); err != nil {
		return err
	}
	if ras.Channels != 3 {
		return fmt.Errorf("%w: %d (encoding needs 3)", ErrChannelCount, ras.Channels)
	}

	width, err := u16FromInt(ras.Width)
	if err != nil {
		return err
	}
	height, err := u16FromInt(ras.Height)
	if err != nil {
		return err
	}
	payload, err := u32FromInt(ras.Width * ras.Height * 3)
	if err != nil {
		return err
	}

	bufw := bufio.NewWriter(w)
	meta := &Metadata{
		Width:        width,
		Height:       height,
		BitsPerPixel: bitDepthColor,
		PayloadSize:  payload,
	}
	if err := writeMetadata(bufw, meta); err != nil {
		return err
	}

	bw := newBitWriter(bufw)
	line := make([]byte, ras.Width)
	sym := make([]byte, ras.Width)

	for y := 0; y < ras.Height; y++ {
		for c := 0; c < 3; c++ {
			for x := 0; x < ras.Width; x++ {
				line[x] = ras.Pix[(y*ras.Width+x)*3+c]
			}
			if err := encodeLine(bw, line, sym); err != nil {
				return scanlineError(ErrEncodeScanline, y, c, err)
			}
		}
	}

	if err := bw.flush(); err != nil {
		return err
	}
	return bufw.Flush()
}

// Encode encodes an image as a 24-bit GWD stream. Any alpha is dropped.
func Encode(w io.Writer, img image.Image) error {
	ras, err := rasterFromImage(img)
	if err != nil {
		return err
	}
	return EncodeRaster(w, ras)
}

// Write encodes an image to a GWD file. The stream is built in memory
// first, so a failed encode creates no file.
//
// Round-trip note: Write stores the image's red-first channel planes
// unreversed, while Read treats stored planes as blue-first. Reading a
// file produced by Write therefore returns the image with its red and
// blue channels swapped. This mirrors the original tool pair.
func Write(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	return nil
}
