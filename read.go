package gwd

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
)

// alphaMarker flags a nested alpha sub-image after the primary payload.
const alphaMarker = 0x01

// ReadConfig reads GWD file dimensions without decoding pixel data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeConfig(f)
}

// DecodeConfig decodes the GWD header from r.
func DecodeConfig(r io.Reader) (image.Config, error) {
	meta, err := readMetadata(r)
	if err != nil {
		return image.Config{}, err
	}

	model := color.Model(color.NRGBAModel)
	if meta.BitsPerPixel == bitDepthGray {
		model = color.GrayModel
	}
	return image.Config{
		Width:      int(meta.Width),
		Height:     int(meta.Height),
		ColorModel: model,
	}, nil
}

// Read reads and decodes a GWD file into an image.
func Read(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	ras, err := Decode(f)
	if err != nil {
		return nil, err
	}
	return ras.Image(), nil
}

// Decode decodes a GWD stream into a raster in stored channel order.
// 24-bit images with a valid nested alpha sub-image come back with 4
// channels, the 4th holding the inverted alpha plane; an absent or
// inconsistent sub-image yields the plain 3-channel result.
func Decode(r io.ReadSeeker) (*Raster, error) {
	meta, err := readMetadata(r)
	if err != nil {
		return nil, err
	}

	var channels int
	switch meta.BitsPerPixel {
	case bitDepthGray:
		channels = 1
	case bitDepthColor:
		channels = 3
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, meta.BitsPerPixel)
	}

	ras, err := NewRaster(int(meta.Width), int(meta.Height), channels)
	if err != nil {
		return nil, err
	}

	if err := decodePlanes(bufio.NewReader(r), ras); err != nil {
		return nil, err
	}

	if meta.BitsPerPixel == bitDepthColor {
		return decodeAlpha(r, meta, ras)
	}
	return ras, nil
}

// decodePlanes decodes all scanlines of all channels from one
// continuous bitstream, row-major with the channel lines of each row
// consecutive.
func decodePlanes(r io.Reader, ras *Raster) error {
	br := newBitReader(r)
	line := make([]byte, ras.Width)

	for y := 0; y < ras.Height; y++ {
		for c := 0; c < ras.Channels; c++ {
			if err := decodeLine(br, line); err != nil {
				return scanlineError(ErrDecodeScanline, y, c, err)
			}
			for x := 0; x < ras.Width; x++ {
				ras.Pix[(y*ras.Width+x)*ras.Channels+c] = line[x]
			}
		}
	}
	return nil
}

// decodeAlpha merges the optional nested alpha sub-image located right
// after the declared primary payload. Every way the sub-image can fail
// to match (no marker byte, marker other than 0x01, header invalid,
// wrong bit depth, wrong dimensions) downgrades silently to the opaque
// 3-channel raster; only a corrupt alpha payload is an error.
func decodeAlpha(r io.ReadSeeker, meta *Metadata, ras *Raster) (*Raster, error) {
	if _, err := r.Seek(int64(meta.PayloadSize)+4, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: seek: %v", ErrDecodeAlpha, err)
	}

	var marker [1]byte
	if _, err := io.ReadFull(r, marker[:]); err != nil || marker[0] != alphaMarker {
		return ras, nil
	}

	alphaMeta, err := readMetadata(r)
	if err != nil {
		return ras, nil
	}
	if alphaMeta.BitsPerPixel != bitDepthGray ||
		alphaMeta.Width != meta.Width || alphaMeta.Height != meta.Height {
		return ras, nil
	}

	plane, err := NewRaster(ras.Width, ras.Height, 1)
	if err != nil {
		return nil, err
	}
	if err := decodePlanes(bufio.NewReader(r), plane); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeAlpha, err)
	}

	merged, err := NewRaster(ras.Width, ras.Height, 4)
	if err != nil {
		return nil, err
	}
	for i := 0; i < ras.Width*ras.Height; i++ {
		copy(merged.Pix[i*4:], ras.Pix[i*3:i*3+3])
		merged.Pix[i*4+3] = 255 - plane.Pix[i]
	}
	return merged, nil
}

// scanlineError wraps a scanline failure with its position, folding
// reader exhaustion into ErrTruncatedStream.
func scanlineError(kind error, y, c int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: row %d channel %d", ErrTruncatedStream, y, c)
	}
	return fmt.Errorf("%w: row %d channel %d: %v", kind, y, c, err)
}
