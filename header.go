package gwd

import (
	"encoding/binary"
	"fmt"
	"io"
)

// headerSize is the fixed GWD header length in bytes.
const headerSize = 12

// headerMagic are the format magic bytes at offset 4.
const headerMagic = "GWD"

// Supported on-disk bit depths.
const (
	bitDepthGray  = 8
	bitDepthColor = 24
)

// Metadata is the fixed GWD header: payload size (little-endian) at
// offset 0, "GWD" magic at offset 4, then big-endian width and height
// and a bit depth byte.
type Metadata struct {
	Width        uint16
	Height       uint16
	BitsPerPixel uint8
	// PayloadSize is the declared length of the compressed scanline
	// payload. Decoding never bounds reads with it; it only locates
	// the alpha flag byte that follows the payload.
	PayloadSize uint32
}

// readMetadata reads and validates one 12-byte header. A short read or
// wrong magic yields ErrInvalidHeader so callers can treat the input as
// "not a GWD stream" rather than a hard failure.
func readMetadata(r io.Reader) (*Metadata, error) {
	var buf [headerSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if string(buf[4:7]) != headerMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, buf[4:7])
	}

	return &Metadata{
		Width:        binary.BigEndian.Uint16(buf[7:9]),
		Height:       binary.BigEndian.Uint16(buf[9:11]),
		BitsPerPixel: buf[11],
		PayloadSize:  binary.LittleEndian.Uint32(buf[0:4]),
	}, nil
}

// writeMetadata writes one 12-byte header.
func writeMetadata(w io.Writer, meta *Metadata) error {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], meta.PayloadSize)
	copy(buf[4:7], headerMagic)
	binary.BigEndian.PutUint16(buf[7:9], meta.Width)
	binary.BigEndian.PutUint16(buf[9:11], meta.Height)
	buf[11] = meta.BitsPerPixel

	_, err := w.Write(buf[:])
	return err
}
