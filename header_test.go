package gwd

import (
	"bytes"
	"errors"
	"testing"
)

func TestMetadataRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []Metadata{
		{Width: 1, Height: 1, BitsPerPixel: 8, PayloadSize: 1},
		{Width: 640, Height: 480, BitsPerPixel: 24, PayloadSize: 640 * 480 * 3},
		{Width: 65535, Height: 65535, BitsPerPixel: 24, PayloadSize: 0xFFFFFFFF},
	}

	for _, meta := range tests {
		var buf bytes.Buffer
		if err := writeMetadata(&buf, &meta); err != nil {
			t.Fatalf("writeMetadata: %v", err)
		}
		if buf.Len() != headerSize {
			t.Fatalf("header length = %d, want %d", buf.Len(), headerSize)
		}

		got, err := readMetadata(&buf)
		if err != nil {
			t.Fatalf("readMetadata: %v", err)
		}
		if *got != meta {
			t.Fatalf("round trip: got %+v, want %+v", *got, meta)
		}
	}
}

func TestMetadataLayout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	meta := &Metadata{Width: 0x0102, Height: 0x0304, BitsPerPixel: 24, PayloadSize: 0x0A0B0C0D}
	if err := writeMetadata(&buf, meta); err != nil {
		t.Fatalf("writeMetadata: %v", err)
	}

	want := []byte{
		0x0D, 0x0C, 0x0B, 0x0A, // payload size, little-endian
		'G', 'W', 'D',
		0x01, 0x02, // width, big-endian
		0x03, 0x04, // height, big-endian
		24,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("header bytes = % x, want % x", buf.Bytes(), want)
	}
}

func TestReadMetadataInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short", data: []byte{1, 2, 3, 4, 'G', 'W'}},
		{name: "bad-magic", data: []byte{0, 0, 0, 0, 'P', 'N', 'G', 0, 1, 0, 1, 24}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := readMetadata(bytes.NewReader(tc.data))
			if !errors.Is(err, ErrInvalidHeader) {
				t.Fatalf("expected ErrInvalidHeader, got %v", err)
			}
		})
	}
}
