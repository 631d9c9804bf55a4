package gwd

import (
	"bytes"
	"errors"
	"testing"
)

func TestCountRoundTripExhaustive(t *testing.T) {
	t.Parallel()

	const limit = 100000

	var buf bytes.Buffer
	w := newBitWriter(&buf)
	for c := uint32(0); c <= limit; c++ {
		if err := writeCount(w, c); err != nil {
			t.Fatalf("writeCount(%d): %v", c, err)
		}
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r := newBitReader(bytes.NewReader(buf.Bytes()))
	for c := uint32(0); c <= limit; c++ {
		got, err := readCount(r)
		if err != nil {
			t.Fatalf("readCount at %d: %v", c, err)
		}
		if got != c {
			t.Fatalf("round trip: got %d, want %d", got, c)
		}
	}
}

func TestCountEncodings(t *testing.T) {
	t.Parallel()

	// Expected bit patterns, left-justified and zero-padded by flush.
	tests := []struct {
		count uint32
		want  []byte
	}{
		{count: 0, want: []byte{0b10000000}},      // 1 0
		{count: 1, want: []byte{0b11000000}},      // 1 1
		{count: 2, want: []byte{0b01000000}},      // 01 00
		{count: 5, want: []byte{0b01110000}},      // 01 11
		{count: 6, want: []byte{0b00100000}},      // 001 000
		{count: 13, want: []byte{0b00111100}},     // 001 111
		{count: 14, want: []byte{0b00010000}},     // 0001 0000
		{count: 254, want: []byte{0b00000001, 0}}, // 00000001 00000000
	}

	for _, tc := range tests {
		var buf bytes.Buffer
		w := newBitWriter(&buf)
		if err := writeCount(w, tc.count); err != nil {
			t.Fatalf("writeCount(%d): %v", tc.count, err)
		}
		if err := w.flush(); err != nil {
			t.Fatalf("flush: %v", err)
		}
		if !bytes.Equal(buf.Bytes(), tc.want) {
			t.Fatalf("count %d: bytes = %08b, want %08b", tc.count, buf.Bytes(), tc.want)
		}
	}
}

func TestCountDecodeHandBuilt(t *testing.T) {
	t.Parallel()

	// 001 101 -> class 3, suffix 5 -> 5 + 8 - 2 = 11
	r := newBitReader(bytes.NewReader([]byte{0b00110100}))
	got, err := readCount(r)
	if err != nil {
		t.Fatalf("readCount: %v", err)
	}
	if got != 11 {
		t.Fatalf("got %d, want 11", got)
	}
}

func TestCountPrefixOverflow(t *testing.T) {
	t.Parallel()

	// 40 zero bits with no stop bit in sight.
	r := newBitReader(bytes.NewReader([]byte{0, 0, 0, 0, 0}))
	if _, err := readCount(r); !errors.Is(err, ErrCountOverflow) {
		t.Fatalf("expected ErrCountOverflow, got %v", err)
	}
}

func TestWriteCountTooLarge(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := writeCount(newBitWriter(&buf), maxCount+1); !errors.Is(err, ErrCountTooLarge) {
		t.Fatalf("expected ErrCountTooLarge, got %v", err)
	}
}
