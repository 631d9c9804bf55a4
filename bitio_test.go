package gwd

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"
)

func TestBitReaderReadBits(t *testing.T) {
	t.Parallel()

	// 0xA5 0x3C = 1010 0101 0011 1100
	r := newBitReader(bytes.NewReader([]byte{0xA5, 0x3C}))

	reads := []struct {
		n    uint
		want uint32
	}{
		{1, 1},
		{3, 0b010},
		{4, 0b0101},
		{8, 0x3C},
	}
	for i, tc := range reads {
		got, err := r.readBits(tc.n)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != tc.want {
			t.Fatalf("read %d: got %#b, want %#b", i, got, tc.want)
		}
	}

	if _, err := r.readBit(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF after last bit, got %v", err)
	}
}

func TestBitReaderEOFMidValue(t *testing.T) {
	t.Parallel()

	r := newBitReader(bytes.NewReader([]byte{0xFF}))
	if _, err := r.readBits(12); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF reading past input, got %v", err)
	}
}

func TestBitWriterRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))

	type field struct {
		val uint32
		n   uint
	}
	fields := make([]field, 500)
	for i := range fields {
		n := uint(rng.Intn(32) + 1)
		fields[i] = field{val: rng.Uint32() & (1<<n - 1), n: n}
	}

	var buf bytes.Buffer
	w := newBitWriter(&buf)
	for _, f := range fields {
		if err := w.writeBits(f.val, f.n); err != nil {
			t.Fatalf("writeBits: %v", err)
		}
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	r := newBitReader(bytes.NewReader(buf.Bytes()))
	for i, f := range fields {
		got, err := r.readBits(f.n)
		if err != nil {
			t.Fatalf("readBits %d: %v", i, err)
		}
		if got != f.val {
			t.Fatalf("field %d: got %d, want %d", i, got, f.val)
		}
	}
}

func TestBitWriterFlushPadsLowBits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := newBitWriter(&buf)
	if err := w.writeBits(0b101, 3); err != nil {
		t.Fatalf("writeBits: %v", err)
	}
	if err := w.flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0b10100000 {
		t.Fatalf("flushed byte = %#v, want [0xa0]", got)
	}

	// A second flush with nothing pending must write nothing.
	if err := w.flush(); err != nil {
		t.Fatalf("second flush: %v", err)
	}
	if buf.Len() != 1 {
		t.Fatalf("second flush emitted %d extra bytes", buf.Len()-1)
	}
}

func TestBitWriterNoPartialByteWithoutFlush(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := newBitWriter(&buf)
	if err := w.writeBits(0xABCD, 16); err != nil {
		t.Fatalf("writeBits: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0xAB, 0xCD}) {
		t.Fatalf("bytes = %#v, want [0xab 0xcd]", buf.Bytes())
	}
}
