package gwd

import "io"

// bitReader reads MSB-first bits from a byte stream. One reader spans
// all scanlines of a payload; rows are not byte-aligned.
type bitReader struct {
	r   io.Reader
	buf byte  // current byte buffer
	cnt uint8 // number of valid bits in buf (0-8)
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r}
}

// readBit reads a single bit (0 or 1).
func (r *bitReader) readBit() (uint32, error) {
	if r.cnt == 0 {
		var b [1]byte
		if _, err := io.ReadFull(r.r, b[:]); err != nil {
			return 0, err
		}
		r.buf = b[0]
		r.cnt = 8
	}
	r.cnt--
	return uint32((r.buf >> r.cnt) & 1), nil
}

// readBits reads n bits (1-32), most significant bit first.
func (r *bitReader) readBits(n uint) (uint32, error) {
	var result uint32
	for i := uint(0); i < n; i++ {
		bit, err := r.readBit()
		if err != nil {
			return 0, err
		}
		result = (result << 1) | bit
	}
	return result, nil
}

// bitWriter writes MSB-first bits to a byte stream.
type bitWriter struct {
	w   io.Writer
	buf byte  // current byte buffer
	cnt uint8 // number of valid bits in buf (0-7)
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// writeBit writes a single bit.
func (w *bitWriter) writeBit(bit uint32) error {
	w.buf = (w.buf << 1) | byte(bit&1)
	w.cnt++
	if w.cnt == 8 {
		return w.flushByte()
	}
	return nil
}

// writeBits writes the low n bits of val, most significant bit first.
func (w *bitWriter) writeBits(val uint32, n uint) error {
	for i := n; i > 0; i-- {
		if err := w.writeBit((val >> (i - 1)) & 1); err != nil {
			return err
		}
	}
	return nil
}

func (w *bitWriter) flushByte() error {
	b := [1]byte{w.buf}
	_, err := w.w.Write(b[:])
	w.buf = 0
	w.cnt = 0
	return err
}

// flush left-justifies any residual bits into a final byte, padding the
// low bits with zero. Calling flush with no residual bits is a no-op,
// so it is safe to call more than once.
func (w *bitWriter) flush() error {
	if w.cnt == 0 {
		return nil
	}
	w.buf <<= 8 - w.cnt
	return w.flushByte()
}
