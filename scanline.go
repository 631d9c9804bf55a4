package gwd

import "math/bits"

// A scanline is a sequence of tokens, each a 3-bit width code followed
// by a count code. Width code 0 is a run of count zero symbols; any
// other width code is followed by count literal symbols of widthCode+1
// bits each. Once the full line of symbols is read, the delta transform
// is resolved left to right; the first symbol of a line is the literal
// pixel value.

// zero-run length cap; longer flat regions split into multiple tokens.
const maxRun = 255

// decodeLine decodes one scanline of one channel into dst, whose length
// is the line width. All of dst is overwritten.
func decodeLine(br *bitReader, dst []byte) error {
	for i := range dst {
		dst[i] = 0
	}

	width := len(dst)
	pos := 0
	for pos < width {
		widthCode, err := br.readBits(3)
		if err != nil {
			return err
		}
		count, err := readCount(br)
		if err != nil {
			return err
		}
		n := int(count) + 1
		if n > width-pos {
			return ErrLineOverrun
		}

		if widthCode == 0 {
			pos += n // zero symbols, already in place
			continue
		}
		for k := 0; k < n; k++ {
			v, err := br.readBits(uint(widthCode) + 1)
			if err != nil {
				return err
			}
			dst[pos] = byte(v)
			pos++
		}
	}

	for i := 1; i < width; i++ {
		dst[i] = deltaDecode(dst[i], dst[i-1])
	}
	return nil
}

// encodeLine encodes one scanline of one channel. sym is scratch space
// of the same length as line.
func encodeLine(bw *bitWriter, line, sym []byte) error {
	width := len(line)
	if width == 0 {
		return nil
	}

	sym[0] = line[0]
	for i := 1; i < width; i++ {
		sym[i] = deltaEncode(line[i], line[i-1])
	}

	pos := 0
	for pos < width {
		v := sym[pos]
		if v == 0 {
			run := 1
			for pos+run < width && sym[pos+run] == 0 && run < maxRun {
				run++
			}
			if err := bw.writeBits(0, 3); err != nil {
				return err
			}
			if err := writeCount(bw, uint32(run-1)); err != nil {
				return err
			}
			pos += run
			continue
		}

		// Width code 0 is reserved for zero runs, so literals use at
		// least 2 bits even when one would do.
		bitWidth := uint(bits.Len8(v))
		if bitWidth < 2 {
			bitWidth = 2
		}
		if err := bw.writeBits(uint32(bitWidth-1), 3); err != nil {
			return err
		}
		if err := writeCount(bw, 0); err != nil {
			return err
		}
		if err := bw.writeBits(uint32(v), bitWidth); err != nil {
			return err
		}
		pos++
	}
	return nil
}
