package gwd

import "math/bits"

// Run lengths are stored as a universal count code: a unary prefix of
// n-1 zero bits and a stop bit selects the magnitude class, then n
// suffix bits complete the value as suffix + (1<<n) - 2. Class n covers
// the range [(1<<n)-2, (1<<(n+1))-3], so every count >= 0 has exactly
// one encoding.

// maxCount is the largest encodable count; class 31 is the widest
// suffix readBits can deliver.
const maxCount = (1 << 32) - 3

// readCount decodes one count value from the stream.
func readCount(br *bitReader) (uint32, error) {
	n := uint(1)
	for {
		bit, err := br.readBit()
		if err != nil {
			return 0, err
		}
		if bit != 0 {
			break
		}
		n++
		if n > 31 {
			return 0, ErrCountOverflow
		}
	}

	suffix, err := br.readBits(n)
	if err != nil {
		return 0, err
	}
	return suffix + (1 << n) - 2, nil
}

// writeCount encodes one count value to the stream.
func writeCount(bw *bitWriter, count uint32) error {
	if count > maxCount {
		return ErrCountTooLarge
	}

	n := uint(bits.Len32(count+2)) - 1
	suffix := count + 2 - (1 << n)

	if err := bw.writeBits(1, n); err != nil { // n-1 zeros then the stop bit
		return err
	}
	return bw.writeBits(suffix, n)
}
