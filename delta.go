package gwd

// Scanlines are delta-coded against the previous pixel with a mirrored
// predictor: the previous value p is folded at 128 into m = p or 255-p,
// and small differences from m map to small symbols regardless of how
// close p sits to either end of the range. deltaTable resolves a coded
// symbol back to a pixel value; deltaEncode is its exact inverse.
//
// The table is built once at package init and never written again, so
// it is safe to share across concurrent decodes.
var deltaTable = makeDeltaTable()

// makeDeltaTable builds the symbol-by-previous-pixel decode lookup.
func makeDeltaTable() *[256][256]uint8 {
	var t [256][256]uint8
	for j := 0; j < 256; j++ {
		for p := 0; p < 256; p++ {
			m := p
			if p >= 128 {
				m = 255 - p
			}

			var v int
			switch {
			case 2*m < j:
				v = j
			case j&1 == 1:
				v = m + (j+1)>>1
			default:
				v = m - j>>1
			}

			if p >= 128 {
				v = 255 - v
			}
			t[j][p] = uint8(v)
		}
	}
	return &t
}

// deltaDecode resolves coded symbol sym against previous pixel prev.
func deltaDecode(sym, prev uint8) uint8 {
	return deltaTable[sym][prev]
}

// deltaEncode maps pixel cur to the symbol that deltaDecode resolves
// back to cur given the same previous pixel.
func deltaEncode(cur, prev uint8) uint8 {
	m := int(prev)
	v := int(cur)
	if prev >= 128 {
		m = 255 - m
		v = 255 - v
	}

	switch {
	case v > 2*m:
		return uint8(v)
	case v > m:
		return uint8(2*(v-m) - 1)
	default:
		return uint8(2 * (m - v))
	}
}
