package gwd

import "errors"

var (
	// ErrInvalidHeader indicates the input does not start with a GWD header.
	ErrInvalidHeader = errors.New("invalid GWD header")
	// ErrUnsupportedBitDepth indicates a bit depth the decoder cannot handle.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrTruncatedStream indicates the bitstream ended mid-decode.
	ErrTruncatedStream = errors.New("truncated bitstream")
	// ErrLineOverrun indicates a run or literal token exceeds the scanline width.
	ErrLineOverrun = errors.New("token overruns scanline")
	// ErrCountOverflow indicates a count code prefix too long to decode.
	ErrCountOverflow = errors.New("count code overflow")
	// ErrCountTooLarge indicates a count value too large to encode.
	ErrCountTooLarge = errors.New("count value too large")
	// ErrChannelCount indicates a raster channel count outside {1, 3, 4}.
	ErrChannelCount = errors.New("unsupported channel count")
	// ErrRasterSize indicates raster pixel data does not match its dimensions.
	ErrRasterSize = errors.New("raster size mismatch")
	// ErrSizeOverflow indicates a dimension exceeds the header field range.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrDecodeScanline indicates scanline decoding failed.
	ErrDecodeScanline = errors.New("decode scanline failed")
	// ErrEncodeScanline indicates scanline encoding failed.
	ErrEncodeScanline = errors.New("encode scanline failed")
	// ErrDecodeAlpha indicates the nested alpha sub-image failed to decode.
	ErrDecodeAlpha = errors.New("decode alpha sub-image failed")
	// ErrOpenFile indicates a GWD file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates a GWD file creation failed.
	ErrCreateFile = errors.New("create file failed")
)
