/*
Package gwd implements the AdvSys3 GWD compressed raster container,
reading and writing.

A GWD file stores a 12-byte header (payload size, "GWD" magic,
dimensions, bit depth) followed by a continuous bitstream of run-length
and delta-coded scanlines, one line per channel per row. 24-bit images
may carry a nested 8-bit sub-image after the primary payload that is
merged in as an inverted alpha plane.

The package focuses on practical workflows: read config, decode a file
into an image, and encode 24-bit images back to GWD. Decoded pixel data
is also available as a Raster in the stored channel order for callers
that need the raw planes.
*/
package gwd
