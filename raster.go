package gwd

import (
	"fmt"
	"image"
	"image/color"
)

// Raster holds decoded pixel samples in the order they are stored in
// the file: row-major, channel-interleaved, one byte per sample. A
// raster has 1 channel (8-bit files), 3 channels (24-bit files) or 4
// channels once an alpha plane has been merged in.
//
// The stored channel order for color images is blue-first; Image
// applies the display-order swap. Each decode owns its raster outright,
// nothing is shared between calls.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte
}

// NewRaster allocates a raster for the given dimensions.
func NewRaster(width, height, channels int) (*Raster, error) {
	if channels != 1 && channels != 3 && channels != 4 {
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, channels)
	}
	if width < 0 || height < 0 {
		return nil, ErrSizeOverflow
	}

	return &Raster{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]byte, width*height*channels),
	}, nil
}

func (r *Raster) validate() error {
	if r.Channels != 1 && r.Channels != 3 && r.Channels != 4 {
		return fmt.Errorf("%w: %d", ErrChannelCount, r.Channels)
	}
	if len(r.Pix) != r.Width*r.Height*r.Channels {
		return fmt.Errorf("%w: %dx%dx%d needs %d bytes, have %d",
			ErrRasterSize, r.Width, r.Height, r.Channels, r.Width*r.Height*r.Channels, len(r.Pix))
	}
	return nil
}

// Image converts the raster to a standard image. Single-channel rasters
// become grayscale; color rasters become NRGBA with the stored
// blue-first channel order swapped to red-first.
func (r *Raster) Image() image.Image {
	if r.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
		copy(img.Pix, r.Pix)
		return img
	}

	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := 0; i < r.Width*r.Height; i++ {
		s := r.Pix[i*r.Channels:]
		d := img.Pix[i*4:]
		d[0] = s[2]
		d[1] = s[1]
		d[2] = s[0]
		if r.Channels == 4 {
			d[3] = s[3]
		} else {
			d[3] = 0xff
		}
	}
	return img
}

// rasterFromImage flattens an image into a 3-channel raster, dropping
// any alpha. Channels are stored in the image's red-first order; see
// the round-trip note on Write.
func rasterFromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	ras, err := NewRaster(bounds.Dx(), bounds.Dy(), 3)
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.NRGBA); ok {
		i := 0
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[(y-bounds.Min.Y)*src.Stride:]
			for x := 0; x < ras.Width; x++ {
				ras.Pix[i] = row[x*4]
				ras.Pix[i+1] = row[x*4+1]
				ras.Pix[i+2] = row[x*4+2]
				i += 3
			}
		}
		return ras, nil
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			ras.Pix[i] = c.R
			ras.Pix[i+1] = c.G
			ras.Pix[i+2] = c.B
			i += 3
		}
	}
	return ras, nil
}
