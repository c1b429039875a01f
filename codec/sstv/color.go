/*
NAME
  color.go

DESCRIPTION
  color.go converts the raw per-channel intensity grid produced by the
  raster demodulator into an RGB pixel grid, according to the mode's color
  space.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package sstv

import "github.com/pkg/errors"

// RGB is one 8-bit-per-channel pixel.
type RGB struct {
	R, G, B uint8
}

// Image is a row-major grid of RGB pixels.
type Image struct {
	Width, Height int
	Pixels        []RGB
}

// At returns the pixel at (x, y).
func (img *Image) At(x, y int) RGB { return img.Pixels[y*img.Width+x] }

func newImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]RGB, width*height)}
}

func (img *Image) set(x, y int, c RGB) { img.Pixels[y*img.Width+x] = c }

// ErrUnsupportedColorSpace is returned by ToImage when mode declares a color
// space with no converter. Only Y1CrCbY2 is implemented; rather than
// silently mis-render, an unrecognized color space fails loudly.
var ErrUnsupportedColorSpace = errors.New("sstv: unsupported color space")

// ToImage converts grid into an RGB image according to mode's color space.
func ToImage(grid *Grid, mode Mode) (*Image, error) {
	switch mode.ColorSpace {
	case Y1CrCbY2:
		return y1CrCbY2ToImage(grid, mode), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedColorSpace, "color space %v", mode.ColorSpace)
	}
}

// y1CrCbY2ToImage implements the Y1CrCbY2 layout: each transmitted line
// carries, in channel order, Y1 (odd image row), Cr, Cb, Y2 (even image
// row). Both image rows derived from one transmitted line share (Cb, Cr).
func y1CrCbY2ToImage(grid *Grid, mode Mode) *Image {
	img := newImage(mode.Width, mode.ImageHeight())

	for r := 0; r < mode.Height; r++ {
		for x := 0; x < mode.Width; x++ {
			y1 := grid.At(r, 0, x)
			cr := grid.At(r, 1, x)
			cb := grid.At(r, 2, x)
			y2 := grid.At(r, 3, x)

			img.set(x, 2*r, ycbcrToRGB(y1, cb, cr))
			img.set(x, 2*r+1, ycbcrToRGB(y2, cb, cr))
		}
	}
	return img
}

// ycbcrToRGB applies the ITU-R BT.601 YCbCr-to-RGB conversion used by PD
// modes, clamping each channel to [0, 255].
func ycbcrToRGB(y, cb, cr uint8) RGB {
	yf := float64(y)
	cbf := float64(cb) - 128
	crf := float64(cr) - 128

	r := clampByte(clampFloat(yf+1.40200*crf, 0, 255))
	g := clampByte(clampFloat(yf-0.34414*cbf-0.71414*crf, 0, 255))
	b := clampByte(clampFloat(yf+1.77200*cbf, 0, 255))
	return RGB{R: r, G: g, B: b}
}
