/*
NAME
  mode.go

DESCRIPTION
  mode.go defines the SSTV mode descriptor and the static mode table keyed by
  VIS code.

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

// ColorSpace identifies how a transmitted line's channels map to RGB pixels.
type ColorSpace int

const (
	// Y1CrCbY2 carries two luma lines (Y1, Y2) sharing one Cr/Cb chroma
	// pair per transmitted line, as used by the PD family of modes.
	Y1CrCbY2 ColorSpace = iota
)

func (c ColorSpace) String() string {
	switch c {
	case Y1CrCbY2:
		return "Y1CrCbY2"
	default:
		return "unknown"
	}
}

// Mode is an immutable description of one SSTV mode: its geometry, timing,
// and tone frequencies. New modes are added by appending entries to Table;
// no other component depends on the set of modes at compile time.
type Mode struct {
	Name string // Short human-readable label, e.g. "PD-120".
	VIS  uint8  // 7-bit VIS identifier.

	Width       int // Pixels per transmitted line.
	Height      int // Number of transmitted lines (may be fewer than image rows).
	NumChannels int // Channels per transmitted line.

	SyncTimeSec  float64 // Duration of the per-line sync pulse.
	PorchTimeSec float64 // Duration of the per-line porch.
	PixelTimeSec float64 // Duration of one channel of one pixel.

	// WindowFactor scales PixelTimeSec to produce the estimator's DFT
	// window width, centered on the pixel midpoint. Must be in [0, 1].
	WindowFactor float64

	ColorSpace ColorSpace

	SyncHz      float64
	PorchHz     float64
	PixelMinHz  float64
	PixelMaxHz  float64
}

// ImageHeight returns the number of output image rows this mode produces,
// accounting for the color space's line-packing (Y1CrCbY2 emits two image
// rows per transmitted line).
func (m Mode) ImageHeight() int {
	switch m.ColorSpace {
	case Y1CrCbY2:
		return 2 * m.Height
	default:
		return m.Height
	}
}

// Table is the static, ordered catalog of supported SSTV modes.
var Table = []Mode{
	{
		Name:         "PD-120",
		VIS:          95,
		Width:        640,
		Height:       248,
		NumChannels:  4,
		SyncTimeSec:  0.020000,
		PorchTimeSec: 0.002080,
		PixelTimeSec: 0.000190,
		WindowFactor: 1.0,
		ColorSpace:   Y1CrCbY2,
		SyncHz:       1200,
		PorchHz:      1500,
		PixelMinHz:   1500,
		PixelMaxHz:   2300,
	},
}

// Lookup returns the Mode registered for vis, and whether one was found.
func Lookup(vis uint8) (Mode, bool) {
	for _, m := range Table {
		if m.VIS == vis {
			return m, true
		}
	}
	return Mode{}, false
}
