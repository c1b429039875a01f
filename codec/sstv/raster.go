/*
NAME
  raster.go

DESCRIPTION
  raster.go implements the raster demodulator: the per-line driver that
  resyncs to each line's sync pulse, samples every channel's pixel tones via
  the frequency estimator, and maps frequency to an 8-bit intensity.

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

import "math"

// Grid is the raw per-channel intensity grid produced by Demodulate, shaped
// [Height][NumChannels][Width]. Cells that could not be recovered because the
// stream ended early remain zero.
type Grid struct {
	Height      int
	NumChannels int
	Width       int
	cells       [][][]uint8
}

// At returns the intensity of channel c, pixel p, on transmitted line r.
func (g *Grid) At(r, c, p int) uint8 { return g.cells[r][c][p] }

func newGrid(mode Mode) *Grid {
	cells := make([][][]uint8, mode.Height)
	for r := range cells {
		cells[r] = make([][]uint8, mode.NumChannels)
		for c := range cells[r] {
			cells[r][c] = make([]uint8, mode.Width)
		}
	}
	return &Grid{Height: mode.Height, NumChannels: mode.NumChannels, Width: mode.Width, cells: cells}
}

// Demodulate drives the per-line loop for mode starting at the approximate
// image-start sample imageStart, returning the raw channel grid. Lines are
// resynchronized independently via TrackSync so that sample-clock drift
// between transmitter and receiver accumulates over at most one line,
// rather than slanting the whole image.
//
// If a line's sync pulse or a pixel's sample window runs past the end of the
// stream, demodulation stops: the current row keeps only the pixels written
// before that point, all subsequent rows of the grid remain zero, and the
// condition is logged as a warning rather than returned as an error: sync
// lost mid-image is non-fatal.
func Demodulate(est *Estimator, s Stream, mode Mode, imageStart int, log Logger) *Grid {
	grid := newGrid(mode)
	rate := s.Rate()

	centerWindowTime := mode.PixelTimeSec * mode.WindowFactor / 2
	pixelWindow := roundSamples(2*centerWindowTime, rate)
	channelTime := mode.PixelTimeSec * float64(mode.Width)

	lineStart := imageStart
	for r := 0; r < mode.Height; r++ {
		pos := TrackSync(est, s, mode, lineStart)
		idx, ok := pos.Get()
		if !ok {
			log.Warning("sstv: sync lost, ending raster demodulation early", "line", r)
			break
		}
		lineStart = idx

		if !demodulateLine(est, s, mode, grid, r, lineStart, rate, channelTime, centerWindowTime, pixelWindow) {
			log.Warning("sstv: pixel window ran past end of stream, ending raster demodulation early", "line", r)
			break
		}

		// The next line's sync pulse begins where this line's last channel ends.
		lineStart += roundSamples(mode.PorchTimeSec+channelTime*float64(mode.NumChannels), rate)
	}
	return grid
}

// demodulateLine fills row r of grid from the samples following lineStart.
// It returns false if a pixel's sample window would run past the end of s,
// in which case the row (and any already-written pixels within it) is left
// as-is and the caller should stop demodulating further lines.
func demodulateLine(est *Estimator, s Stream, mode Mode, grid *Grid, r, lineStart, rate int, channelTime, centerWindowTime float64, pixelWindow int) bool {
	for c := 0; c < mode.NumChannels; c++ {
		for p := 0; p < mode.Width; p++ {
			offsetSec := mode.PorchTimeSec + channelTime*float64(c) + mode.PixelTimeSec*(float64(p)+0.5) - centerWindowTime
			pixelSample := int(math.Round(float64(lineStart) + offsetSec*float64(rate)))

			from, to := pixelSample, pixelSample+pixelWindow
			if from < 0 || to > s.Len() {
				return false
			}

			f := est.Estimate(window(s, from, to), rate)
			grid.cells[r][c][p] = frequencyToIntensity(f, mode)
		}
	}
	return true
}

// frequencyToIntensity linearly maps f from [mode.PixelMinHz, mode.PixelMaxHz]
// to an 8-bit intensity, clamping at both ends.
func frequencyToIntensity(f float64, mode Mode) uint8 {
	span := mode.PixelMaxHz - mode.PixelMinHz
	v := (f - mode.PixelMinHz) / span * 256
	return clampByte(clampFloat(v, 0, 255))
}
