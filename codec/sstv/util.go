/*
NAME
  util.go

DESCRIPTION
  util.go contains small helpers shared by the header locator, VIS decoder,
  sync tracker, and raster demodulator.

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

// roundSamples converts a duration in seconds to the nearest integer number
// of samples at rate Hz.
func roundSamples(sec float64, rate int) int {
	return int(math.Round(sec * float64(rate)))
}

// window materializes the samples of s in [from, to) as a fresh slice. The
// caller must ensure 0 <= from <= to <= s.Len().
func window(s Stream, from, to int) []float64 {
	buf := make([]float64, to-from)
	for i := range buf {
		buf[i] = s.At(from + i)
	}
	return buf
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
