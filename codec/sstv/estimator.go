/*
NAME
  estimator.go

DESCRIPTION
  estimator.go implements peak-frequency estimation over a short window of
  real audio samples: DC removal, Hann windowing, a real-to-complex DFT, and
  barycentric sub-bin interpolation of the spectral peak.

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

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	dspwindow "github.com/mjibson/go-dsp/window"
)

// Estimator computes the dominant sinusoidal frequency of a window of real
// samples. It is a pure function of its arguments, but keeps its Hann
// coefficients and windowed-sample buffer across calls, since the raster
// demodulator's hot loop runs tens of thousands of estimates per image. The
// spectrum returned by fft.FFTReal is still allocated on every call.
type Estimator struct {
	n        int
	hann     []float64
	windowed []float64
}

// NewEstimator returns a ready-to-use Estimator.
func NewEstimator() *Estimator { return &Estimator{} }

// Estimate returns the dominant frequency, in Hz, of window sampled at rate
// Hz. len(window) must be at least 2; this is a programmer error, not a
// reportable runtime condition, and panics. A window that is constant (zero
// variance after DC removal) returns 0.
func (e *Estimator) Estimate(win []float64, rate int) float64 {
	n := len(win)
	if n < 2 {
		panic("sstv: Estimate requires a window of at least 2 samples")
	}
	e.resize(n)

	mean := 0.0
	for _, s := range win {
		mean += s
	}
	mean /= float64(n)

	nonZero := false
	for i, s := range win {
		v := s - mean
		if v != 0 {
			nonZero = true
		}
		e.windowed[i] = v * e.hann[i]
	}
	if !nonZero {
		return 0
	}

	spectrum := fft.FFTReal(e.windowed)
	m := n/2 + 1

	peak := 0
	peakMag := 0.0
	for k := 0; k < m; k++ {
		mag := cmplx.Abs(spectrum[k])
		if mag > peakMag {
			peakMag = mag
			peak = k
		}
	}

	a := neighborMag(spectrum, peak-1, m, peakMag)
	c := neighborMag(spectrum, peak+1, m, peakMag)
	refined := refineIndex(peak, a, peakMag, c)

	return refined * float64(rate) / float64(n)
}

// refineIndex applies barycentric interpolation to the magnitude triplet
// (a, b, c) centered on the discrete peak bin k, returning a fractional bin
// index. If a+b+c is zero the refined index is 0.
func refineIndex(k int, a, b, c float64) float64 {
	if a+b+c == 0 {
		return 0
	}
	return float64(k) + (c-a)/(a+b+c)
}

// neighborMag returns the magnitude of spectrum[k] if k is a valid bin index
// in [0, m), and fallback otherwise (the barycentric formula's rule for
// treating an edge bin as if its missing neighbor equalled the peak).
func neighborMag(spectrum []complex128, k, m int, fallback float64) float64 {
	if k < 0 || k >= m {
		return fallback
	}
	return cmplx.Abs(spectrum[k])
}

// resize ensures the Hann coefficients and windowed-sample scratch buffer
// are sized for n, recomputing the Hann window only when n changes.
func (e *Estimator) resize(n int) {
	if e.n == n {
		return
	}
	e.n = n
	e.hann = dspwindow.Hann(n)
	e.windowed = make([]float64, n)
}
