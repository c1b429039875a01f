/*
NAME
  sstv.go

DESCRIPTION
  sstv.go defines the sample stream consumed by the decoder and the global
  protocol constants shared by every stage of the pipeline.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package sstv decodes a Slow-Scan Television transmission captured as a
// mono audio sample stream into a raster image. It implements the
// signal-processing core only: locating the calibration header, decoding the
// VIS mode identifier, tracking per-line synchronization, and demodulating
// pixel tones into a color image. It does not read WAV files or write image
// files; see codec/wav for the former and cmd/sstv for the latter.
package sstv

// Stream is a read-only, time-ordered sequence of real-valued audio samples
// in [-1, 1] at a fixed sample rate. Implementations must be safe for
// concurrent reads; every stage of the decoder borrows a Stream for the
// duration of the decode and never mutates it.
type Stream interface {
	// Len returns the number of samples in the stream.
	Len() int
	// At returns the sample at index i. i must satisfy 0 <= i < Len().
	At(i int) float64
	// Rate returns the sample rate in Hz.
	Rate() int
}

// SliceStream adapts a plain []float64 buffer into a Stream.
type SliceStream struct {
	Samples    []float64
	SampleRate int
}

func (s SliceStream) Len() int        { return len(s.Samples) }
func (s SliceStream) At(i int) float64 { return s.Samples[i] }
func (s SliceStream) Rate() int       { return s.SampleRate }

// Global protocol constants, common to every SSTV mode.
const (
	LeaderTimeSec = 0.300  // Duration of each leader tone block.
	BreakTimeSec  = 0.010  // Duration of the break block between leaders.
	BitTimeSec    = 0.030  // Duration of one VIS bit slot.
	LeaderHz      = 1900.0 // Frequency of the leader tone.
	BreakHz       = 1200.0 // Frequency of the break tone, and the VIS bit threshold.
	FreqMarginHz  = 50.0   // Tolerance used for tone frequency matching.
)

// headerTimeSec is the total duration of the four-block calibration
// preamble: two leaders, one break, and the first (start) VIS bit.
const headerTimeSec = 2*LeaderTimeSec + BreakTimeSec + BitTimeSec

// isFrequency reports whether the dominant frequency of window matches
// expectedHz within FreqMarginHz, using est to estimate the peak.
func isFrequency(est *Estimator, window []float64, rate int, expectedHz float64) bool {
	f := est.Estimate(window, rate)
	d := f - expectedHz
	if d < 0 {
		d = -d
	}
	return d < FreqMarginHz
}
