/*
NAME
  helpers_test.go

DESCRIPTION
  helpers_test.go provides synthetic signal generators shared by the
  protocol-level tests: tone blocks, calibration headers, VIS words, and
  full SSTV lines.

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
	"io"
	"math"

	"github.com/ausocean/utils/logging"
)

// appendTone appends dur seconds of a sine wave at hz to buf, sampled at
// rate, continuing the phase from len(buf) so consecutive tones don't click.
func appendTone(buf []float64, hz float64, dur float64, rate int) []float64 {
	start := len(buf)
	n := int(math.Round(dur * float64(rate)))
	for i := 0; i < n; i++ {
		t := float64(start+i) / float64(rate)
		buf = append(buf, math.Sin(2*math.Pi*hz*t))
	}
	return buf
}

// buildCalibrationHeader appends the four-block calibration preamble to buf.
func buildCalibrationHeader(buf []float64, rate int, leaderHz float64) []float64 {
	buf = appendTone(buf, leaderHz, LeaderTimeSec, rate)
	buf = appendTone(buf, BreakHz, BreakTimeSec, rate)
	buf = appendTone(buf, leaderHz, LeaderTimeSec, rate)
	buf = appendTone(buf, BreakHz, BitTimeSec, rate)
	return buf
}

// buildVISWord appends the 8 VIS bit tones encoding word to buf. A 1 bit is
// sent at 1100 Hz (<= BreakHz) and a 0 bit at 1300 Hz (> BreakHz).
func buildVISWord(buf []float64, rate int, word uint8) []float64 {
	for i := 0; i < 8; i++ {
		bit := (word >> uint(i)) & 1
		hz := 1300.0
		if bit == 1 {
			hz = 1100.0
		}
		buf = appendTone(buf, hz, BitTimeSec, rate)
	}
	return buf
}

// buildPreambleAndVIS builds a full calibration header followed by the VIS
// word for vis (with its parity bit set).
func buildPreambleAndVIS(rate int, leaderHz float64, vis uint8) []float64 {
	var buf []float64
	buf = buildCalibrationHeader(buf, rate, leaderHz)
	buf = buildVISWord(buf, rate, encodeVIS(vis))
	return buf
}

// buildLine appends one transmitted line of mode to buf: a sync pulse, a
// porch, then each channel's width pixels at the frequency given by
// channelHz(channel, pixel).
func buildLine(buf []float64, rate int, mode Mode, channelHz func(c, p int) float64) []float64 {
	buf = appendTone(buf, mode.SyncHz, mode.SyncTimeSec, rate)
	buf = appendTone(buf, mode.PorchHz, mode.PorchTimeSec, rate)
	for c := 0; c < mode.NumChannels; c++ {
		for p := 0; p < mode.Width; p++ {
			buf = appendTone(buf, channelHz(c, p), mode.PixelTimeSec, rate)
		}
	}
	return buf
}

func testStream(data []float64, rate int) SliceStream {
	return SliceStream{Samples: data, SampleRate: rate}
}

func discardLog() Logger {
	return logging.New(logging.Debug, io.Discard, true)
}
