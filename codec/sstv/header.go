/*
NAME
  header.go

DESCRIPTION
  header.go implements the calibration header locator: a sliding-window
  search for the four-block preamble (leader, break, leader, VIS-start bit)
  that precedes every SSTV transmission.

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

// headerProbeTimeSec is the duration of each of the four probe windows used
// to test for the calibration preamble. It is short enough to land entirely
// inside a block under worst-case search alignment.
const headerProbeTimeSec = 0.010

// headerHopTimeSec is the coarse step between candidate header start
// positions: a 2ms hop keeps the search affordable (~500 DFTs/sec of audio).
const headerHopTimeSec = 0.002

// headerBlock describes one probe within the four-block preamble, as an
// offset from the candidate start index and an expected tone frequency.
type headerBlock struct {
	offsetSec float64
	hz        float64
}

// headerBlocks lists the four calibration blocks in transmission order:
// leader, break, leader, VIS-start bit.
var headerBlocks = []headerBlock{
	{0, LeaderHz},
	{LeaderTimeSec, BreakHz},
	{LeaderTimeSec + BreakTimeSec, LeaderHz},
	{2*LeaderTimeSec + BreakTimeSec, BreakHz},
}

// FindHeader scans s from the beginning for the four-block calibration
// preamble and returns the sample index at which the VIS data bits begin.
// It returns an absent Position if the scan reaches the end of the stream
// without a match.
func FindHeader(est *Estimator, s Stream) Position {
	rate := s.Rate()
	probeSize := roundSamples(headerProbeTimeSec, rate)
	hop := roundSamples(headerHopTimeSec, rate)
	if hop < 1 {
		hop = 1
	}
	headerSize := roundSamples(headerTimeSec, rate)

	for start := 0; start+headerSize <= s.Len(); start += hop {
		if matchesHeader(est, s, start, probeSize, rate) {
			return Found(start + roundSamples(headerTimeSec, rate))
		}
	}
	return NotFound()
}

// matchesHeader reports whether all four calibration blocks are present at
// the candidate start index.
func matchesHeader(est *Estimator, s Stream, start, probeSize, rate int) bool {
	for _, b := range headerBlocks {
		from := start + roundSamples(b.offsetSec, rate)
		to := from + probeSize
		if to > s.Len() {
			return false
		}
		if !isFrequency(est, window(s, from, to), rate, b.hz) {
			return false
		}
	}
	return true
}
