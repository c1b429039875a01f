/*
NAME
  sync.go

DESCRIPTION
  sync.go implements the per-line sync tracker: given an approximate line
  start, it scans forward sample-by-sample to find the end of the sync pulse
  and returns a position near the start of the porch.

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

// syncWindowFactor widens the sync probe window beyond the nominal sync
// pulse duration so that genuine sync pulses retain DFT dominance despite
// timing drift between transmitter and receiver sample clocks.
const syncWindowFactor = 1.4

// TrackSync scans s forward from alignStart looking for the end of the line
// sync pulse, returning the first sample index after it, offset by half a
// sync window to land near the start of the porch.
//
// The scan steps one sample at a time rather than coarse-hopping like
// FindHeader: this system decodes whole files offline, so trading the extra
// DFTs for alignment precision on every line is an acceptable cost.
func TrackSync(est *Estimator, s Stream, mode Mode, alignStart int) Position {
	rate := s.Rate()
	syncWindow := roundSamples(mode.SyncTimeSec*syncWindowFactor, rate)
	if syncWindow <= 0 || alignStart+syncWindow >= s.Len() {
		return NotFound()
	}

	for i := alignStart; i+syncWindow <= s.Len(); i++ {
		if !isFrequency(est, window(s, i, i+syncWindow), rate, mode.SyncHz) {
			return Found(i + syncWindow/2)
		}
	}
	return NotFound()
}
