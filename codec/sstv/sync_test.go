/*
NAME
  sync_test.go

DESCRIPTION
  sync_test.go tests per-line sync pulse tracking.

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

import "testing"

func pd120() Mode {
	m, _ := Lookup(95)
	return m
}

func TestTrackSyncFindsPorchBoundary(t *testing.T) {
	mode := pd120()
	var buf []float64
	buf = appendTone(buf, mode.SyncHz, mode.SyncTimeSec, testRate)
	buf = appendTone(buf, mode.PorchHz, mode.PorchTimeSec, testRate)
	buf = appendTone(buf, mode.PorchHz, 0.050, testRate) // trailing porch-frequency padding
	s := testStream(buf, testRate)
	est := NewEstimator()

	pos := TrackSync(est, s, mode, 0)
	idx, ok := pos.Get()
	if !ok {
		t.Fatal("TrackSync() did not find the end of the sync pulse")
	}

	syncSamples := roundSamples(mode.SyncTimeSec, testRate)
	// The returned index should land close to the sync/porch boundary.
	if idx < syncSamples/2 || idx > syncSamples+roundSamples(mode.PorchTimeSec, testRate) {
		t.Errorf("TrackSync() = %d, want near sync/porch boundary %d", idx, syncSamples)
	}
}

func TestTrackSyncEndOfStream(t *testing.T) {
	mode := pd120()
	buf := appendTone(nil, mode.SyncHz, mode.SyncTimeSec/2, testRate) // too short to contain a full sync window
	s := testStream(buf, testRate)
	est := NewEstimator()

	pos := TrackSync(est, s, mode, 0)
	if _, ok := pos.Get(); ok {
		t.Fatal("TrackSync() found a result in a stream too short to contain a sync window")
	}
}
