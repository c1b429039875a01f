/*
NAME
  decode.go

DESCRIPTION
  decode.go wires the header locator, VIS decoder, mode table, raster
  demodulator, and color converter into the single Decode entry point.

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

// Config carries the runtime configuration for a single Decode call. There
// is no package-level mutable state; every field here replaces what could
// otherwise have been a process-wide flag or compile-time override.
type Config struct {
	// AlignAdd nudges the computed image-start sample by this many samples,
	// positive or negative. Corresponds to the CLI's -a flag.
	AlignAdd int

	// ForceSkipHeaders bypasses FindHeader and DecodeVIS entirely, setting
	// the image-start sample to AlignAdd and the VIS code to ForceVISCode.
	// Intended for test fixtures whose preamble is missing or corrupted.
	ForceSkipHeaders bool
	ForceVISCode     uint8

	// Log receives the decode's Debug, Info and Warning messages; the
	// decoder never calls its Error or Fatal methods. It is required: the
	// decoder never falls back to a package-level logger.
	Log Logger
}

// Decode locates, identifies, and demodulates an SSTV transmission in s,
// returning the decoded image.
//
// Decode returns an error for every fatal condition (no samples, header
// not found, VIS parity failure, unsupported mode, unsupported color
// space). It never calls cfg.Log.Fatal itself;
// that is left to the caller, which is expected to log and exit on a
// non-nil error the way cmd/sstv does. Sync loss and end-of-stream during
// raster demodulation are non-fatal: affected rows are left black and
// Decode still returns a complete image.
func Decode(s Stream, cfg Config) (*Image, error) {
	if s.Len() == 0 {
		return nil, ErrNoSamples
	}

	est := NewEstimator()

	visCode := cfg.ForceVISCode
	imageStart := cfg.AlignAdd

	if !cfg.ForceSkipHeaders {
		pos := FindHeader(est, s)
		headerEnd, ok := pos.Get()
		if !ok {
			return nil, ErrHeaderNotFound
		}
		cfg.Log.Info("sstv: calibration header located", "sample", headerEnd)

		vis, err := DecodeVIS(est, s, headerEnd)
		if err != nil {
			return nil, errors.Wrap(err, "sstv: VIS decode failed")
		}
		visCode = vis
		imageStart = headerEnd + 8*bitSizeSamples(s.Rate()) + cfg.AlignAdd
		cfg.Log.Info("sstv: VIS code decoded", "vis", visCode)
	} else {
		cfg.Log.Debug("sstv: header detection skipped by configuration", "vis", visCode, "imageStart", imageStart)
	}

	mode, ok := Lookup(visCode)
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedMode, "vis=%d", visCode)
	}
	cfg.Log.Info("sstv: mode selected", "mode", mode.Name)

	grid := Demodulate(est, s, mode, imageStart, cfg.Log)

	img, err := ToImage(grid, mode)
	if err != nil {
		return nil, err
	}
	return img, nil
}
