/*
NAME
  errors.go

DESCRIPTION
  errors.go enumerates the fatal error taxonomy of the decode pipeline.
  Non-fatal conditions (sync lost, pixel window past EOF) are never
  represented here; they are logged at Warning and absorbed by the raster
  demodulator.

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

var (
	// ErrNoSamples is returned by Decode when the stream is empty.
	ErrNoSamples = errors.New("sstv: sample stream has no samples")

	// ErrHeaderNotFound is returned by Decode when FindHeader scans to the
	// end of the stream without matching the calibration preamble.
	ErrHeaderNotFound = errors.New("sstv: calibration header not found")

	// ErrUnsupportedMode is returned by Decode when the decoded VIS code has
	// no entry in the mode table.
	ErrUnsupportedMode = errors.New("sstv: unsupported VIS code")
)
