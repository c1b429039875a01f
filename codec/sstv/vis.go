/*
NAME
  vis.go

DESCRIPTION
  vis.go implements the VIS (Vertical Interval Signaling) decoder: reading
  the 8-bit mode identifier word transmitted as a sequence of fixed-duration
  tones, and validating its even parity.

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

// ErrVISParity is returned by DecodeVIS when the received byte fails its
// even-parity check. The caller should treat this as fatal: a parity
// failure must never produce a guessed VIS code.
var ErrVISParity = errors.New("sstv: VIS parity check failed")

// DecodeVIS reads the 8-bit VIS word starting at sample index start and
// returns the 7-bit mode code. Each bit slot is bitSizeSamples(s.Rate())
// samples long, that is round(BitTimeSec * s.Rate()).
func DecodeVIS(est *Estimator, s Stream, start int) (uint8, error) {
	var word uint8
	bitSize := bitSizeSamples(s.Rate())
	for i := 0; i < 8; i++ {
		from := start + i*bitSize
		to := from + bitSize
		if to > s.Len() {
			return 0, errors.New("sstv: VIS word runs past end of stream")
		}

		f := est.Estimate(window(s, from, to), s.Rate())
		if f <= BreakHz {
			word |= 1 << uint(i)
		}
	}

	if !evenParity(word) {
		return 0, ErrVISParity
	}
	return word & 0x7F, nil
}

// bitSizeSamples returns the number of samples in one VIS bit slot at rate.
func bitSizeSamples(rate int) int {
	return roundSamples(BitTimeSec, rate)
}

// evenParity reports whether word has an even number of set bits.
func evenParity(word uint8) bool {
	return popcount(word)%2 == 0
}

func popcount(b uint8) int {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n
}

// encodeVIS returns the 8-bit transmitted word for the 7-bit vis code,
// setting bit 7 so that the whole byte has even parity. It is the inverse of
// DecodeVIS's parity bit, used by tests that synthesize VIS transmissions.
func encodeVIS(vis uint8) uint8 {
	word := vis & 0x7F
	if !evenParity(word) {
		word |= 1 << 7
	}
	return word
}
