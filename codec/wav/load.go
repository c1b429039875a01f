/*
NAME
  load.go

DESCRIPTION
  load.go contains functions for decoding a WAV file into a mono, normalized
  stream of float64 samples suitable for SSTV demodulation.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package wav

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

// Samples is a decoded, mono, normalized sample stream read from a WAV file.
// Data holds one float64 per sample in [-1, 1]; Rate is the sample rate in Hz.
// Samples is immutable once returned by Load.
type Samples struct {
	Data []float64
	Rate int
}

// Len returns the number of samples in the stream.
func (s *Samples) Len() int { return len(s.Data) }

// At returns the sample at index i. The caller must ensure i is in range;
// this is the hot path of the decode pipeline and does not bounds-check
// beyond what a slice index does naturally.
func (s *Samples) At(i int) float64 { return s.Data[i] }

// Load reads a WAV file from r, averages all channels to mono, and
// normalizes integer or float PCM samples to float64 in [-1, 1].
//
// Channel averaging and PCM normalization follow the same approach as a
// typical SSTV receiver front end: multi-channel recordings are collapsed to
// mono before any frequency analysis occurs, since SSTV audio is carried on
// a single voice-bandwidth channel regardless of how many channels the
// capture device recorded.
func Load(r io.ReadSeeker) (*Samples, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, errors.New("wav: not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "wav: failed to read PCM buffer")
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, errors.New("wav: missing or invalid format chunk")
	}

	mono, err := toMono(buf)
	if err != nil {
		return nil, errors.Wrap(err, "wav: failed to downmix to mono")
	}

	return &Samples{Data: mono, Rate: buf.Format.SampleRate}, nil
}

// toMono averages all channels of buf into a single float64 stream
// normalized by the buffer's source bit depth.
func toMono(buf *audio.IntBuffer) ([]float64, error) {
	ch := buf.Format.NumChannels
	if ch <= 0 {
		return nil, errors.New("invalid channel count")
	}

	depth := buf.SourceBitDepth
	if depth <= 0 {
		depth = 16
	}
	full := float64(int64(1) << uint(depth-1))

	n := len(buf.Data) / ch
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		v := (sum / float64(ch)) / full
		out[i] = clampUnit(v)
	}
	return out, nil
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
