/*
NAME
  load_test.go

DESCRIPTION
  load_test.go tests decoding of WAV files into normalized mono samples.

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
	"bytes"
	"math"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// encodeTestWAV builds a mono or stereo 16-bit PCM WAV in memory for use as
// test fixtures, using the same go-audio/wav encoder the decode path's
// round-trip depends on.
func encodeTestWAV(t *testing.T, rate, channels int, samples [][]int) []byte {
	t.Helper()

	buf := &bytes.Buffer{}
	ws := &seekBuffer{buf: buf}
	enc := wav.NewEncoder(ws, rate, 16, channels, 1)

	var data []int
	for _, frame := range samples {
		data = append(data, frame...)
	}
	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(ib); err != nil {
		t.Fatalf("failed to encode test wav: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close encoder: %v", err)
	}
	return ws.Bytes()
}

// seekBuffer is a minimal io.WriteSeeker backed by a bytes.Buffer, needed
// because the go-audio/wav encoder seeks back to patch the RIFF header
// after writing all frames.
type seekBuffer struct {
	buf *bytes.Buffer
	pos int
}

func (s *seekBuffer) Bytes() []byte { return s.buf.Bytes() }

func (s *seekBuffer) Write(p []byte) (int, error) {
	b := s.buf.Bytes()
	if s.pos+len(p) > len(b) {
		grown := make([]byte, s.pos+len(p))
		copy(grown, b)
		s.buf = bytes.NewBuffer(grown)
		b = s.buf.Bytes()
	}
	copy(b[s.pos:], p)
	s.pos += len(p)
	return len(p), nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = int(offset)
	case 1:
		s.pos += int(offset)
	case 2:
		s.pos = s.buf.Len() + int(offset)
	}
	return int64(s.pos), nil
}

func TestLoadMono(t *testing.T) {
	const rate = 44100
	samples := [][]int{{0}, {16384}, {-16384}, {32767}, {-32768}}
	raw := encodeTestWAV(t, rate, 1, samples)

	s, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Rate != rate {
		t.Errorf("Rate = %d, want %d", s.Rate, rate)
	}
	if s.Len() != len(samples) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(samples))
	}
	want := []float64{0, 0.5, -0.5, 32767.0 / 32768.0, -1}
	for i, w := range want {
		if math.Abs(s.At(i)-w) > 1e-3 {
			t.Errorf("sample %d = %v, want %v", i, s.At(i), w)
		}
	}
}

func TestLoadStereoDownmix(t *testing.T) {
	const rate = 8000
	// Left/right pairs: downmix should average to mono.
	samples := [][]int{{16384, -16384}, {32767, -32768}}
	raw := encodeTestWAV(t, rate, 2, samples)

	s, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	for i, v := range s.Data {
		if math.Abs(v) > 1e-3 {
			t.Errorf("sample %d = %v, want ~0 (balanced stereo average)", i, v)
		}
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("not a wav file")))
	if err == nil {
		t.Fatal("expected error decoding invalid WAV data")
	}
}

// pcm16LE packs mono 16-bit samples into little-endian PCM bytes, the
// payload WAV.Write expects.
func pcm16LE(samples []int16) []byte {
	out := make([]byte, 2*len(samples))
	for i, v := range samples {
		out[2*i] = byte(v)
		out[2*i+1] = byte(v >> 8)
	}
	return out
}

// TestLoadRoundTripWithWAVWriter round-trips a file written by WAV.Write
// back through Load, so the same encoder this package exposes for callers
// that build WAV files is exercised against the decoder it now also
// provides.
func TestLoadRoundTripWithWAVWriter(t *testing.T) {
	const rate = 44100
	samples := []int16{0, 16384, -16384, 32767, -32768}

	wr := &WAV{Metadata: Metadata{
		AudioFormat: PCMFormat,
		Channels:    1,
		SampleRate:  rate,
		BitDepth:    16,
	}}
	if _, err := wr.Write(pcm16LE(samples)); err != nil {
		t.Fatalf("WAV.Write() error = %v", err)
	}

	s, err := Load(bytes.NewReader(wr.Audio))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Rate != rate {
		t.Errorf("Rate = %d, want %d", s.Rate, rate)
	}
	want := []float64{0, 0.5, -0.5, 32767.0 / 32768.0, -1}
	if s.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(want))
	}
	for i, w := range want {
		if math.Abs(s.At(i)-w) > 1e-3 {
			t.Errorf("sample %d = %v, want %v", i, s.At(i), w)
		}
	}
}
