/*
NAME
  sstv - decodes a Slow-Scan Television transmission captured in a WAV file
  into a PNG image.

AUTHORS
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command sstv decodes an SSTV transmission captured in a WAV file and
// writes the recovered image as a PNG.
//
// Usage:
//
//	sstv [-a N] [-o PATH] [-v] INPUT_WAV
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/sstv/codec/sstv"
	"github.com/ausocean/sstv/codec/wav"
)

const (
	progName      = "sstv"
	defaultOutput = "./result.png"
	logPath       = "/var/log/sstv/sstv.log"
	logMaxSize    = 10 // MB
	logMaxBackups = 3
	logMaxAge     = 28 // days
)

func main() {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	alignAdd := fs.Int("a", 0, "add N samples to the computed image start (manual slant nudge)")
	output := fs.String("o", defaultOutput, "output image path")
	verbose := fs.Bool("v", false, "enable debug-level logging")
	fs.Usage = func() { usage(fs) }

	switch err := fs.Parse(os.Args[1:]); {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		os.Exit(1)
	}

	if fs.NArg() != 1 {
		usage(fs)
		os.Exit(1)
	}
	inputPath := fs.Arg(0)

	log := newLogger(*verbose)

	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatal("could not open input file", "path", inputPath, "error", err.Error())
	}
	defer f.Close()

	samples, err := wav.Load(f)
	if err != nil {
		log.Fatal("could not decode WAV file", "path", inputPath, "error", err.Error())
	}
	log.Info("loaded WAV file", "path", inputPath, "samples", samples.Len(), "rate", samples.Rate)

	stream := sstv.SliceStream{Samples: samples.Data, SampleRate: samples.Rate}
	cfg := sstv.Config{AlignAdd: *alignAdd, Log: log}

	img, err := sstv.Decode(stream, cfg)
	if err != nil {
		log.Fatal("decode failed", "error", err.Error())
	}

	if err := writePNG(*output, img); err != nil {
		log.Fatal("could not write output image", "path", *output, "error", err.Error())
	}
	log.Info("wrote image", "path", *output, "width", img.Width, "height", img.Height)
}

func usage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: %s [-a N] [-o PATH] [-v] INPUT_WAV\n", progName)
	fs.PrintDefaults()
}

// newLogger builds the logger used for the whole run: INFO (or DEBUG with
// -v) severity, writing to both stdout and a rotating log file, the same
// pairing cmd/looper uses for its netsender logger.
func newLogger(verbose bool) logging.Logger {
	level := logging.Info
	if verbose {
		level = logging.Debug
	}
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAge,
	}
	return logging.New(level, io.MultiWriter(os.Stdout, fileLog), true)
}

// writePNG encodes img as a non-interlaced 8-bit RGB PNG at path.
func writePNG(path string, img *sstv.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, toGoImage(img))
}

func toGoImage(img *sstv.Image) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return out
}
