// Package wavio moves mono signals in and out of PCM WAV files so the
// resampling tools can work on recorded material and hand results to
// external viewers.
package wavio

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/signal"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const pcmFormat = 1

func fullScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedFormat, bitDepth)
	}
}

// Read decodes a mono PCM WAV file into a Signal normalised to [-1, 1).
func Read(r io.ReadSeeker) (signal.Signal, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return signal.Signal{}, ErrNotWav
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return signal.Signal{}, fmt.Errorf("wavio: decoding pcm: %w", err)
	}

	if dec.WavAudioFormat != pcmFormat {
		return signal.Signal{}, fmt.Errorf("%w: audio format %d", ErrUnsupportedFormat, dec.WavAudioFormat)
	}

	if buf.Format == nil || buf.Format.NumChannels != 1 {
		return signal.Signal{}, fmt.Errorf("%w: only mono files are supported", ErrUnsupportedFormat)
	}

	scale, err := fullScale(int(dec.BitDepth))
	if err != nil {
		return signal.Signal{}, err
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v) / scale
	}

	s := signal.New(samples, float64(buf.Format.SampleRate))
	if err := s.Validate(); err != nil {
		return signal.Signal{}, fmt.Errorf("wavio: %w", err)
	}

	return s, nil
}

// Write encodes s as a mono PCM WAV file with the given bit depth (16, 24 or
// 32). WAV headers hold an integer rate, so s.Rate is rounded. Samples are
// clipped to the representable range.
func Write(w io.WriteSeeker, s signal.Signal, bitDepth int) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("wavio: %w", err)
	}

	scale, err := fullScale(bitDepth)
	if err != nil {
		return err
	}

	rate := int(math.Round(s.Rate))
	if rate < 1 {
		return core.InvalidArgument("wavio", "sample rate %v rounds to %d Hz", s.Rate, rate)
	}

	data := make([]int, s.Len())
	for i, v := range s.Samples {
		data[i] = int(math.Round(core.Clamp(v*scale, -scale, scale-1)))
	}

	enc := wav.NewEncoder(w, rate, bitDepth, 1, pcmFormat)

	err = enc.Write(&goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	})
	if err != nil {
		return fmt.Errorf("wavio: writing samples: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalizing file: %w", err)
	}

	return nil
}
