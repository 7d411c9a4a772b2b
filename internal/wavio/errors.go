package wavio

import "errors"

var (
	// ErrNotWav indicates the input is not a RIFF/WAVE file.
	ErrNotWav = errors.New("wavio: not a wav file")
	// ErrUnsupportedFormat indicates a WAV layout this package does not
	// handle (multi-channel, non-PCM or an unusual bit depth).
	ErrUnsupportedFormat = errors.New("wavio: unsupported wav format")
)
