package resample

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// keptBins returns, for n = min(M, N), the count of leading bins (DC up to
// and including Nyquist when present) and trailing negative-frequency bins
// carried between spectra.
func keptBins(n int) (head, tail int) {
	head = n/2 + 1
	if n > 2 {
		tail = n - head
	}

	return head, tail
}

// resizeSpectrum writes the length-len(dst) spectrum derived from src.
// dst is fully overwritten. For an even n = min(M, N) the Nyquist bin is
// joined (downsampling) or split in half and mirrored (upsampling).
func resizeSpectrum(dst, src []complex128) {
	m, nIn := len(dst), len(src)
	n := min(m, nIn)
	head, tail := keptBins(n)

	for i := range dst {
		dst[i] = 0
	}

	copy(dst[:head], src[:head])
	copy(dst[m-tail:], src[nIn-tail:])

	if n%2 != 0 {
		return
	}

	switch {
	case m < nIn:
		dst[n/2] += src[nIn-n/2]
	case m > nIn:
		dst[n/2] *= 0.5
		dst[m-n/2] = dst[n/2]
	}
}

// lostEnergy returns the fraction of spectral energy in spec that a
// conversion to length m discards. Upsampling and identity lose nothing.
func lostEnergy(spec []complex128, m int) float64 {
	nIn := len(spec)
	if m >= nIn {
		return 0
	}

	re := make([]float64, nIn)
	im := make([]float64, nIn)
	for i, c := range spec {
		re[i], im[i] = real(c), imag(c)
	}

	power := make([]float64, nIn)
	vecmath.Power(power, re, im)

	total := floats.Sum(power)
	if total == 0 {
		return 0
	}

	head, tail := keptBins(m)
	kept := floats.Sum(power[:head]) + floats.Sum(power[nIn-tail:])
	if m%2 == 0 {
		kept += power[nIn-m/2]
	}

	lost := 1 - kept/total
	if lost < 0 {
		return 0
	}

	return lost
}
