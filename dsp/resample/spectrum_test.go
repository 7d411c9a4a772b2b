package resample

import (
	"math/cmplx"
	"testing"
)

func bins(n int) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(float64(i+1), float64(-i))
	}
	return out
}

func TestResizeSpectrum(t *testing.T) {
	x8 := bins(8)
	x4 := bins(4)
	x5 := bins(5)
	x3 := bins(3)
	x2 := bins(2)

	tests := []struct {
		name string
		src  []complex128
		m    int
		want []complex128
	}{
		{
			name: "even downsample joins nyquist",
			src:  x8,
			m:    4,
			want: []complex128{x8[0], x8[1], x8[2] + x8[6], x8[7]},
		},
		{
			name: "even upsample splits nyquist",
			src:  x4,
			m:    8,
			want: []complex128{x4[0], x4[1], x4[2] / 2, 0, 0, 0, x4[2] / 2, x4[3]},
		},
		{
			name: "odd downsample",
			src:  x5,
			m:    3,
			want: []complex128{x5[0], x5[1], x5[4]},
		},
		{
			name: "odd upsample",
			src:  x3,
			m:    6,
			want: []complex128{x3[0], x3[1], 0, 0, 0, x3[2]},
		},
		{
			name: "two to one",
			src:  x2,
			m:    1,
			want: []complex128{x2[0]},
		},
		{
			name: "one to four",
			src:  bins(1),
			m:    4,
			want: []complex128{1, 0, 0, 0},
		},
		{
			name: "four to two",
			src:  x4,
			m:    2,
			want: []complex128{x4[0], x4[1] + x4[3]},
		},
		{
			name: "two to four",
			src:  x2,
			m:    4,
			want: []complex128{x2[0], x2[1] / 2, 0, x2[1] / 2},
		},
		{
			name: "identity",
			src:  x5,
			m:    5,
			want: x5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]complex128, tt.m)
			for i := range dst {
				dst[i] = 99 // must be overwritten
			}
			resizeSpectrum(dst, tt.src)
			for i := range tt.want {
				if cmplx.Abs(dst[i]-tt.want[i]) > 1e-15 {
					t.Fatalf("dst[%d] = %v, want %v (all: %v)", i, dst[i], tt.want[i], dst)
				}
			}
		})
	}
}

func TestLostEnergy(t *testing.T) {
	spec := make([]complex128, 8)
	spec[1], spec[7] = 1, 1 // kept by m=4
	spec[3], spec[5] = 1, 1 // dropped by m=4
	if got := lostEnergy(spec, 4); got != 0.5 {
		t.Fatalf("lostEnergy = %v, want 0.5", got)
	}
	if got := lostEnergy(spec, 8); got != 0 {
		t.Fatalf("lostEnergy(identity) = %v, want 0", got)
	}
	if got := lostEnergy(make([]complex128, 8), 2); got != 0 {
		t.Fatalf("lostEnergy(silence) = %v, want 0", got)
	}

	// The bin folded into the new Nyquist bin counts as kept.
	nyq := make([]complex128, 8)
	nyq[2], nyq[6] = 1, 1
	if got := lostEnergy(nyq, 4); got != 0 {
		t.Fatalf("lostEnergy(nyquist pair) = %v, want 0", got)
	}
}
