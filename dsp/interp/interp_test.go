package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-resample/dsp/core"
)

func TestLinear(t *testing.T) {
	xp := []float64{0, 1, 2, 4}
	fp := []float64{0, 10, 20, 0}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "left of range", x: -1, want: 0},
		{name: "first node", x: 0, want: 0},
		{name: "quarter", x: 0.25, want: 2.5},
		{name: "interior node", x: 2, want: 20},
		{name: "wide segment", x: 3, want: 10},
		{name: "last node", x: 4, want: 0},
		{name: "right of range", x: 9, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Linear([]float64{tt.x}, xp, fp)
			if err != nil {
				t.Fatalf("Linear() error = %v", err)
			}
			if math.Abs(got[0]-tt.want) > 1e-12 {
				t.Fatalf("Linear(%v) = %v, want %v", tt.x, got[0], tt.want)
			}
		})
	}
}

func TestLinearFlatExtrapolation(t *testing.T) {
	got, err := Linear([]float64{-5, 5}, []float64{1, 2}, []float64{3, 7})
	if err != nil {
		t.Fatalf("Linear() error = %v", err)
	}
	if got[0] != 3 || got[1] != 7 {
		t.Fatalf("extrapolated = %v, want [3 7]", got)
	}
}

func TestLinearExactNodes(t *testing.T) {
	xp := make([]float64, 50)
	fp := make([]float64, 50)
	for i := range xp {
		xp[i] = float64(i) / 50
		fp[i] = math.Sin(float64(i))
	}

	got, err := Linear(xp, xp, fp)
	if err != nil {
		t.Fatalf("Linear() error = %v", err)
	}
	for i := range fp {
		if got[i] != fp[i] {
			t.Fatalf("node %d = %v, want exactly %v", i, got[i], fp[i])
		}
	}
}

func TestLinearSinglePoint(t *testing.T) {
	got, err := Linear([]float64{-1, 0, 1}, []float64{0}, []float64{4})
	if err != nil {
		t.Fatalf("Linear() error = %v", err)
	}
	for i, v := range got {
		if v != 4 {
			t.Fatalf("got[%d] = %v, want 4", i, v)
		}
	}
}

func TestLinearSineTimeBase(t *testing.T) {
	// 50 Hz grid of a 5 Hz sine, queried on a 100 Hz grid plus points
	// outside the node range on both sides.
	xp := make([]float64, 50)
	fp := make([]float64, 50)
	for i := range xp {
		xp[i] = float64(i) / 50
		fp[i] = math.Sin(2 * math.Pi * 5 * xp[i])
	}

	xq := []float64{-0.5}
	for i := 0; i < 100; i++ {
		xq = append(xq, float64(i)/100)
	}
	xq = append(xq, 3)

	got, err := Linear(xq, xp, fp)
	if err != nil {
		t.Fatalf("Linear() error = %v", err)
	}

	last := len(xp) - 1
	for i, x := range xq {
		var want float64
		switch {
		case x <= xp[0]:
			want = fp[0]
		case x >= xp[last]:
			want = fp[last]
		default:
			j := int(x * 50)
			frac := (x - xp[j]) / (xp[j+1] - xp[j])
			want = fp[j] + frac*(fp[j+1]-fp[j])
		}
		if math.Abs(got[i]-want) > 1e-14 {
			t.Fatalf("Linear(%v) = %v, want %v", x, got[i], want)
		}
	}

	if got[0] != 0 || got[len(got)-1] != fp[last] {
		t.Fatalf("extrapolated = %v, %v; want %v, %v", got[0], got[len(got)-1], 0.0, fp[last])
	}
}

func TestLinearValidation(t *testing.T) {
	tests := []struct {
		name       string
		xq, xp, fp []float64
	}{
		{name: "empty xp", xq: []float64{0}},
		{name: "length mismatch", xq: []float64{0}, xp: []float64{0, 1}, fp: []float64{0}},
		{name: "unsorted", xq: []float64{0}, xp: []float64{1, 0}, fp: []float64{0, 1}},
		{name: "duplicate", xq: []float64{0}, xp: []float64{0, 1, 1, 2}, fp: []float64{0, 1, 3, 3}},
		{name: "nan xp", xq: []float64{0}, xp: []float64{0, math.NaN()}, fp: []float64{0, 1}},
		{name: "inf query", xq: []float64{math.Inf(1)}, xp: []float64{0, 1}, fp: []float64{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Linear(tt.xq, tt.xp, tt.fp)
			if !errors.Is(err, core.ErrInvalidArgument) {
				t.Fatalf("Linear() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestOutside(t *testing.T) {
	if got := Outside([]float64{-1, 0, 0.5, 1, 1.1}, 0, 1); got != 2 {
		t.Fatalf("Outside = %d, want 2", got)
	}
}

func TestFitRejectsMalformedNodes(t *testing.T) {
	if _, err := fit([]float64{1, 0}, []float64{0, 1}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("fit(decreasing) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := fit([]float64{0, 1}, []float64{0}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("fit(length mismatch) error = %v, want ErrInvalidArgument", err)
	}
	p, err := fit([]float64{2}, []float64{7})
	if err != nil || p.Predict(-100) != 7 || p.Predict(100) != 7 {
		t.Fatalf("fit(single node) = %v, %v", p, err)
	}
}
