package accuracy

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-resample/dsp/core"
	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/dsp/signal"
)

func multiTone(t *testing.T) signal.Signal {
	t.Helper()
	s, err := signal.Tones(100, 1,
		signal.Tone{FreqHz: 4, Amplitude: 1},
		signal.Tone{FreqHz: 12, Amplitude: 0.5, Phase: 0.3},
		signal.Tone{FreqHz: 22, Amplitude: 0.5, Phase: 1.1},
		signal.Tone{FreqHz: 33, Amplitude: 0.25, Phase: 2.0},
	)
	if err != nil {
		t.Fatalf("Tones() error = %v", err)
	}
	return s
}

func TestSweepMonotonicDegradation(t *testing.T) {
	s := multiTone(t)
	rates := []float64{90, 70, 50, 30, 16}

	points, err := Sweep(s, rates, WithReconstruction(true))
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(points) != len(rates) {
		t.Fatalf("len(points) = %d, want %d", len(points), len(rates))
	}

	for i := 1; i < len(points); i++ {
		if points[i].Report.MSE < points[i-1].Report.MSE-1e-12 {
			t.Fatalf("MSE decreased from %v (%g Hz) to %v (%g Hz)",
				points[i-1].Report.MSE, rates[i-1], points[i].Report.MSE, rates[i])
		}
		if points[i].LostEnergy < points[i-1].LostEnergy-1e-12 {
			t.Fatalf("LostEnergy decreased at %g Hz", rates[i])
		}
	}

	// 90 and 70 Hz keep every tone; 50 Hz drops the 33 Hz tone.
	if points[1].Report.MSE > 1e-20 {
		t.Fatalf("MSE at 70 Hz = %v, want ~0", points[1].Report.MSE)
	}
	if points[2].Report.MSE < 0.01 {
		t.Fatalf("MSE at 50 Hz = %v, want the 33 Hz tone power", points[2].Report.MSE)
	}
}

func TestSweepMonotonicDegradationDirect(t *testing.T) {
	s := multiTone(t)
	rates := []float64{90, 70, 50, 30, 16}

	points, err := Sweep(s, rates)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Report.MSE < points[i-1].Report.MSE {
			t.Fatalf("MSE decreased from %v (%g Hz) to %v (%g Hz)",
				points[i-1].Report.MSE, rates[i-1], points[i].Report.MSE, rates[i])
		}
	}

	// Linear interpolation of the converted grid costs accuracy even when
	// every tone survives.
	if points[0].Report.MSE <= 0 {
		t.Fatalf("MSE at 90 Hz = %v, want > 0", points[0].Report.MSE)
	}
	if last := points[len(points)-1].Report.MSE; last < 0.1 {
		t.Fatalf("MSE at 16 Hz = %v, want most of the signal power", last)
	}
}

func TestSweepDirectComparison(t *testing.T) {
	s, err := signal.Sine(5, 1, 100, 1)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}

	points, err := Sweep(s, []float64{50, 33.3}, WithResampleOptions(resample.WithBackend(resample.BackendGoDSP)))
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}

	p := points[0]
	if p.Length != 50 || p.ActualRate != 50 || p.TargetRate != 50 {
		t.Fatalf("point = %+v", p)
	}
	if p.Report.Extrapolated != 1 {
		t.Fatalf("Extrapolated = %d, want 1", p.Report.Extrapolated)
	}

	q := points[1]
	if q.Length != 33 || q.ActualRate != 33 {
		t.Fatalf("length/actual = %d/%v, want 33/33", q.Length, q.ActualRate)
	}
}

func TestSweepValidation(t *testing.T) {
	if _, err := Sweep(signal.New(nil, 10), []float64{5}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Sweep(empty) error = %v", err)
	}

	s, _ := signal.Sine(5, 1, 100, 1)
	if _, err := Sweep(s, []float64{50, -1}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Sweep(negative rate) error = %v", err)
	}
	if _, err := Sweep(s, []float64{0.001}); !errors.Is(err, core.ErrInvalidArgument) {
		t.Fatalf("Sweep(rate yielding no samples) error = %v", err)
	}
}
