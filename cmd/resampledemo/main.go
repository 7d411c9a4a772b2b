// Command resampledemo resamples a signal with the frequency-domain
// resampler and reports how much accuracy the conversion cost.
//
// Usage:
//
//	resampledemo [flags]
//
// Without -in it generates a sine wave (5 Hz, 100 Hz, 1 s by default) and
// converts it to -new-rate.
//
// Examples:
//
//	resampledemo
//	resampledemo -freq 12 -rate 200 -new-rate 30
//	resampledemo -sweep 90,70,50,30,16 -reconstruct
//	resampledemo -in take.wav -new-rate 16000 -out take16k.wav -csv take.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cwbudde/algo-resample/dsp/resample"
	"github.com/cwbudde/algo-resample/dsp/signal"
	"github.com/cwbudde/algo-resample/internal/wavio"
	"github.com/cwbudde/algo-resample/measure/accuracy"
)

type options struct {
	freq        float64
	amplitude   float64
	rate        float64
	newRate     float64
	duration    float64
	in          string
	out         string
	csvPath     string
	sweep       string
	reconstruct bool
	backend     string
	bitDepth    int
	verbose     bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	logger, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to create logger: %v\n", err)
		os.Exit(1)
	}

	err = run(opts, os.Stdout, logger)
	if err != nil {
		logger.Error("resampledemo failed", zap.Error(err))
	}

	_ = logger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options

	fs := flag.NewFlagSet("resampledemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&o.freq, "freq", 5, "frequency of the generated sine in Hz")
	fs.Float64Var(&o.amplitude, "amplitude", 1, "amplitude of the generated sine")
	fs.Float64Var(&o.rate, "rate", 100, "sample rate of the generated sine in Hz")
	fs.Float64Var(&o.newRate, "new-rate", 50, "target sample rate in Hz")
	fs.Float64Var(&o.duration, "duration", 1, "duration of the generated sine in seconds")
	fs.StringVar(&o.in, "in", "", "read the original signal from a mono PCM WAV file instead of generating it")
	fs.StringVar(&o.out, "out", "", "write the resampled signal to this WAV file")
	fs.StringVar(&o.csvPath, "csv", "", "write t, original, interpolated, error columns to this CSV file")
	fs.StringVar(&o.sweep, "sweep", "", "comma-separated target rates to compare instead of -new-rate")
	fs.BoolVar(&o.reconstruct, "reconstruct", false, "in a sweep, resample back to the original rate before comparing")
	fs.StringVar(&o.backend, "backend", "auto", "FFT backend: auto, algo-fft or go-dsp")
	fs.IntVar(&o.bitDepth, "bits", 16, "bit depth for -out (16, 24 or 32)")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: resampledemo [flags]\n\n")
		fmt.Fprintf(stderr, "Resamples a signal in the frequency domain and reports the error it introduces.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() > 0 {
		err := fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return options{}, err
	}

	return o, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

func parseBackend(name string) (resample.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return resample.BackendAuto, nil
	case "algo-fft", "algofft":
		return resample.BackendAlgoFFT, nil
	case "go-dsp", "godsp":
		return resample.BackendGoDSP, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", name)
	}
}

func parseRates(list string) ([]float64, error) {
	fields := strings.Split(list, ",")
	rates := make([]float64, 0, len(fields))

	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		r, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid sweep rate %q: %w", f, err)
		}

		rates = append(rates, r)
	}

	if len(rates) == 0 {
		return nil, errors.New("sweep needs at least one rate")
	}

	return rates, nil
}

func run(o options, stdout io.Writer, logger *zap.Logger) error {
	backend, err := parseBackend(o.backend)
	if err != nil {
		return err
	}

	original, err := loadSignal(o, logger)
	if err != nil {
		return err
	}

	logger.Debug("original signal",
		zap.Int("samples", original.Len()),
		zap.Float64("rate", original.Rate),
		zap.Float64("duration", original.Duration()),
	)

	if o.sweep != "" {
		rates, err := parseRates(o.sweep)
		if err != nil {
			return err
		}

		points, err := accuracy.Sweep(original, rates,
			accuracy.WithReconstruction(o.reconstruct),
			accuracy.WithResampleOptions(resample.WithBackend(backend)),
		)
		if err != nil {
			return err
		}

		logger.Info("sweep complete", zap.Int("rates", len(points)), zap.Bool("reconstruct", o.reconstruct))

		return printSweep(stdout, original, points)
	}

	resampled, err := convert(original, o.newRate, backend, logger)
	if err != nil {
		return err
	}

	if resampled.Rate != o.newRate {
		logger.Warn("target length was rounded; using the actual rate",
			zap.Float64("requested", o.newRate),
			zap.Float64("actual", resampled.Rate),
		)
	}

	report, err := accuracy.Analyze(original, resampled)
	if err != nil {
		return err
	}

	logger.Info("resampled",
		zap.Int("from", original.Len()),
		zap.Int("to", resampled.Len()),
		zap.Float64("mse", report.MSE),
	)

	if err := printReport(stdout, original, resampled, report); err != nil {
		return err
	}

	if o.csvPath != "" {
		if err := writeCSVFile(o.csvPath, original, report); err != nil {
			return err
		}
		logger.Info("wrote comparison", zap.String("path", o.csvPath))
	}

	if o.out != "" {
		if err := writeWAVFile(o.out, resampled, o.bitDepth); err != nil {
			return err
		}
		logger.Info("wrote resampled signal", zap.String("path", o.out))
	}

	return nil
}

// convert resamples original to rate and logs the FFT backends in use, so a
// BackendAuto fallback from algo-fft to go-dsp is visible at debug level.
func convert(original signal.Signal, rate float64, backend resample.Backend, logger *zap.Logger) (signal.Signal, error) {
	if err := original.Validate(); err != nil {
		return signal.Signal{}, err
	}

	m, err := resample.NewLength(original.Len(), original.Rate, rate)
	if err != nil {
		return signal.Signal{}, err
	}

	r, err := resample.New(original.Len(), m, resample.WithBackend(backend))
	if err != nil {
		return signal.Signal{}, err
	}

	fwd, inv := r.Backends()
	logger.Debug("fft backends",
		zap.Stringer("requested", backend),
		zap.Stringer("forward", fwd),
		zap.Stringer("inverse", inv),
	)

	out, err := r.Process(original.Samples)
	if err != nil {
		return signal.Signal{}, err
	}

	return signal.Signal{
		Samples: out,
		Rate:    float64(m) * original.Rate / float64(original.Len()),
		Start:   original.Start,
	}, nil
}

func loadSignal(o options, logger *zap.Logger) (signal.Signal, error) {
	if o.in == "" {
		return signal.Sine(o.freq, o.amplitude, o.rate, o.duration)
	}

	f, err := os.Open(o.in)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	s, err := wavio.Read(f)
	if err != nil {
		return signal.Signal{}, fmt.Errorf("reading %s: %w", o.in, err)
	}

	logger.Info("loaded input", zap.String("path", o.in), zap.Float64("rate", s.Rate))

	return s, nil
}

func writeWAVFile(path string, s signal.Signal, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := wavio.Write(f, s, bitDepth); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
