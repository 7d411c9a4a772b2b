package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-resample/dsp/signal"
	"github.com/cwbudde/algo-resample/measure/accuracy"
)

func printReport(w io.Writer, original, resampled signal.Signal, r accuracy.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	rows := []struct {
		label string
		value string
	}{
		{"original", fmt.Sprintf("%d samples @ %g Hz (%.4g s)", original.Len(), original.Rate, original.Duration())},
		{"resampled", fmt.Sprintf("%d samples @ %g Hz (%.4g s)", resampled.Len(), resampled.Rate, resampled.Duration())},
		{"MSE", fmt.Sprintf("%.6g", r.MSE)},
		{"RMSE", fmt.Sprintf("%.6g", r.RMSE)},
		{"max |error|", fmt.Sprintf("%.6g", r.MaxAbsError)},
		{"SNR [dB]", fmt.Sprintf("%.2f", r.SNR_dB)},
		{"extrapolated", fmt.Sprintf("%d of %d samples", r.Extrapolated, original.Len())},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return tw.Flush()
}

func printSweep(w io.Writer, original signal.Signal, points []accuracy.Point) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintf(tw, "Target [Hz]\tSamples\tActual [Hz]\tLost energy\tMSE\tSNR [dB]\tExtrapolated\n"); err != nil {
		return fmt.Errorf("writing sweep header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----------\t-------\t-----------\t-----------\t---\t--------\t------------\n"); err != nil {
		return fmt.Errorf("writing sweep header: %w", err)
	}

	for _, p := range points {
		if _, err := fmt.Fprintf(tw, "%g\t%d\t%g\t%.4f\t%.6g\t%.2f\t%d/%d\n",
			p.TargetRate,
			p.Length,
			p.ActualRate,
			p.LostEnergy,
			p.Report.MSE,
			p.Report.SNR_dB,
			p.Report.Extrapolated,
			original.Len(),
		); err != nil {
			return fmt.Errorf("writing sweep row: %w", err)
		}
	}

	return tw.Flush()
}

// writeCSV emits one row per original sample for external plotting.
func writeCSV(w io.Writer, original signal.Signal, r accuracy.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"t", "original", "interpolated", "error"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	for i, v := range original.Samples {
		record := []string{format(original.Time(i)), format(v), format(r.Interpolated[i]), format(r.Error[i])}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", i, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func writeCSVFile(path string, original signal.Signal, r accuracy.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv: %w", err)
	}

	if err := writeCSV(f, original, r); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
