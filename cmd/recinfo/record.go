package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/cwbudde/algo-record/record/buffer"
	"github.com/cwbudde/algo-record/record/signal"
)

// editOptions selects the window edits applied after recording.
type editOptions struct {
	in, out  int // -1 leaves the point where recording put it
	crop     bool
	thin     int
	spectrum bool
}

// record plays sc into a new recorder.
func record(sc Scenario, logger *slog.Logger) (*buffer.Recorder, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	r, err := buffer.New(sc.BufferSize, buffer.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	g := signal.NewGenerator(signal.WithSampleRate(sc.SampleRate), signal.WithSeed(sc.Seed))

	type feed struct {
		v       *signal.Variable
		samples []float64
	}
	var feeds []feed
	add := func(s buffer.Signal, v *signal.Variable, gen func(n int) ([]float64, error)) error {
		if _, err := r.AddSignal(s); err != nil {
			return err
		}
		if sc.Ticks == 0 {
			return nil
		}
		samples, err := gen(sc.Ticks)
		if err != nil {
			return fmt.Errorf("signal %s: %w", v.FullName(), err)
		}
		feeds = append(feeds, feed{v: v, samples: samples})
		return nil
	}

	if sc.TimeSignal != "" {
		v := signal.NewVariable("", sc.TimeSignal)
		if err := add(v, v, func(n int) ([]float64, error) { return g.Ramp(1, n) }); err != nil {
			return nil, err
		}
		if err := r.SetTimeSignal(sc.TimeSignal); err != nil {
			return nil, err
		}
	}
	for _, sig := range sc.Signals {
		v := signal.NewVariable(sig.Namespace, sig.Name)
		var s buffer.Signal = v
		if len(sig.Range) == 2 {
			s = signal.NewRanged(v, sig.Range[0], sig.Range[1])
		}
		if err := add(s, v, func(n int) ([]float64, error) { return sig.samples(g, n) }); err != nil {
			return nil, err
		}
	}

	for i := 0; i < sc.Ticks; i++ {
		for _, f := range feeds {
			f.v.SetValue(f.samples[i])
		}
		r.TickAndRecord()
	}
	logger.Debug("recorded scenario", "ticks", sc.Ticks, "signals", len(r.Entries()), "window", r.InOutLength())
	return r, nil
}

// edit applies the requested window changes in order: in/out points, crop,
// thin.
func edit(r *buffer.Recorder, opts editOptions, logger *slog.Logger) {
	if opts.in >= 0 {
		r.SetInPoint(opts.in)
	}
	if opts.out >= 0 {
		r.SetOutPoint(opts.out)
	}
	if opts.crop {
		ok := r.CropToWindow()
		logger.Debug("crop to window", "applied", ok, "size", r.Size())
	}
	if opts.thin > 1 {
		ok := r.Thin(opts.thin)
		logger.Debug("thin", "stride", opts.thin, "applied", ok, "size", r.Size())
	}
}

// report prints per-signal statistics of the active window.
func report(w io.Writer, r *buffer.Recorder, sampleRate float64, spectrum bool) error {
	length := r.InOutLength()
	if _, err := fmt.Fprintf(w, "buffer size %d, window [%d, %d], %d samples\n",
		r.Size(), r.InPoint(), r.OutPoint(), length); err != nil {
		return err
	}
	if length == 0 {
		_, err := fmt.Fprintln(w, "nothing recorded")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Signal\tMean\tRMS\tMin\tMax\tPeak\tZero Crossings"
	rule := "------\t----\t---\t---\t---\t----\t--------------"
	if spectrum {
		header += "\tDominant [Hz]"
		rule += "\t-------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, e := range r.Entries() {
		s := e.Stats(r.InPoint(), length)
		row := fmt.Sprintf("%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%d",
			displayName(e.Signal()), s.Mean, s.RMS, s.Min, s.Max, s.Peak, s.ZeroCrossings)
		if spectrum {
			sp, err := e.Spectrum(r.InPoint(), length, sampleRate)
			if err != nil {
				return fmt.Errorf("spectrum of %s: %w", displayName(e.Signal()), err)
			}
			f, _ := sp.Dominant()
			row += fmt.Sprintf("\t%.2f", f)
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func displayName(s buffer.Signal) string {
	if ns, ok := s.(buffer.Namespaced); ok && ns.Namespace() != "" {
		return ns.Namespace() + "." + s.Name()
	}
	return s.Name()
}
