package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-record/record/signal"
)

// Scenario describes a synthetic recording session.
type Scenario struct {
	BufferSize int     `yaml:"bufferSize"`
	Ticks      int     `yaml:"ticks"`
	SampleRate float64 `yaml:"sampleRate"`
	Seed       int64   `yaml:"seed"`
	// TimeSignal, when set, adds a variable of that name holding the time of
	// each sample and selects it as the recorder's time signal.
	TimeSignal string       `yaml:"timeSignal"`
	Signals    []SignalSpec `yaml:"signals"`
}

// SignalSpec describes one generated signal.
type SignalSpec struct {
	Name      string    `yaml:"name"`
	Namespace string    `yaml:"namespace"`
	Waveform  string    `yaml:"waveform"`
	Frequency float64   `yaml:"frequency"`
	Amplitude float64   `yaml:"amplitude"`
	Range     []float64 `yaml:"range,omitempty"`
}

var errInvalidScenario = errors.New("invalid scenario")

var waveforms = []string{"sine", "square", "ramp", "noise"}

// DefaultScenario is recorded when no scenario file is given.
func DefaultScenario() Scenario {
	return Scenario{
		BufferSize: 256,
		Ticks:      300,
		SampleRate: 1000,
		Seed:       1,
		TimeSignal: "time",
		Signals: []SignalSpec{
			{Name: "q", Namespace: "robot.arm", Waveform: "sine", Frequency: 5, Amplitude: 1, Range: []float64{-1, 1}},
			{Name: "qd", Namespace: "robot.arm", Waveform: "square", Frequency: 2, Amplitude: 0.5},
			{Name: "noise", Namespace: "sensor", Waveform: "noise", Amplitude: 0.1},
		},
	}
}

// LoadScenario reads and validates a YAML scenario file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read the scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario. Missing sample rate and seed take the
// defaults of DefaultScenario.
func ParseScenario(data []byte) (Scenario, error) {
	def := DefaultScenario()
	sc := Scenario{SampleRate: def.SampleRate, Seed: def.Seed}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to parse the scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Validate checks sizes, waveforms and name clashes.
func (sc Scenario) Validate() error {
	if sc.BufferSize <= 0 {
		return fmt.Errorf("%w: bufferSize must be > 0: %d", errInvalidScenario, sc.BufferSize)
	}
	if sc.Ticks < 0 {
		return fmt.Errorf("%w: ticks must be >= 0: %d", errInvalidScenario, sc.Ticks)
	}
	if sc.SampleRate <= 0 {
		return fmt.Errorf("%w: sampleRate must be > 0: %f", errInvalidScenario, sc.SampleRate)
	}
	if len(sc.Signals) == 0 {
		return fmt.Errorf("%w: no signals", errInvalidScenario)
	}

	seen := make(map[string]bool, len(sc.Signals)+1)
	if sc.TimeSignal != "" {
		seen[strings.ToLower(sc.TimeSignal)] = true
	}
	for i, s := range sc.Signals {
		if s.Name == "" {
			return fmt.Errorf("%w: signal %d has no name", errInvalidScenario, i)
		}
		full := strings.ToLower(s.fullName())
		if seen[full] {
			return fmt.Errorf("%w: duplicate signal %q", errInvalidScenario, s.fullName())
		}
		seen[full] = true
		if !slices.Contains(waveforms, strings.ToLower(s.Waveform)) {
			return fmt.Errorf("%w: signal %q: unknown waveform %q (want one of %s)",
				errInvalidScenario, s.fullName(), s.Waveform, strings.Join(waveforms, ", "))
		}
		if len(s.Range) != 0 && len(s.Range) != 2 {
			return fmt.Errorf("%w: signal %q: range needs two values", errInvalidScenario, s.fullName())
		}
	}
	return nil
}

func (s SignalSpec) fullName() string {
	if s.Namespace == "" {
		return s.Name
	}
	return s.Namespace + "." + s.Name
}

// samples generates n samples of the signal's waveform.
func (s SignalSpec) samples(g *signal.Generator, n int) ([]float64, error) {
	switch strings.ToLower(s.Waveform) {
	case "sine":
		return g.Sine(s.Frequency, s.Amplitude, n)
	case "square":
		return g.Square(s.Frequency, s.Amplitude, n)
	case "ramp":
		return g.Ramp(s.Amplitude, n)
	case "noise":
		return g.WhiteNoise(s.Amplitude, n)
	}
	return nil, fmt.Errorf("%w: unknown waveform %q", errInvalidScenario, s.Waveform)
}
