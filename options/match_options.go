package options

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultResolution     = 800
	DefaultThresholdRatio = 0.03
	DefaultPatternSize    = 5
	DefaultMatchThreshold = 10
	DefaultSweepStart     = 0.1
	DefaultSweepStop      = 2.0
	DefaultSweepStep      = 0.05

	// PointsPerBand is the credit for a reference point inside the tightest band.
	PointsPerBand = 3
)

type MatchOptions struct {
	debug bool

	// Resolution is the side of the matching canvas. Projected sets span
	// (Resolution/2)*sqrt(2) along their farthest pair at scale factor 1.
	Resolution float64 `yaml:"resolution"`

	// ThresholdRatio times Resolution gives the width of one scoring band.
	ThresholdRatio float64 `yaml:"threshold_ratio"`

	PatternSize int `yaml:"pattern_size"`

	// MatchThreshold is exclusive: a score must exceed it to match.
	MatchThreshold int `yaml:"match_threshold"`

	SweepStart float64 `yaml:"sweep_start"`
	SweepStop  float64 `yaml:"sweep_stop"`
	SweepStep  float64 `yaml:"sweep_step"`

	// SortBeforeSweep orders candidates by (y, x) before sweeping. Scoring is
	// order independent so this only fixes iteration order.
	SortBeforeSweep bool `yaml:"sort_before_sweep"`

	// LegacyFactorSelection picks the orientation whose sweep returned the
	// larger scale factor instead of the larger score.
	LegacyFactorSelection bool `yaml:"legacy_factor_selection"`

	// Parallel sweeps both orientations concurrently.
	Parallel bool `yaml:"parallel"`
}

func defaultMatchOptions() MatchOptions {
	return MatchOptions{
		Resolution:      DefaultResolution,
		ThresholdRatio:  DefaultThresholdRatio,
		PatternSize:     DefaultPatternSize,
		MatchThreshold:  DefaultMatchThreshold,
		SweepStart:      DefaultSweepStart,
		SweepStop:       DefaultSweepStop,
		SweepStep:       DefaultSweepStep,
		SortBeforeSweep: true,
	}
}

// NewMatchOptions returns a copy of options, or the defaults if options is nil.
func NewMatchOptions(options *MatchOptions) *MatchOptions {

	opt := defaultMatchOptions()
	if options != nil {
		opt = *options
	}
	return &opt
}

// LoadMatchOptions reads a YAML file over the defaults. Keys missing from
// the file keep their default value.
func LoadMatchOptions(path string) (*MatchOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseMatchOptions(data)
}

func ParseMatchOptions(data []byte) (*MatchOptions, error) {
	opt := defaultMatchOptions()
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return nil, fmt.Errorf("parse options: %w", err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return &opt, nil
}

func (o *MatchOptions) SetDebug(debug bool) {
	o.debug = debug
}

func (o *MatchOptions) Debug() bool {
	return o.debug
}

// Threshold is the width of one scoring band in canvas units.
func (o *MatchOptions) Threshold() float64 {
	return o.Resolution * o.ThresholdRatio
}

// MaxScore is the score of a perfect match.
func (o *MatchOptions) MaxScore() int {
	return PointsPerBand * o.PatternSize
}

func (o *MatchOptions) Validate() error {
	var errs []error
	if o.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("resolution must be positive, got %v", o.Resolution))
	}
	if o.ThresholdRatio <= 0 {
		errs = append(errs, fmt.Errorf("threshold ratio must be positive, got %v", o.ThresholdRatio))
	}
	if o.PatternSize < 2 {
		errs = append(errs, fmt.Errorf("pattern size must be at least 2, got %d", o.PatternSize))
	}
	if o.MatchThreshold < 0 || o.MatchThreshold >= o.MaxScore() {
		errs = append(errs, fmt.Errorf("match threshold %d outside [0,%d)", o.MatchThreshold, o.MaxScore()))
	}
	if o.SweepStep <= 0 {
		errs = append(errs, fmt.Errorf("sweep step must be positive, got %v", o.SweepStep))
	}
	return errors.Join(errs...)
}
