// Package config holds the analyzer options and their YAML file form.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options controls the coverage analysis.
type Options struct {
	// MapqCutoff excludes records with a mapping quality below it
	// before any interval is constructed.
	MapqCutoff int `yaml:"mapq_cutoff"`
	// SequenceContext is the padding, in bases, added around each gap
	// so a downstream aligner has surrounding sequence to re-anchor.
	SequenceContext int `yaml:"sequence_context"`
	// MinimumSizeRemap drops gap regions shorter than this many bases.
	MinimumSizeRemap int `yaml:"minimum_size_remap"`
	// Workers is the number of per-sequence analysis goroutines;
	// 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// Default returns the analyzer defaults.
func Default() Options {
	return Options{
		MapqCutoff:       20,
		SequenceContext:  100,
		MinimumSizeRemap: 100,
		Workers:          0,
	}
}

// Load reads options from a YAML file, applying defaults for any field
// the file omits.
func Load(path string) (Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := opts.Validate(); err != nil {
		return opts, fmt.Errorf("config %s: %w", path, err)
	}
	return opts, nil
}

// Validate rejects option values the pipeline cannot honor.
func (o Options) Validate() error {
	if o.MapqCutoff < 0 {
		return fmt.Errorf("mapq_cutoff must be >= 0, got %d", o.MapqCutoff)
	}
	if o.SequenceContext < 0 {
		return fmt.Errorf("sequence_context must be >= 0, got %d", o.SequenceContext)
	}
	if o.MinimumSizeRemap < 0 {
		return fmt.Errorf("minimum_size_remap must be >= 0, got %d", o.MinimumSizeRemap)
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", o.Workers)
	}
	return nil
}
