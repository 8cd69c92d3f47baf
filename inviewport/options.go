package inviewport

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Options configures one observation. The zero value is not valid; use
// DefaultOptions or ParseOptions.
type Options struct {
	// Root is a CSS selector for the scrolling ancestor. Empty means the
	// top-level viewport.
	Root Selector `yaml:"root"`
	// RootMargin is CSS margin shorthand, e.g. "0px 0px -10% 0px".
	RootMargin string `yaml:"rootMargin"`
	// Threshold lists the visible ratios at which the platform reports.
	Threshold Thresholds `yaml:"threshold"`
}

// DefaultOptions returns {threshold: 0}.
func DefaultOptions() Options {
	return Options{Threshold: Thresholds{0}}
}

// Selector is a CSS selector. In options text it must be a string; numbers
// and booleans are not converted.
type Selector string

func (s *Selector) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: root must be a selector string", value.Line)
	}
	*s = Selector(value.Value)
	return nil
}

// Thresholds accepts either a single number or a list in options text.
type Thresholds []float64

func (t *Thresholds) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return err
		}
		*t = Thresholds{f}
	case yaml.SequenceNode:
		var fs []float64
		if err := value.Decode(&fs); err != nil {
			return err
		}
		if len(fs) == 0 {
			return fmt.Errorf("line %d: threshold list is empty", value.Line)
		}
		*t = fs
	default:
		return fmt.Errorf("line %d: threshold must be a number or a list of numbers", value.Line)
	}
	return nil
}

// ParseOptions parses options text. JSON is accepted as is, as is the
// equivalent YAML flow form ({threshold: 0.5}). Blank text yields
// DefaultOptions. Unknown keys are rejected.
func ParseOptions(text string) (Options, error) {
	if strings.TrimSpace(text) == "" {
		return DefaultOptions(), nil
	}

	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	var opts Options
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, &ConfigurationError{Input: text, Err: err}
	}
	// Options are a single document; anything after "---" is rejected.
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("line %d: unexpected second document", extra.Line)
		}
		return Options{}, &ConfigurationError{Input: text, Err: err}
	}
	if len(opts.Threshold) == 0 {
		opts.Threshold = Thresholds{0}
	}

	if err := opts.Validate(); err != nil {
		var cfgErr *ConfigurationError
		if errors.As(err, &cfgErr) {
			cfgErr.Input = text
		}
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the values the platform would otherwise reject.
func (o Options) Validate() error {
	if len(o.Threshold) == 0 {
		return &ConfigurationError{Field: "threshold", Err: errors.New("at least one threshold is required")}
	}
	for _, v := range o.Threshold {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &ConfigurationError{Field: "threshold", Err: fmt.Errorf("%v is outside [0,1]", v)}
		}
	}
	if _, err := ParseMargin(o.RootMargin); err != nil {
		return &ConfigurationError{Field: "rootMargin", Err: err}
	}
	return nil
}

// Margin returns the parsed root margin. Options that passed Validate
// always parse.
func (o Options) Margin() Margin {
	m, _ := ParseMargin(o.RootMargin)
	return m
}
