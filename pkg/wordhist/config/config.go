package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordhist/pkg/wordhist/analytics"
	"github.com/cognicore/wordhist/pkg/wordhist/chart"
	"github.com/cognicore/wordhist/pkg/wordhist/internalerr"
)

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// File is the application configuration file.
//
//	top_n: 10
//	stoplist: stoplist.yaml
//	extra_stopwords: [sobre, entre]
//	chart:
//	  format: svg
//	  output: top.svg
//	  title: Palavras mais usadas
type File struct {
	TopN           int      `yaml:"top_n"`
	Stoplist       string   `yaml:"stoplist"`
	ExtraStopwords []string `yaml:"extra_stopwords"`
	Chart          Chart    `yaml:"chart"`
}

// Chart holds chart output settings.
type Chart struct {
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	Title   string `yaml:"title"`
	NoColor bool   `yaml:"no_color"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		TopN:  analytics.DefaultTopN,
		Chart: Chart{Format: chart.FormatText},
	}
}

// LoadFile reads a YAML configuration file on top of Default.
func LoadFile(path string) (File, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (f File) Validate() error {
	if f.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d: %w", f.TopN, internalerr.ErrInvalidConfig)
	}
	switch f.Chart.Format {
	case "", chart.FormatText, chart.FormatSVG:
	default:
		return fmt.Errorf("unknown chart format %q: %w", f.Chart.Format, internalerr.ErrInvalidConfig)
	}
	if f.Chart.Width < 0 || f.Chart.Height < 0 {
		return fmt.Errorf("chart size must not be negative: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}
