package config

import (
	"fmt"

	"github.com/cognicore/wordhist/pkg/wordhist/chart"
	"github.com/cognicore/wordhist/pkg/wordhist/ingest"
	"github.com/cognicore/wordhist/pkg/wordhist/stoplist"
)

// Loader loads all configuration files and constructs components.
// StoplistPath, when set, takes precedence over the stoplist named in the
// configuration file.
type Loader struct {
	ConfigPath   string
	StoplistPath string
}

// Components holds all loaded configuration components
type Components struct {
	Settings File
	Stoplist *stoplist.Manager
	Pipeline *ingest.Pipeline
	Renderer chart.Renderer
}

// Load reads all configuration files and returns initialized components
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Settings: Default()}

	// Load settings
	if l.ConfigPath != "" {
		settings, err := LoadFile(l.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		comp.Settings = settings
	}

	// Load stoplist
	path := l.StoplistPath
	if path == "" {
		path = comp.Settings.Stoplist
	}
	if path != "" {
		sl, err := LoadStoplist(path)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Stoplist = stoplist.NewManager(sl.Terms)
	} else {
		comp.Stoplist = stoplist.Default()
	}
	for _, w := range comp.Settings.ExtraStopwords {
		comp.Stoplist.Add(w)
	}

	comp.Pipeline = ingest.NewPipeline(comp.Stoplist)

	renderer, err := NewRenderer(comp.Settings.Chart)
	if err != nil {
		return nil, err
	}
	comp.Renderer = renderer

	return comp, nil
}

// NewRenderer builds the chart renderer described by c.
func NewRenderer(c Chart) (chart.Renderer, error) {
	r, err := chart.ForFormat(c.Format, c.NoColor)
	if err != nil {
		return nil, fmt.Errorf("load renderer: %w", err)
	}
	if svg, ok := r.(*chart.SVGRenderer); ok {
		svg.Width = c.Width
		svg.Height = c.Height
	}
	return r, nil
}
