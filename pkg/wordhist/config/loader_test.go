package config

import (
	"path/filepath"
	"testing"

	"github.com/cognicore/wordhist/pkg/wordhist/analytics"
	"github.com/cognicore/wordhist/pkg/wordhist/chart"
)

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if comp.Pipeline == nil || comp.Renderer == nil || comp.Stoplist == nil {
		t.Fatal("Expected all components to be initialized")
	}
	if !comp.Stoplist.IsStop("para") {
		t.Error("Default stoplist should contain 'para'")
	}
	if comp.Settings.TopN != analytics.DefaultTopN {
		t.Errorf("TopN = %d", comp.Settings.TopN)
	}
	if _, ok := comp.Renderer.(*chart.TextRenderer); !ok {
		t.Errorf("Expected text renderer, got %T", comp.Renderer)
	}
}

func TestLoaderStoplistOverride(t *testing.T) {
	dir := t.TempDir()
	fromConfig := writeFile(t, dir, "config-stops.yaml", "terms: [gato]\n")
	fromFlag := writeFile(t, dir, "flag-stops.yaml", "terms: [cão]\n")
	cfgPath := writeFile(t, dir, "wordhist.yaml",
		"stoplist: "+fromConfig+"\nextra_stopwords: [rato]\nchart:\n  format: svg\n  height: 300\n")

	comp, err := (&Loader{ConfigPath: cfgPath, StoplistPath: fromFlag}).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if comp.Stoplist.IsStop("gato") {
		t.Error("Flag stoplist should replace the configured one")
	}
	if !comp.Stoplist.IsStop("cão") || !comp.Stoplist.IsStop("rato") {
		t.Errorf("Unexpected stoplist: %v", comp.Stoplist.All())
	}
	if comp.Stoplist.IsStop("para") {
		t.Error("Custom stoplist should not include the defaults")
	}

	svg, ok := comp.Renderer.(*chart.SVGRenderer)
	if !ok {
		t.Fatalf("Expected SVG renderer, got %T", comp.Renderer)
	}
	if svg.Height != 300 {
		t.Errorf("Height = %d, want 300", svg.Height)
	}

	terms := analytics.Terms(comp.Pipeline.Process("gato cão rato").Records)
	if len(terms) != 1 || terms[0] != "gato" {
		t.Errorf("Pipeline should use the loaded stoplist, got %v", terms)
	}
}

func TestLoaderMissingFiles(t *testing.T) {
	dir := t.TempDir()

	if _, err := (&Loader{ConfigPath: filepath.Join(dir, "none.yaml")}).Load(); err == nil {
		t.Error("Load should fail with non-existent config")
	}
	if _, err := (&Loader{StoplistPath: filepath.Join(dir, "none.yaml")}).Load(); err == nil {
		t.Error("Load should fail with non-existent stoplist")
	}
}
