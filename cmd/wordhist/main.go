package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/wordhist/internal/news"
	"github.com/cognicore/wordhist/pkg/wordhist"
	"github.com/cognicore/wordhist/pkg/wordhist/config"
)

type options struct {
	configPath   string
	stoplistPath string
	file         string
	item         int
	text         string
	topN         int
	format       string
	out          string
	noColor      bool
	list         bool
	hist         bool
	stopwords    bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordhist: ")

	var opts options
	flag.StringVar(&opts.configPath, "config", "", "YAML configuration file (optional)")
	flag.StringVar(&opts.stoplistPath, "stoplist", "", "YAML stoplist file (optional, overrides config)")
	flag.StringVar(&opts.file, "file", "", "Load the text from a .txt, .html or .jsonl file")
	flag.IntVar(&opts.item, "item", 0, "Item index when -file is a .jsonl file")
	flag.StringVar(&opts.text, "text", "", "Text to analyze")
	flag.IntVar(&opts.topN, "top", 0, "Number of words in the histogram (default from config, 10)")
	flag.StringVar(&opts.format, "format", "", "Chart format: text or svg")
	flag.StringVar(&opts.out, "out", "", "Chart output file (stdout when empty)")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable coloured bars")
	flag.BoolVar(&opts.list, "list", false, "Print the unique words and exit")
	flag.BoolVar(&opts.hist, "hist", false, "Render the histogram and exit")
	flag.BoolVar(&opts.stopwords, "stopwords", false, "Print the active stopword list and exit")
	flag.Parse()

	if opts.file != "" && opts.text != "" {
		log.Fatal("--file and --text are mutually exclusive")
	}
	if opts.topN < 0 {
		log.Fatal("--top must not be negative")
	}

	analyzer, chartOut, err := buildAnalyzer(opts)
	if err != nil {
		log.Fatal(err)
	}

	if opts.stopwords {
		fmt.Println(strings.Join(analyzer.Stopwords(), "\n"))
		return
	}

	s := newSession(analyzer, os.Stdin, os.Stdout, chartOut)

	if opts.file != "" {
		body, err := news.LoadText(opts.file, opts.item)
		if err != nil {
			log.Fatalf("load text: %v", err)
		}
		s.ingest(body)
	} else if opts.text != "" {
		s.ingest(opts.text)
	}

	// One-shot mode
	if opts.list || opts.hist {
		if err := s.oneShot(opts.list, opts.hist); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := s.run(); err != nil {
		log.Fatal(err)
	}
}

// buildAnalyzer loads configuration and applies flag overrides. It returns
// the analyzer and the path charts are written to ("" for stdout).
func buildAnalyzer(opts options) (*wordhist.Analyzer, string, error) {
	loader := config.Loader{
		ConfigPath:   opts.configPath,
		StoplistPath: opts.stoplistPath,
	}

	components, err := loader.Load()
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}

	settings := components.Settings
	renderer := components.Renderer
	if opts.format != "" || opts.noColor {
		if opts.format != "" {
			settings.Chart.Format = opts.format
		}
		settings.Chart.NoColor = settings.Chart.NoColor || opts.noColor
		renderer, err = config.NewRenderer(settings.Chart)
		if err != nil {
			return nil, "", err
		}
	}
	if opts.topN > 0 {
		settings.TopN = opts.topN
	}

	chartOut := settings.Chart.Output
	if opts.out != "" {
		chartOut = opts.out
	}

	analyzer := wordhist.New(wordhist.Options{
		Pipeline:   components.Pipeline,
		Renderer:   renderer,
		TopN:       settings.TopN,
		ChartTitle: settings.Chart.Title,
	})
	return analyzer, chartOut, nil
}
