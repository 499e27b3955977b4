package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/tmtheme"
	"github.com/fwojciec/tmtheme/bubbletea"
	"github.com/fwojciec/tmtheme/chroma"
	"github.com/fwojciec/tmtheme/json"
	"github.com/fwojciec/tmtheme/lipgloss"
)

// ErrNoSource is returned when there is no source code to display.
var ErrNoSource = errors.New("no source to display")

// App encapsulates the application logic for testing.
type App struct {
	Source    io.Reader
	Path      string // used for language detection
	Detector  tmtheme.LanguageDetector
	Tokenizer tmtheme.Tokenizer
	Renderer  tmtheme.Renderer
	Viewer    tmtheme.Viewer
}

// Run tokenizes the source, resolves styles and displays the result.
func (a *App) Run(ctx context.Context) error {
	source, err := io.ReadAll(a.Source)
	if err != nil {
		return err
	}
	if len(source) == 0 {
		return ErrNoSource
	}

	language := a.Detector.DetectFromPath(a.Path)
	tokens := a.Tokenizer.Tokenize(language, string(source))
	if tokens == nil {
		// Unsupported language: show the source unstyled.
		tokens = []tmtheme.Token{{Text: string(source)}}
	}

	return a.Viewer.View(ctx, a.Renderer.Render(tokens))
}

// loadTheme resolves the theme to use, warning about suspect entries.
func loadTheme(themePath string) (*tmtheme.Theme, error) {
	raw := tmtheme.DefaultRawTheme()
	if themePath != "" {
		loaded, err := json.NewLoader().Load(themePath)
		if err != nil {
			return nil, err
		}
		raw = loaded
	}
	for _, warn := range tmtheme.ValidateRawTheme(raw) {
		fmt.Fprintln(os.Stderr, "warning:", warn.Error())
	}
	return tmtheme.CreateFromRawTheme(raw, nil), nil
}

func main() {
	themePath := flag.String("theme", "", "path to a JSON theme file")
	flag.Parse()

	var source io.Reader
	var path string
	if flag.NArg() > 0 {
		path = flag.Arg(0)
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		source = f
	} else {
		// Without a file argument the source must be piped in.
		stat, err := os.Stdin.Stat()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error checking stdin:", err)
			os.Exit(1)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: tmview [-theme theme.json] [file] (or pipe source on stdin)")
			os.Exit(1)
		}
		source = os.Stdin
	}

	theme, err := loadTheme(*themePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := &App{
		Source:    source,
		Path:      path,
		Detector:  chroma.NewDetector(),
		Tokenizer: chroma.NewTokenizer(),
		Renderer:  lipgloss.NewRenderer(theme, nil),
		Viewer:    bubbletea.NewViewer(),
	}

	if err := app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
