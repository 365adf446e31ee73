package util

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/kiosk404/scryer/internal/pkg/options"
	"github.com/kiosk404/scryer/internal/scryer/domain/repo"
	"github.com/kiosk404/scryer/internal/scryer/render"
	"github.com/kiosk404/scryer/internal/scryer/store/boltdb"
	"github.com/kiosk404/scryer/internal/scryer/store/inmemory"
)

// CheckErr prints the error and exits non-zero. Used at command
// boundaries only.
func CheckErr(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// TermWidth returns the terminal width, falling back to 80.
func TermWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// RenderConfig builds a renderer config from CLI options.
func RenderConfig(o *options.RenderOptions) render.Config {
	width := o.Width
	if width <= 0 {
		width = TermWidth()
	}

	cfg := render.Config{
		Collapsed: o.Collapsed,
		MaxHeight: o.MaxHeight,
		Width:     width,
	}
	if o.Markdown {
		cfg.Content = render.MarkdownContent(width)
	}
	return cfg
}

// OpenFeedbackStore opens the configured feedback store. The returned
// closer is a no-op for the in-memory store.
func OpenFeedbackStore(o *options.StoreOptions) (repo.FeedbackStore, func() error, error) {
	if o.Path == "" {
		return inmemory.NewFeedbackStore(), func() error { return nil }, nil
	}
	db, err := boltdb.Open(o.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open feedback store: %w", err)
	}
	return boltdb.NewFeedbackStore(db), db.Close, nil
}
