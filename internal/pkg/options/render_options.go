package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// RenderOptions configures the rendering surface.
type RenderOptions struct {
	Width     int  `json:"width"      mapstructure:"width"`
	Collapsed bool `json:"collapsed"  mapstructure:"collapsed"`
	MaxHeight int  `json:"max-height" mapstructure:"max-height"`
	Markdown  bool `json:"markdown"   mapstructure:"markdown"`
}

func NewRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:    0, // 0 = detect from terminal
		Markdown: true,
	}
}

func (o *RenderOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.Width, "width", o.Width, "Render width in columns (0 detects the terminal width)")
	fs.BoolVar(&o.Collapsed, "collapsed", o.Collapsed, "Collapse the item list into a one-line summary")
	fs.IntVar(&o.MaxHeight, "max-height", o.MaxHeight, "Truncate rendered output to this many lines (0 = unbounded)")
	fs.BoolVar(&o.Markdown, "markdown", o.Markdown, "Render response content as terminal markdown")
}

func (o *RenderOptions) Validate() []error {
	var errs []error
	if o.Width < 0 {
		errs = append(errs, fmt.Errorf("width must be >= 0, got %d", o.Width))
	}
	if o.MaxHeight < 0 {
		errs = append(errs, fmt.Errorf("max-height must be >= 0, got %d", o.MaxHeight))
	}
	return errs
}
