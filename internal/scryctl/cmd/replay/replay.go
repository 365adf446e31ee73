package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kiosk404/scryer/internal/agentsim"
	"github.com/kiosk404/scryer/internal/pkg/options"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/util"
	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/render"
	"github.com/kiosk404/scryer/internal/scryer/stream"
)

var replayExample = heredoc.Doc(`
	# Render a recorded script file, one frame per update
	scryctl replay run.json

	# Render a captured SSE stream
	scryctl replay run.sse

	# Only show the final frame
	scryctl replay --final run.json
`)

type ReplayOptions struct {
	Render *options.RenderOptions

	// FinalOnly skips intermediate frames.
	FinalOnly bool
}

func NewCmdReplay() *cobra.Command {
	o := &ReplayOptions{Render: options.NewRenderOptions()}

	cmd := &cobra.Command{
		Use:     "replay <file>",
		Short:   "Render a recorded agent event stream to stdout",
		Example: replayExample,
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(errors.Join(o.Render.Validate()...))
			util.CheckErr(o.Run(args[0]))
		},
	}

	o.Render.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&o.FinalOnly, "final", false, "Only print the final frame")
	return cmd
}

func (o *ReplayOptions) Run(path string) error {
	events, err := loadEvents(path)
	if err != nil {
		return err
	}

	cfg := util.RenderConfig(o.Render)
	stateRenderer := render.NewStateRenderer(cfg)
	responseRenderer := render.NewResponseRenderer(cfg)

	watcher := stream.NewWatcher()
	separator := color.New(color.Faint).Sprint(strings.Repeat("-", 40))

	var snap stream.Snapshot
	frame := 0
	for _, event := range events {
		snap = watcher.Apply(event)
		if o.FinalOnly {
			continue
		}
		frame++
		fmt.Printf("%s frame %d\n", separator, frame)
		printFrame(stateRenderer, responseRenderer, snap)
	}

	if o.FinalOnly {
		printFrame(stateRenderer, responseRenderer, snap)
	}
	return nil
}

func printFrame(stateRenderer *render.StateRenderer, responseRenderer *render.ResponseRenderer, snap stream.Snapshot) {
	fmt.Println(stateRenderer.Render(snap.State, snap.Status))
	if snap.Response != nil {
		fmt.Println()
		// Replay has no feedback channel, so controls never render.
		fmt.Println(responseRenderer.Render(snap.Response, snap.Status, render.FeedbackView{}))
	}
	if snap.Err != "" {
		color.Red("agent error: %s", snap.Err)
	}
	fmt.Println()
}

// loadEvents accepts either a simulator script (.json) or a captured SSE
// stream (anything else).
func loadEvents(path string) ([]*entity.StreamEvent, error) {
	if filepath.Ext(path) == ".json" {
		script, err := agentsim.LoadScript(path)
		if err != nil {
			return nil, err
		}
		return script.Events, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recording %q: %w", path, err)
	}
	defer f.Close()
	return stream.Decode(f)
}
