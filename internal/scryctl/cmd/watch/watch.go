package watch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kiosk404/scryer/internal/agentsim"
	"github.com/kiosk404/scryer/internal/pkg/options"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/util"
	"github.com/kiosk404/scryer/internal/scryer/domain/entity"
	"github.com/kiosk404/scryer/internal/scryer/feedback"
	"github.com/kiosk404/scryer/internal/scryer/pkg/errno"
	"github.com/kiosk404/scryer/internal/scryer/stream"
	"github.com/kiosk404/scryer/internal/scryer/tui"
	"github.com/kiosk404/scryer/pkg/log"
	"github.com/kiosk404/scryer/pkg/utils/json"
)

var watchExample = heredoc.Doc(`
	# Attach to a local agent process and render its progress
	scryctl watch

	# Attach to a specific server with an on-disk feedback store
	scryctl watch --server=http://localhost:11791 --store=~/.scryer/feedback.db

	# Collapse the item list and cap output height
	scryctl watch --collapsed --max-height=20
`)

type WatchOptions struct {
	Server *options.ServerOptions
	Store  *options.StoreOptions
	Render *options.RenderOptions
}

func NewWatchOptions() *WatchOptions {
	return &WatchOptions{
		Server: options.NewServerOptions(),
		Store:  options.NewStoreOptions(),
		Render: options.NewRenderOptions(),
	}
}

func NewCmdWatch() *cobra.Command {
	o := NewWatchOptions()

	cmd := &cobra.Command{
		Use:     "watch",
		Short:   "Attach to an agent event stream and render it live",
		Example: watchExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Validate())
			util.CheckErr(o.Run(cmd.Context()))
		},
	}

	o.Server.AddFlags(cmd.Flags())
	o.Store.AddFlags(cmd.Flags())
	o.Render.AddFlags(cmd.Flags())
	return cmd
}

func (o *WatchOptions) Validate() error {
	o.Server.Complete()
	var errs []error
	errs = append(errs, o.Server.Validate()...)
	errs = append(errs, o.Store.Validate()...)
	errs = append(errs, o.Render.Validate()...)
	return errors.Join(errs...)
}

func (o *WatchOptions) Run(ctx context.Context) error {
	store, closeStore, err := util.OpenFeedbackStore(o.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	tracker := feedback.NewTracker(store, o.feedbackPoster())

	events, errCh, err := o.attach(ctx)
	if err != nil {
		return err
	}

	model := tui.NewModel(util.RenderConfig(o.Render), tracker, events)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// attach opens the SSE stream and pumps decoded events into a channel.
func (o *WatchOptions) attach(ctx context.Context) (<-chan *entity.StreamEvent, <-chan error, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.Server.Addr+agentsim.EventsPath, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to %s: %w", o.Server.Addr, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, nil, fmt.Errorf("unexpected status %s from %s", resp.Status, o.Server.Addr)
	}

	events := make(chan *entity.StreamEvent)
	errCh := make(chan error, 1)

	go func() {
		defer resp.Body.Close()
		defer close(events)

		reader := stream.NewReader(resp.Body)
		for {
			event, err := reader.Next()
			if err != nil {
				if !errors.Is(err, errno.ErrStreamClosed) {
					errCh <- err
				}
				return
			}
			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, errCh, nil
}

// feedbackPoster forwards the one-shot feedback input back to the agent
// process.
func (o *WatchOptions) feedbackPoster() feedback.Callback {
	return func(responseID, input string) {
		body, err := json.Marshal(agentsim.FeedbackRequest{ResponseID: responseID, Input: input})
		if err != nil {
			log.WithError(err).Warn("marshal feedback")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.Server.Addr+agentsim.FeedbackPath, bytes.NewReader(body))
		if err != nil {
			log.WithError(err).Warn("create feedback request")
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.WithError(err).Warn("post feedback")
			return
		}
		resp.Body.Close()
	}
}
