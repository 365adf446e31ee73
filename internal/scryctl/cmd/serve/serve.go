package serve

import (
	"context"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/kiosk404/scryer/internal/agentsim"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/util"
)

var serveExample = heredoc.Doc(`
	# Serve the built-in demo run
	scryctl serve

	# Serve a recorded script at a faster tick
	scryctl serve --script=run.json --addr=:11791
`)

type ServeOptions struct {
	Addr   string
	Script string
}

func NewCmdServe() *cobra.Command {
	o := &ServeOptions{Addr: ":11791"}

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the agent simulator (development only)",
		Example: serveExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(o.Run(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&o.Addr, "addr", o.Addr, "Listen address")
	cmd.Flags().StringVar(&o.Script, "script", o.Script, "Script file to replay (empty = built-in demo)")
	return cmd
}

func (o *ServeOptions) Run(ctx context.Context) error {
	var script *agentsim.Script
	if o.Script != "" {
		loaded, err := agentsim.LoadScript(o.Script)
		if err != nil {
			return err
		}
		script = loaded
	}

	return agentsim.NewServer(o.Addr, script).Run(ctx)
}
