package feedbackcmd

import (
	"context"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/kiosk404/scryer/internal/pkg/options"
	"github.com/kiosk404/scryer/internal/scryctl/cmd/util"
)

var listExample = heredoc.Doc(`
	# List recorded feedback decisions
	scryctl feedback list

	# Against a specific store
	scryctl feedback list --store=./feedback.db
`)

func NewCmdFeedback() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Inspect recorded feedback decisions",
	}
	cmd.AddCommand(newCmdList())
	return cmd
}

func newCmdList() *cobra.Command {
	store := options.NewStoreOptions()

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List recorded feedback decisions",
		Example: listExample,
		Run: func(cmd *cobra.Command, args []string) {
			util.CheckErr(runList(cmd.Context(), store))
		},
	}

	store.AddFlags(cmd.Flags())
	return cmd
}

func runList(ctx context.Context, o *options.StoreOptions) error {
	store, closeStore, err := util.OpenFeedbackStore(o)
	if err != nil {
		return err
	}
	defer closeStore()

	records, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		color.New(color.Faint).Println("No feedback recorded.")
		return nil
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("RESPONSE", "DECISION", "TEXT", "AT")
	for _, record := range records {
		table.AddRow(record.ResponseID, string(record.Decision), record.Text,
			record.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	color.New(color.Bold).Println("Feedback decisions")
	fmt.Println(table)
	return nil
}
