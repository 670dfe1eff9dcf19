package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/strrl/build-in-public/internal/discover"
	"github.com/strrl/build-in-public/internal/events"
	"github.com/strrl/build-in-public/internal/extract"
	"github.com/strrl/build-in-public/internal/sanitize"
	"github.com/strrl/build-in-public/pkg/models"
)

// NewShowCommand creates the show command: the session facts without the
// posts, for a quick sanity check before generating.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [session]",
		Short: "Show the extracted session summary without generating posts",
		Long: `Show the summary the post generator would work from.
Without arguments it inspects the most recently active session; with an
argument it accepts a session ID or a path to a JSONL log.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	selector := ""
	if len(args) == 1 {
		selector = args[0]
	}

	summary, _, err := runPipelineSummaryOnly(cmd.Context(), selector)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Session", summary.SessionID},
		{"Project", summary.ProjectName},
		{"Duration", fmt.Sprintf("%d minutes", summary.DurationMinutes)},
		{"Files created", len(summary.FilesCreated)},
		{"Files modified", len(summary.FilesModified)},
		{"Git commits", len(summary.GitCommits)},
		{"Languages", strings.Join(summary.LanguagesUsed, ", ")},
		{"Tests", string(summary.TestsStatus)},
		{"Bugs fixed", summary.ErrorsFixed},
		{"Tool calls", summary.TotalToolCalls},
	})
	t.Render()

	if len(summary.FilesCreated) > 0 {
		fmt.Println("\nFiles created:")
		for _, name := range summary.FilesCreated {
			fmt.Printf("  - %s\n", name)
		}
	}
	if len(summary.GitCommits) > 0 {
		fmt.Println("\nCommits:")
		for _, c := range summary.GitCommits {
			fmt.Printf("  - %s\n", c)
		}
	}
	return nil
}

// runPipelineSummaryOnly is the show command's half of the pipeline: resolve,
// parse, extract. No composition.
func runPipelineSummaryOnly(ctx context.Context, selector string) (models.SessionSummary, int, error) {
	handle, err := discover.Resolve(ctx, selector)
	if err != nil {
		return models.SessionSummary{}, 0, err
	}

	f, err := os.Open(handle.Path)
	if err != nil {
		return models.SessionSummary{}, 0, fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	evs, skipped, err := events.Parse(f)
	if err != nil {
		return models.SessionSummary{}, skipped, fmt.Errorf("read session log: %w", err)
	}

	summary := extract.Summarize(evs)
	summary.SessionID = handle.SessionID
	summary.ProjectName = sanitize.ProjectName(handle.RawProject)
	return summary, skipped, nil
}
