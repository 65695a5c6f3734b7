package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"tomato/internal/core/timekeeper"
	"tomato/internal/storage"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently completed sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnvironment(options)
		if err != nil {
			return err
		}

		history, err := storage.OpenHistory(storage.HistoryPath(env.configDir))
		if err != nil {
			return err
		}
		defer history.Close()

		return printHistory(cmd.Context(), cmd.OutOrStdout(), history, historyLimit, time.Now())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of sessions to show")
}

func printHistory(ctx context.Context, out io.Writer, history *storage.History, limit int, now time.Time) error {
	records, err := history.Recent(ctx, limit)
	if err != nil {
		return err
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	today, err := history.CountSince(ctx, timekeeper.SessionWork, startOfDay)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Work sessions today: %d %s\n\n", today, timekeeper.Checkmarks(today))
	if len(records) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	writer := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(writer, "ENDED\tREP\tSESSION\tLENGTH")
	for _, record := range records {
		label, _ := timekeeper.Label(record.Session)
		fmt.Fprintf(writer, "%s\t%d\t%s\t%s\n",
			record.EndedAt.Local().Format("2006-01-02 15:04"),
			record.Repetition,
			label,
			timekeeper.FormatRemaining(int(record.Duration/time.Second)),
		)
	}
	return writer.Flush()
}
