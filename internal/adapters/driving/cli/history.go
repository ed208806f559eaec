package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversions",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of entries")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("conversion history is disabled")
	}

	records, err := historyStore.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	if len(records) == 0 {
		cmd.Println("No conversions recorded yet.")
		return nil
	}

	for _, rec := range records {
		cmd.Printf("%s  %-14s %d item(s), %d converted, %d skipped, %d bytes\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Feature,
			rec.Items,
			rec.Converted,
			rec.Skipped,
			rec.OutputBytes,
		)
	}
	return nil
}
