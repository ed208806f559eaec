package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/spf13/cobra"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
)

var (
	convertFeature string
	convertOutput  string
	convertQuiet   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert files into a single PDF",
	Long: `Converts the given files, in order, into one PDF document.

The --feature flag selects the conversion kind; run "pdfwizard features"
for the catalog. Individual unreadable files are skipped and reported,
they never abort the whole batch.

Examples:
  pdfwizard convert --feature images-to-pdf a.jpg b.png c.webp
  pdfwizard convert --feature merge-pdf part1.pdf part2.pdf -o whole.pdf
  pdfwizard convert --feature split-pdf report.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFeature, "feature", "f", string(domain.FeatureImagesToPDF), "conversion kind")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path (defaults next to the input)")
	convertCmd.Flags().BoolVarP(&convertQuiet, "quiet", "q", false, "suppress the progress bar")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	batch, err := readBatch(args)
	if err != nil {
		return err
	}

	feature := domain.Feature(convertFeature)
	onProgress := progressRenderer(cmd, convertQuiet)

	result, err := converter.Convert(context.Background(), feature, batch, onProgress)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}
	if !convertQuiet {
		cmd.Println()
	}

	outPath := convertOutput
	if outPath == "" {
		outPath = filepath.Join(outputDir(), domain.DefaultOutputName(feature, batch[0].Name))
	}
	if err := os.WriteFile(outPath, result.PDF, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	reportOutcomes(cmd, result, outPath)
	return nil
}

// readBatch loads every argument into an in-memory input item.
func readBatch(paths []string) ([]domain.InputItem, error) {
	batch := make([]domain.InputItem, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		batch = append(batch, domain.NewInputItem(filepath.Base(path), "", content))
	}
	return batch, nil
}

// progressRenderer draws an in-place progress bar on the command's
// output. The callback runs inline within the conversion, so it only
// formats and prints.
func progressRenderer(cmd *cobra.Command, quiet bool) domain.ProgressFunc {
	if quiet {
		return nil
	}
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40
	return func(percent int) {
		cmd.Printf("\r%s %3d%%", bar.ViewAs(float64(percent)/100), percent)
	}
}

func reportOutcomes(cmd *cobra.Command, result *domain.ConversionResult, outPath string) {
	cmd.Printf("%s (%d item(s) converted", outPath, result.Converted())
	if skipped := result.Skipped(); skipped > 0 {
		cmd.Printf(", %d skipped", skipped)
	}
	cmd.Println(")")

	for _, o := range result.Outcomes {
		if o.Status == domain.ItemSkipped {
			cmd.Printf("  skipped %s: %s\n", o.Name, o.Reason)
		}
	}
}
