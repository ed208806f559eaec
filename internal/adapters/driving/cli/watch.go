package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and convert files dropped into it",
	Long: `Watches a directory and converts every supported file that appears,
writing the PDF next to it. The conversion kind is inferred from the
file extension. Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// featureForExt routes dropped files to a conversion kind.
func featureForExt(ext string) (domain.Feature, bool) {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return domain.FeatureImagesToPDF, true
	case ".txt", ".md", ".log", ".csv":
		return domain.FeatureTextToPDF, true
	case ".doc", ".docx":
		return domain.FeatureWordToPDF, true
	default:
		return "", false
	}
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watching %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			if err := convertDropped(cmd, event.Name); err != nil {
				logger.Warn("converting %s: %v", event.Name, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case <-cmd.Context().Done():
			return nil
		}
	}
}

// convertDropped converts one file that appeared in the watched
// directory, writing the PDF next to it.
func convertDropped(cmd *cobra.Command, path string) error {
	feature, ok := featureForExt(filepath.Ext(path))
	if !ok {
		logger.Debug("ignoring %s: unsupported extension", path)
		return nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	batch := []domain.InputItem{domain.NewInputItem(filepath.Base(path), "", content)}
	result, err := converter.Convert(context.Background(), feature, batch, nil)
	if err != nil {
		return err
	}

	outPath := filepath.Join(filepath.Dir(path), domain.DefaultOutputName(feature, path))
	if err := os.WriteFile(outPath, result.PDF, 0644); err != nil {
		return err
	}
	cmd.Printf("%s -> %s\n", path, outPath)
	return nil
}
