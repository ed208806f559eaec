// Package cli wires the cobra command tree. It is the composition
// root: strategies, stores and services are constructed here and
// injected into the core through their ports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/abdirahiinjamaal/pdf-wizard-instant/internal/adapters/driven/config/file"
	historysqlite "github.com/abdirahiinjamaal/pdf-wizard-instant/internal/adapters/driven/history/sqlite"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/domain"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driven"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/ports/driving"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/core/services"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/logger"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/compress"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/extract"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/images"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/merge"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/placeholder"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/split"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/text"
	"github.com/abdirahiinjamaal/pdf-wizard-instant/internal/strategies/word"
)

var version = "dev"

var (
	verboseFlag bool

	configStore  driven.ConfigStore
	historyStore driven.HistoryStore
	converter    driving.ConversionService
)

var rootCmd = &cobra.Command{
	Use:   "pdfwizard",
	Short: "Convert images, text, Word and PDF files into PDFs, locally",
	Long: `pdfwizard assembles PDFs from images, plain text, Word documents and
existing PDFs. All decoding, layout and encoding happen in-process;
file contents never cross a network boundary.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the CLI with the given build version.
func Execute(buildVersion string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	return rootCmd.Execute()
}

// initServices is the composition root. It runs before every command.
func initServices(_ *cobra.Command, _ []string) error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	logger.SetVerbose(verboseFlag || cfg.GetBool(configfile.KeyVerbose))

	if !cfg.GetBool(configfile.KeyDisableHistory) {
		store, err := historysqlite.NewStore(cfg.GetString(configfile.KeyDataDir))
		if err != nil {
			// History is optional; run without it rather than fail.
			logger.Warn("conversion history disabled: %v", err)
		} else {
			historyStore = store
		}
	}

	converter = newConverter(historyStore)
	return nil
}

// newConverter assembles the dispatcher with every real strategy and
// the placeholder fallback.
func newConverter(history driven.HistoryStore) driving.ConversionService {
	registry := services.NewRegistry(func(feature domain.Feature) driven.Strategy {
		return placeholder.New(feature)
	})
	registry.Register(images.New())
	registry.Register(text.New())
	registry.Register(word.New())
	registry.Register(merge.New())
	registry.Register(split.New())
	registry.Register(extract.New())
	registry.Register(compress.New())
	return services.NewConverter(registry, history)
}

// outputDir resolves the directory for generated documents.
func outputDir() string {
	if dir := configStore.GetString(configfile.KeyOutputDir); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
