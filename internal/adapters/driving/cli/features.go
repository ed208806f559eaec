package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	featureTitleStyle = lipgloss.NewStyle().Bold(true)
	featureIDStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	comingSoonStyle   = lipgloss.NewStyle().Faint(true)
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List the conversion catalog",
	Run:   runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)
}

func runFeatures(cmd *cobra.Command, _ []string) {
	cmd.Println(featureTitleStyle.Render("Conversions"))
	cmd.Println()
	for _, f := range converter.Features() {
		line := "  " + featureIDStyle.Render(string(f.ID)) + "  " + f.Title + " - " + f.Description
		if !f.Available {
			line = comingSoonStyle.Render(line)
		}
		cmd.Println(line)
	}
}
