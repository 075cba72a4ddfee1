package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pathiram",
	Short:         "Compose Tamil legal documents",
	Long:          `Compose Tamil legal documents from field records and export them as text, DOCX or PDF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
