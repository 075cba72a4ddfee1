package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pathiram/backend/internal/pkg/numwords"
)

var wordsCmd = &cobra.Command{
	Use:   "words [amount]",
	Short: "Spell an amount in Tamil words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		words := numwords.FromString(args[0])
		if words == "" {
			return fmt.Errorf("not an amount: %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), words)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
