package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Print how hugo is invoked on this host",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		found, err := newManager(cfg, cmd.ErrOrStderr()).Find()
		if err != nil {
			return err
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", found.Path, found.Via)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), found.Path)
		return nil
	},
}

func init() {
	findCmd.Flags().BoolP("verbose", "v", false, "also print where hugo was found")
	rootCmd.AddCommand(findCmd)
}
