package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aexvir/hugoup/binary"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [version|archive]",
	Short: "Print the version a version token resolves to",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		input := binary.Latest
		if len(args) == 1 {
			input = args[0]
		}

		resolved, err := newManager(cfg, cmd.ErrOrStderr()).Resolve(cmd.Context(), input)
		if err != nil {
			return err
		}

		if resolved.Kind == binary.SpecLocalArchive {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", resolved.Kind, resolved.Version, resolved.Archive)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", resolved.Kind, resolved.Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
