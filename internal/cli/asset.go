package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aexvir/hugoup/binary"
)

var assetCmd = &cobra.Command{
	Use:   "asset <version>",
	Short: "Print the release asset and download url of a version",
	Long: `Print the name and download url of the release asset of a version.

The host platform is used unless --os or --arch are given, e.g.
  hugoup asset 0.17 --os macos --arch 64`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		extended, err := extendedFlag(cmd, cfg)
		if err != nil {
			return err
		}

		platform := binary.HostPlatform()
		if name, _ := cmd.Flags().GetString("os"); name != "" {
			platform.OS = binary.ParseOS(name)
		}
		if name, _ := cmd.Flags().GetString("arch"); name != "" {
			platform.Arch = binary.ParseArch(name)
		}

		manager := newManager(cfg, cmd.ErrOrStderr(), binary.WithPlatform(platform))

		resolved, err := manager.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if resolved.Kind == binary.SpecLocalArchive {
			return fmt.Errorf("%s is already a release archive", resolved.Archive)
		}

		asset, err := manager.Asset(resolved.Version, extended)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), asset.Filename)
		fmt.Fprintln(cmd.OutOrStdout(), asset.URL)
		return nil
	},
}

func init() {
	assetCmd.Flags().String("os", "", "target operating system: windows, macos or linux")
	assetCmd.Flags().String("arch", "", "target architecture: 32 or 64")
	assetCmd.Flags().Bool("extended", true, "the extended build; defaults to it when available")
	rootCmd.AddCommand(assetCmd)
}
