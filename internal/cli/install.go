package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aexvir/hugoup"
	"github.com/aexvir/hugoup/binary"
)

var installCmd = &cobra.Command{
	Use:   "install [version|archive]",
	Short: "Install hugo",
	Long: `Install hugo unless it's already available.

The version defaults to the latest release. Passing the path of a release
archive installs from it without downloading anything.

The executable is copied into the first directory accepting it, in order:
  --dir or HUGOUP_DIR
  %APPDATA%\Hugo on windows
  /usr/local/bin and ~/Library/Application Support/Hugo on macos
  ~/bin, /snap/bin and /var/lib/snapd/snap/bin elsewhere
  a Hugo directory next to hugoup, or HUGOUP_BUNDLED_DIR`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.Dir = dir
		}
		if cmd.Flags().Changed("brew") {
			cfg.UseBrew, _ = cmd.Flags().GetBool("brew")
		}

		extended, err := extendedFlag(cmd, cfg)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")

		req := binary.Request{
			Version:  binary.Latest,
			Extended: extended,
			UseBrew:  cfg.UseBrew,
			Force:    force,
		}
		if len(args) == 1 {
			req.Version = args[0]
		}

		manager := newManager(cfg, cmd.ErrOrStderr())

		var result binary.Result

		harness := hugoup.New(
			hugoup.WithStopOnError(),
			hugoup.WithPreExecFunc(
				func(_ context.Context) error {
					hugoup.LogStep(fmt.Sprintf("provisioning hugo for %s", manager.Platform()))
					hugoup.LogDetail(fmt.Sprintf("candidate dirs: %s", strings.Join(manager.Dirs(), ", ")))
					return nil
				},
			),
			hugoup.WithPostExecFunc(
				func(ctx context.Context) error {
					return smokeTest(ctx, result)
				},
			),
		)

		return harness.Execute(
			cmd.Context(),
			func(ctx context.Context) error {
				var err error
				result, err = manager.Install(ctx, req)
				if err != nil {
					return err
				}

				switch {
				case result.AlreadyInstalled:
					hugoup.LogDetail("use --force to install anyway")
				case result.ViaAlternate:
					hugoup.LogDetail(fmt.Sprintf("installed with homebrew, run it as %s", result.Executable.Path))
				default:
					hugoup.LogDetail(fmt.Sprintf("hugo %s ready at %s", result.Version, result.Executable.Path))
				}

				return nil
			},
		)
	},
}

// smokeTest runs `hugo version` with the executable the installation ended
// up with. A failing executable is reported but doesn't fail the command.
func smokeTest(ctx context.Context, result binary.Result) error {
	if result.Executable.Path == "" {
		return nil
	}

	opts := []hugoup.RunnerOpt{hugoup.WithArgs("version"), hugoup.WithAllowErrors()}
	if result.Dir != "" {
		// away from any site config in the working directory
		opts = append(opts, hugoup.WithDir(result.Dir))
	}

	if err := hugoup.Run(ctx, result.Executable.Path, opts...); err != nil {
		hugoup.LogDetail(fmt.Sprintf("couldn't run %s: %s", result.Executable.Path, err))
	}

	return nil
}

func init() {
	installCmd.Flags().Bool("brew", false, "install with homebrew, falling back to the release downloads")
	installCmd.Flags().Bool("force", false, "install even if hugo is already available")
	installCmd.Flags().Bool("extended", true, "install the extended build; defaults to it when available")
	installCmd.Flags().String("dir", "", "directory tried before any other")
	rootCmd.AddCommand(installCmd)
}
