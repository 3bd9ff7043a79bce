// Package cli implements the hugoup command line.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aexvir/hugoup"
	"github.com/aexvir/hugoup/binary"
	"github.com/aexvir/hugoup/internal/config"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "hugoup",
	Short: "Install the hugo static site generator",
	Long: `hugoup downloads hugo releases and installs the executable into the
first writable directory of a list of well known locations.

Versions can be given explicitly (0.55.0, v0.55.0), as "latest", or as the
path to an already downloaded release archive.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "hugoup %s (commit: %s, built: %s)\n", Version, Commit, Date)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path of the config file")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(config.LoadOptions{ConfigFilePath: path})
}

// newManager wires a manager out of the configuration.
func newManager(cfg *config.Config, stderr io.Writer, opts ...binary.Option) *binary.Manager {
	options := []binary.Option{
		binary.WithReleaseBase(cfg.ReleaseBase),
		binary.WithEnvironment(binary.DefaultEnvironment(cfg.Dir, cfg.BundledDir)),
		binary.WithFetcher(binary.NewHTTPFetcher(cfg.Progress && !hugoup.IsCIEnv())),
		binary.WithLogger(hugoup.NewLogger(stderr)),
	}

	return binary.NewManager(append(options, opts...)...)
}

// extendedFlag returns the extended choice, the --extended flag taking
// precedence over the configuration.
func extendedFlag(cmd *cobra.Command, cfg *config.Config) (binary.Extended, error) {
	if cmd.Flags().Changed("extended") {
		enabled, _ := cmd.Flags().GetBool("extended")
		return binary.ExtendedFrom(enabled), nil
	}
	return cfg.ExtendedChoice()
}
