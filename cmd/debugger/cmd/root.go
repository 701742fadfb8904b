package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/debugger/pkg/core/config"
	"github.com/msto63/debugger/pkg/core/debugger"
)

var (
	cfgFile  string
	verbose  bool
	enabled  bool
	levelArg string
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "debugger",
	Short: "Gated diagnostics facade",
	Long: `debugger drives the diagnostics facade from the command line.

Settings come from --config (or $DEBUGGER_CONFIG, ./configs/debugger.toml,
./debugger.toml, ./debugger.yaml), then DEBUGGER_ENABLED / DEBUGGER_LEVEL,
then flags.

Commands:
  emit     - send one message through the facade
  matrix   - show which calls pass each threshold
  watch    - log stdin lines while hot-reloading the settings file
  version  - print version information`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&enabled, "enabled", false, "enable diagnostics (default: build mode)")
	rootCmd.PersistentFlags().StringVar(&levelArg, "level", "", "threshold: none, exception, error, warning, info")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colours")
}

// loadSettings resolves file, environment and flags, in that order
func loadSettings(cmd *cobra.Command) (*config.Settings, string, error) {
	path := cfgFile
	if path == "" {
		path = config.Locate()
	}

	settings := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, path, err
		}
		settings = loaded
	}

	if err := settings.ApplyEnv(config.DefaultEnvPrefix); err != nil {
		return nil, path, err
	}

	flags := cmd.Flags()
	if flags.Changed("enabled") {
		settings.Enabled = &enabled
	}
	if flags.Changed("level") {
		if _, err := debugger.ParseLevel(levelArg); err != nil {
			return nil, path, err
		}
		settings.Level = levelArg
	}
	if flags.Changed("no-color") {
		settings.Console.NoColor = noColor
	}

	if verbose {
		source := path
		if source == "" {
			source = "defaults"
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "settings: %s (level=%s)\n", source, settings.Level)
	}
	return settings, path, nil
}

// buildDebugger loads settings and builds the Debugger they describe
func buildDebugger(cmd *cobra.Command) (*debugger.Debugger, *config.Settings, string, error) {
	settings, path, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, path, err
	}
	sink, err := settings.SinkTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, path, err
	}
	d, err := config.NewDebuggerWithSink(settings, sink)
	if err != nil {
		return nil, nil, path, err
	}
	return d, settings, path, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
