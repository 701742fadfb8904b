package cmd

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/msto63/debugger/pkg/core/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log stdin lines while hot-reloading the settings file",
	Long: `Log each line read from stdin through the facade. Edits to the settings
file take effect immediately, so toggling enabled or level is visible live.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, settings, path, err := buildDebugger(cmd)
		if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}
		if path == "" {
			return errors.New("watch needs a settings file, pass --config")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		w := config.NewWatcher(path, d, config.DefaultEnvPrefix, settings.Watch.Debounce.Duration)
		w.OnReload(func(*config.Settings) {
			fmt.Fprintf(cmd.ErrOrStderr(), "reloaded %s: enabled=%v level=%s\n", path, d.Enabled(), d.Level())
		})
		w.OnError(func(err error) {
			printError("reload failed", err)
		})
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		lines := make(chan string)
		go func() {
			defer close(lines)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				select {
				case lines <- scanner.Text():
				case <-ctx.Done():
					return
				}
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				d.Log(line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

