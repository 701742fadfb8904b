package cmd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/msto63/debugger/pkg/core/debugger"
)

var (
	objectName string
	objectType string
)

var emitCmd = &cobra.Command{
	Use:   "emit <info|warning|error|exception|assert|null> <message...>",
	Short: "Send one message through the facade",
	Long: `Send one message through the facade.

  info, warning, error   Log, LogWarning, LogError
  exception              LogException with the message as error text
  assert                 Check(false, message); exits non-zero if it fails
  null                   AssertNotNull(nil, message, --object)`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, _, _, err := buildDebugger(cmd)
		if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}
		return emit(d, args[0], strings.Join(args[1:], " "), contextHandle())
	},
}

func init() {
	emitCmd.Flags().StringVar(&objectName, "object", "", "context object name")
	emitCmd.Flags().StringVar(&objectType, "type", "Object", "context object type")
	rootCmd.AddCommand(emitCmd)
}

func contextHandle() debugger.Object {
	if objectName == "" {
		return nil
	}
	return debugger.NewHandle(objectName, objectType)
}

// emit dispatches one call by severity name
func emit(d *debugger.Debugger, severity, message string, ctx debugger.Object) error {
	var objects []debugger.Object
	if ctx != nil {
		objects = append(objects, ctx)
	}

	switch strings.ToLower(severity) {
	case "info", "log":
		d.Log(message, objects...)
	case "warning", "warn":
		d.LogWarning(message, objects...)
	case "error":
		d.LogError(message, objects...)
	case "exception":
		d.LogException(errors.New(message), objects...)
	case "assert":
		if err := d.Check(false, message); err != nil {
			return err
		}
	case "null":
		d.AssertNotNull(nil, message, ctx)
	default:
		return fmt.Errorf("unknown severity %q", severity)
	}
	return nil
}
