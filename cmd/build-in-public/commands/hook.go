package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/strrl/build-in-public/internal/activity"
	"github.com/strrl/build-in-public/internal/config"
)

// NewHookCommand hosts the Claude Code hook entry points. Hooks read their
// input from stdin and must never fail the surrounding session, so both
// subcommands swallow their own errors.
func NewHookCommand() *cobra.Command {
	hookCmd := &cobra.Command{
		Use:    "hook",
		Short:  "Claude Code hook entry points",
		Hidden: true,
	}

	hookCmd.AddCommand(&cobra.Command{
		Use:   "stop",
		Short: "Record activity after each assistant response",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := activity.NewStore(os.Getenv(config.PluginRootEnv))
			if err != nil {
				return nil
			}
			in := activity.DecodeHookInput(cmd.InOrStdin())
			_ = store.RecordStop(in)
			return nil
		},
	})

	hookCmd.AddCommand(&cobra.Command{
		Use:   "session-end",
		Short: "Remind about post generation when the session did real work",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := activity.NewStore(os.Getenv(config.PluginRootEnv))
			if err != nil {
				return nil
			}
			_, _ = store.SessionEndReminder(cmd.OutOrStdout())
			return nil
		},
	})

	return hookCmd
}
