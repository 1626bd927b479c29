package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

var rootCmd = &cobra.Command{
	Use:   "spliminal",
	Short: "spliminal is a split-pane terminal front-end for your shell",
	Long: "spliminal runs shell commands typed in the input pane and shows their\n" +
		"standard output and standard error in separate panes.",
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.String("config", "", "config file (default $SPLIMINAL_HOME/config.yaml)")
	f.String("shell", "sh", "shell used to run commands, may include arguments")
	f.Duration("timeout", 0, "kill commands running longer than this (0 disables)")
	f.String("mode", "async", "execution mode: async or blocking")
	f.Bool("guard", false, "refuse commands that look destructive")
	f.String("log-file", "", "log file (default $SPLIMINAL_HOME/spliminal.log)")
	f.String("log-level", "info", "log level: trace, debug, info or error")
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("spliminal failed")
		return 1
	}
	return 0
}
