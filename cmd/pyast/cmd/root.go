package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/corey/pyast/internal/bridge"
)

var rootCmd = &cobra.Command{
	Use:           "pyast",
	Short:         "pyast — Python AST extraction via the system python3",
	Long:          "Parses Python source files by driving a bundled python3 script\nand decoding the binary syntax tree it writes.",
	SilenceUsage:  true,
	SilenceErrors: true, // commands print their own diagnostics
}

var (
	pythonFlag  string
	timeoutFlag time.Duration
)

// bridgeOptions turns global flags into construction options.
func bridgeOptions() []bridge.Option {
	var opts []bridge.Option
	if pythonFlag != "" {
		opts = append(opts, bridge.WithInterpreter(pythonFlag))
	}
	return opts
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pythonFlag, "python", "", "python3 binary to use (skips PATH discovery)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "Kill the parser process after this long (0 = wait forever)")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
}
