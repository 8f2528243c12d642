package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corey/pyast/internal/bridge"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file.py>",
	Short: "Parse one Python file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Emit the tree as JSON instead of indented text")
}

// callContext applies the global --timeout to one parser invocation.
func callContext() (context.Context, context.CancelFunc) {
	if timeoutFlag > 0 {
		return context.WithTimeout(context.Background(), timeoutFlag)
	}
	return context.WithCancel(context.Background())
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, cancel := callContext()
	defer cancel()

	b, err := bridge.New(ctx, bridgeOptions()...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintln(os.Stderr, unavailableHint(err))
		return err
	}

	root, err := b.Parse(ctx, args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(root)
	}
	fmt.Print(root.Render())
	return nil
}
