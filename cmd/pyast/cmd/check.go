package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/pyast/internal/bridge"
	"github.com/corey/pyast/internal/pyruntime"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the python3 runtime and parser script are usable",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := callContext()
	defer cancel()

	if path, ok := pyruntime.Locate(); ok {
		fmt.Printf("interpreter  %s\n", path)
	} else if pythonFlag == "" {
		fmt.Println("interpreter  not found")
	}

	b, err := bridge.New(ctx, bridgeOptions()...)
	if err != nil {
		fmt.Printf("self-check   failed: %v\n", err)
		fmt.Println(unavailableHint(err))
		return err
	}

	fmt.Printf("self-check   ok (%s)\n", b.Interpreter())
	return nil
}

// unavailableHint returns actionable guidance for a failed construction.
func unavailableHint(err error) string {
	switch {
	case errors.Is(err, bridge.ErrRuntimeNotFound):
		return "python3 is not on PATH or in /usr/local/bin\n" +
			"  → install it:  https://www.python.org/downloads/\n" +
			"  → or point at one directly:  pyast --python /path/to/python3 ..."
	case errors.Is(err, bridge.ErrSelfCheckFailed):
		return "a python3 was found but the parser script did not run cleanly\n" +
			"  → try it by hand:  python3 ~/.pyast/runtime/parse_ast.py\n" +
			"  → python 3.8+ is required (end positions in the ast module)"
	default:
		return ""
	}
}
