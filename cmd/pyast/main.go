// pyast extracts Python syntax trees by driving the system python3.
// Single binary; the parser script and schema it needs are embedded and
// unpacked to ~/.pyast on first use.
package main

import (
	"os"

	"github.com/corey/pyast/cmd/pyast/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
