// Command upc2lhe converts UPCGen HEPMC ASCII event listings into the
// Les Houches Event format.
package main

import (
	"fmt"
	"os"

	"github.com/upc-hep/upc2lhe/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
