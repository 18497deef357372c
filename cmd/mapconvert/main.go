// Command mapconvert inspects and converts Valve 220 .map files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "mapconvert",
		Short: "Inspect and convert Valve 220 .map files",
	}

	root.AddCommand(newStatsCommand())
	root.AddCommand(newOBJCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
