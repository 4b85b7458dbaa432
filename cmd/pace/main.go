package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "pace",
		Short:        "Concurrent terminal progress bars",
		SilenceUsage: true,
	}
	root.AddCommand(DemoCmd(), BenchCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
