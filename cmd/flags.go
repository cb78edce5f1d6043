package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/gndwc/pkg/gndwc"
	"github.com/spf13/cobra"
)

type funcFlag func(cmd *cobra.Command)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gndwc.Version, gndwc.Build)
		os.Exit(0)
	}
}
