package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/visionocr/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("visionocr %s\n", version.GitRelease)
		fmt.Printf("  Commit: %s\n", version.GitCommit)
	},
}
