// Package main provides the LASSL command-line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.2.0"

func main() {
	root := &cobra.Command{
		Use:           "lassl",
		Short:         "LASSL - corpus and configuration toolkit for language model pretraining",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newInitCmd(),
		newValidateCmd(),
		newInspectCmd(),
		newTrainTokenizerCmd(),
		newCorpusStatsCmd(),
		newManifestCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("LASSL %s\n", version)
		},
	}
}
