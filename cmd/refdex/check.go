package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"refdex/internal/ris"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Check whether a file looks like RIS data",
	Long: `Check whether a file looks like RIS data by scanning for the
record-start marker ("TY  - "). Exits 3 when the file is not
recognized.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

// CheckResult reports the outcome of a format check.
type CheckResult struct {
	Path       string `json:"path"`
	Recognized bool   `json:"recognized"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		exitWithError(ExitError, "opening file: %v", err)
	}
	defer f.Close()

	recognized := ris.Recognize(f)

	if humanOutput {
		if recognized {
			fmt.Printf("%s: recognized RIS format\n", args[0])
		} else {
			fmt.Printf("%s: not recognized as RIS\n", args[0])
		}
	} else {
		outputJSON(CheckResult{Path: args[0], Recognized: recognized})
	}

	if !recognized {
		os.Exit(ExitDataError)
	}
	return nil
}
