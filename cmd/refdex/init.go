package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"refdex/internal/config"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a refdex library",
	Long: `Initialize a refdex library in the given directory (default:
current directory). Creates the .refdex directory with a default
config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	abs, err := os.Getwd()
	if err == nil && root == "." {
		root = abs
	}

	if err := config.Init(root); err != nil {
		exitWithError(ExitError, "initializing library: %v", err)
	}

	if humanOutput {
		fmt.Printf("Initialized refdex library in %s\n", config.RefdexPath(root))
	} else {
		outputJSON(StatusResponse{Status: "initialized", Path: config.RefdexPath(root)})
	}
	return nil
}
