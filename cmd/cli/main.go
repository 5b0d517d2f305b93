package main

import (
	"fmt"
	"os"

	"github.com/carewell/eldercare/cmd/cli/bundle"
	"github.com/carewell/eldercare/cmd/cli/schedule"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(schedule.Group)
	rootCmd.AddCommand(schedule.Print)
	rootCmd.AddGroup(bundle.Group)
	rootCmd.AddCommand(bundle.CustomElements)
}

var rootCmd = &cobra.Command{
	Use:  "eldercare-cli",
	Long: `Command line utilities for ElderCare Connect`,
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
