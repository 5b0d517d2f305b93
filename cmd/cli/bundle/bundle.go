// Package bundle pre-renders pages outside the server.
package bundle

import (
	"bytes"
	"os"

	"github.com/carewell/eldercare/internal/errors"
	"github.com/carewell/eldercare/internal/ssr"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "bundle",
	Title: "Bundler",
}

var CustomElements = &cobra.Command{
	Use:     "custom-elements [file]",
	GroupID: "bundle",
	Short:   "Expand custom elements",
	Long:    "Expands the custom elements of a saved HTML page into plain markup, reading from the file argument or stdin",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cmd.InOrStdin()
		if len(args) == 1 {
			contents, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "read input")
			}
			input = bytes.NewReader(contents)
		}
		return ssr.ExpandDocument(cmd.OutOrStdout(), input)
	},
}
