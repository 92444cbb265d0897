package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csdm-go/csdm/serialize"
)

// newImportCmd validates that a CSDF/CSDFE document parses and its grid
// constraints hold, without writing anything back out.
func newImportCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string
	var compression string

	cmd := &cobra.Command{
		Use:   "import <dataset.csdf|dataset.csdfe>",
		Short: "Validate that a CSDF/CSDFE document parses correctly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := parseCompression(compression)
			if err != nil {
				return err
			}
			ds, err := serialize.Import(args[0], binaryDir, comp)
			if err != nil {
				return err
			}
			fmt.Printf("ok: %d dimension(s), %d dependent variable(s)\n", len(ds.Dimensions()), len(ds.DependentVariables()))
			return nil
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory holding external side files")
	cmd.Flags().StringVar(&compression, "compression", "none", "side-file compression: none, zstd, lz4")
	return cmd
}
