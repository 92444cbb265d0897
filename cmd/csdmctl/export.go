package main

import (
	"github.com/spf13/cobra"

	"github.com/csdm-go/csdm/serialize"
)

func newExportCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string
	var compression string

	cmd := &cobra.Command{
		Use:   "export <in.csdf> <out.csdf|out.csdfe>",
		Short: "Round-trip a dataset through the CSDF/CSDFE codec",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := parseCompression(compression)
			if err != nil {
				return err
			}
			ds, err := serialize.Import(args[0], binaryDir, comp)
			if err != nil {
				return err
			}
			return serialize.Export(ds, args[1], binaryDir, serialize.ExportOptions{SideFileCompression: comp})
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory for external side files")
	cmd.Flags().StringVar(&compression, "compression", "none", "side-file compression: none, zstd, lz4")
	return cmd
}
