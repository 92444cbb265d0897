package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/csdm-go/csdm/serialize"
	"github.com/csdm-go/csdm/tecmag"
)

func newTecmagCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string

	cmd := &cobra.Command{
		Use:   "tecmag <in.tnt> <out.csdf>",
		Short: "Convert a Tecmag binary (.tnt) file into a CSDF dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ds, err := tecmag.Import(buf)
			if err != nil {
				return err
			}
			return serialize.Export(ds, args[1], binaryDir, serialize.ExportOptions{})
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory for external side files")
	return cmd
}
