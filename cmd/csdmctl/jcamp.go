package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/csdm-go/csdm/jcamp"
	"github.com/csdm-go/csdm/serialize"
)

func newJCAMPCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string

	cmd := &cobra.Command{
		Use:   "jcamp <in.jdx> <out.csdf>",
		Short: "Convert a JCAMP-DX document into a CSDF dataset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			ds, err := jcamp.Import(string(text))
			if err != nil {
				return err
			}
			return serialize.Export(ds, args[1], binaryDir, serialize.ExportOptions{})
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory for external side files")
	return cmd
}
