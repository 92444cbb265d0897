package main

import (
	"os"

	"github.com/spf13/cobra"

	csdmimage "github.com/csdm-go/csdm/image"
	"github.com/csdm-go/csdm/serialize"
)

func newImageCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string
	var frameIncrement float64

	cmd := &cobra.Command{
		Use:   "image <frame.png|frame.jpg>... <out.csdf>",
		Short: "Import one or more same-sized raster images as a CSDF dataset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			frames := make([][]byte, len(args)-1)
			for i, path := range args[:len(args)-1] {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				frames[i] = data
			}
			ds, err := csdmimage.ImportSeries(frames, frameIncrement)
			if err != nil {
				return err
			}
			return serialize.Export(ds, args[len(args)-1], binaryDir, serialize.ExportOptions{})
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory for external side files")
	cmd.Flags().Float64Var(&frameIncrement, "frame-increment", 1.0, "seconds between frames for a multi-frame import")
	return cmd
}
