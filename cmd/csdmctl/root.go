// Command csdmctl is a small operator CLI over the csdm module: import and
// export CSDF/CSDFE files, inspect a dataset's grid shape, and convert
// JCAMP-DX, Tecmag, or raster image files into CSDM datasets.
package main

import (
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// rootOpts carries flags shared across subcommands.
type rootOpts struct {
	jsonOut bool
}

func newRootCmd() *cobra.Command {
	ro := &rootOpts{}
	cmd := &cobra.Command{
		Use:           "csdmctl",
		Short:         "Inspect and convert Core Scientific Dataset Model files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&ro.jsonOut, "json", false, "emit machine-readable JSON where applicable")

	cmd.AddCommand(newInspectCmd(ro))
	cmd.AddCommand(newExportCmd(ro))
	cmd.AddCommand(newImportCmd(ro))
	cmd.AddCommand(newJCAMPCmd(ro))
	cmd.AddCommand(newTecmagCmd(ro))
	cmd.AddCommand(newImageCmd(ro))
	return cmd
}

func main() {
	defer glog.Flush()
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("csdmctl: %v", err)
		os.Exit(1)
	}
}
