package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/csdm-go/csdm/dataset"
	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/serialize"
)

func newInspectCmd(ro *rootOpts) *cobra.Command {
	var binaryDir string
	var compression string

	cmd := &cobra.Command{
		Use:   "inspect <dataset.csdf|dataset.csdfe>",
		Short: "Print a dataset's dimensions and dependent variables",
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

			if ro.jsonOut {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(summarize(ds))
			}
			printSummary(ds)
			return nil
		},
	}
	cmd.Flags().StringVar(&binaryDir, "binary-dir", ".", "directory holding external side files")
	cmd.Flags().StringVar(&compression, "compression", "none", "side-file compression: none, zstd, lz4")
	return cmd
}

type dimensionSummary struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

type variableSummary struct {
	Index      int        `json:"index"`
	Name       string     `json:"name"`
	Size       int        `json:"size"`
	Components int        `json:"components"`
	Range      *rangeStat `json:"range,omitempty"`
}

// rangeStat is a gonum/stat-computed value-range summary over a dependent
// variable's first component's real values.
type rangeStat struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

func computeRange(dv *dependentvariable.DependentVariable) *rangeStat {
	size := dv.Size()
	if size == 0 || len(dv.ComponentLabels()) == 0 {
		return nil
	}
	values := make([]float64, size)
	for i := 0; i < size; i++ {
		values[i] = dv.Float64At(0, i)
	}
	r := &rangeStat{Min: values[0], Max: values[0]}
	for _, v := range values {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	r.Mean = stat.Mean(values, nil)
	r.StdDev = stat.StdDev(values, nil)
	return r
}

type datasetSummary struct {
	Title      string             `json:"title"`
	Dimensions []dimensionSummary `json:"dimensions"`
	Variables  []variableSummary  `json:"dependent_variables"`
}

func summarize(ds *dataset.Dataset) *datasetSummary {
	s := &datasetSummary{Title: ds.Title()}
	for i, d := range ds.Dimensions() {
		s.Dimensions = append(s.Dimensions, dimensionSummary{Index: i, Kind: d.Kind(), Count: d.Count(), Label: d.Label()})
	}
	for i, dv := range ds.DependentVariables() {
		s.Variables = append(s.Variables, variableSummary{
			Index:      i,
			Name:       dv.Name(),
			Size:       dv.Size(),
			Components: len(dv.ComponentLabels()),
			Range:      computeRange(dv),
		})
	}
	return s
}

func printSummary(ds *dataset.Dataset) {
	fmt.Printf("title: %s\n", ds.Title())
	fmt.Printf("dimensions:\n")
	for i, d := range ds.Dimensions() {
		fmt.Printf("  [%d] %s count=%d label=%q\n", i, d.Kind(), d.Count(), d.Label())
	}
	fmt.Printf("dependent variables:\n")
	for i, dv := range ds.DependentVariables() {
		fmt.Printf("  [%d] %s size=%d components=%d\n", i, dv.Name(), dv.Size(), len(dv.ComponentLabels()))
		if r := computeRange(dv); r != nil {
			fmt.Printf("      range: min=%g max=%g mean=%g stddev=%g\n", r.Min, r.Max, r.Mean, r.StdDev)
		}
	}
}

func parseCompression(s string) (serialize.SideFileCompression, error) {
	switch s {
	case "", "none":
		return serialize.CompressionNone, nil
	case "zstd":
		return serialize.CompressionZstd, nil
	case "lz4":
		return serialize.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unrecognized compression %q (want none, zstd, lz4)", s)
	}
}
