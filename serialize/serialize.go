package serialize

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/csdm-go/csdm/dataset"
	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/value"
)

// Mode is the on-disk layout §6.1 distinguishes by file extension.
type Mode int

const (
	ModeInternal Mode = iota // .csdf
	ModeExternal             // .csdfe
)

func (m Mode) extension() string {
	if m == ModeExternal {
		return ".csdfe"
	}
	return ".csdf"
}

// ExportOptions configures Export beyond the base §4.6 contract.
type ExportOptions struct {
	SideFileCompression SideFileCompression
}

// determineMode implements §4.6 step 1: external if any DV is external or
// carries the raw encoding (which §4.6 routes to a side file), else
// internal.
func determineMode(ds *dataset.Dataset) Mode {
	for _, dv := range ds.DependentVariables() {
		if dv.Kind() == dependentvariable.KindExternal || dv.Encoding() == dependentvariable.EncodingRaw {
			return ModeExternal
		}
	}
	return ModeInternal
}

// Export writes ds to jsonPath, and for external DVs writes their component
// bytes to side files under binaryDir (§4.6 export). On any error, any side
// files already written this call are removed on a best-effort basis.
func Export(ds *dataset.Dataset, jsonPath, binaryDir string, opts ExportOptions) (err error) {
	mode := determineMode(ds)
	if !extensionMatches(jsonPath, mode) {
		return errors.Wrapf(errs.ErrExtensionMismatch, "export path %q for mode %v", jsonPath, mode)
	}

	ds.SetTimestamp(time.Now().UTC().Format(time.RFC3339))

	var written []string
	defer func() {
		if err != nil {
			for _, p := range written {
				os.Remove(p)
			}
		}
	}()

	npts := gridCounts(ds)
	for i, dv := range ds.DependentVariables() {
		if dv.Kind() != dependentvariable.KindExternal && dv.Encoding() != dependentvariable.EncodingRaw {
			continue
		}
		blob, berr := dependentvariable.ComponentsDataBlob(dv, npts)
		if berr != nil {
			return errors.Wrapf(berr, "failed to assemble component blob for dependent variable %d", i)
		}
		url := dv.ComponentsURL()
		if url == "" {
			url = defaultSideFileName(i)
		}
		sidePath := filepath.Join(binaryDir, url)
		packed, cerr := compressSideFile(opts.SideFileCompression, blob)
		if cerr != nil {
			return errors.Wrapf(cerr, "failed to compress side file for dependent variable %d", i)
		}
		if werr := os.WriteFile(sidePath, packed, 0o644); werr != nil {
			return errors.Wrapf(werr, "failed to write side file %q", sidePath)
		}
		written = append(written, sidePath)
	}

	doc := ds.ToDictionary()
	out, rerr := RenderJSON(doc)
	if rerr != nil {
		return errors.Wrap(rerr, "failed to render dataset as JSON")
	}
	if werr := os.WriteFile(jsonPath, out, 0o644); werr != nil {
		return errors.Wrapf(werr, "failed to write JSON document %q", jsonPath)
	}
	written = append(written, jsonPath)
	return nil
}

func extensionMatches(path string, mode Mode) bool {
	return strings.EqualFold(filepath.Ext(path), mode.extension())
}

func defaultSideFileName(dvIndex int) string {
	return "component_" + itoa(dvIndex) + ".bin"
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func gridCounts(ds *dataset.Dataset) []int {
	dims := ds.Dimensions()
	out := make([]int, len(dims))
	for i, d := range dims {
		out[i] = d.Count()
	}
	return out
}

// Import reads a Dataset from jsonPath, resolving any external DV's
// components_url against binaryDir (§4.6 import).
func Import(jsonPath, binaryDir string, compression SideFileCompression) (*dataset.Dataset, error) {
	f, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %q", jsonPath)
	}
	defer f.Close()

	doc, err := ParseJSON(f)
	if err != nil {
		return nil, errors.Wrapf(errs.ErrIllegalDocument, "malformed JSON in %q: %v", jsonPath, err)
	}

	ds, err := dataset.FromDictionary(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to reconstruct dataset from %q", jsonPath)
	}

	npts := gridCounts(ds)
	for i, dv := range ds.DependentVariables() {
		if dv.Kind() != dependentvariable.KindExternal {
			continue
		}
		if dv.ComponentsURL() == "" {
			return nil, errors.Wrapf(errs.ErrMissingComponentsURL, "dependent variable %d", i)
		}
		sidePath := filepath.Join(binaryDir, dv.ComponentsURL())
		raw, rerr := os.ReadFile(sidePath)
		if rerr != nil {
			return nil, errors.Wrapf(rerr, "failed to read side file %q for dependent variable %d", sidePath, i)
		}
		if err := loadExternalComponents(dv, raw, compression, npts); err != nil {
			return nil, errors.Wrapf(err, "failed to decode side file %q for dependent variable %d", sidePath, i)
		}
	}
	return ds, nil
}

// loadExternalComponents splits a side file's decompressed bytes evenly
// across the DV's components, by element size and component count.
func loadExternalComponents(dv *dependentvariable.DependentVariable, raw []byte, compression SideFileCompression, npts []int) error {
	labels := dv.ComponentLabels()
	nComponents := len(labels)
	if nComponents == 0 {
		return nil
	}
	size := dv.Size()
	if size == 0 {
		size = productInts(npts)
	}
	elemSize := dv.ElementType().ElementSize()
	expected := nComponents * size * elemSize

	data, err := decompressSideFile(compression, raw, expected)
	if err != nil {
		return err
	}
	if len(data) < expected {
		return errs.ErrComponentByteLenMismatch
	}

	dv.SetSize(size)
	byteLen := size * elemSize
	for i := 0; i < nComponents; i++ {
		chunk := data[i*byteLen : (i+1)*byteLen]
		chunk = numeric.FromLittleEndian(dv.ElementType(), chunk)
		if err := dv.SetComponentAt(i, value.NewBytesBuffer(chunk, true)); err != nil {
			return err
		}
	}
	return nil
}

func productInts(npts []int) int {
	total := 1
	for _, n := range npts {
		total *= n
	}
	return total
}
