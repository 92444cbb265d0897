package jcamp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const validXYData = `##TITLE=test
##XUNITS=1/CM
##FIRSTX=0
##LASTX=3
##NPOINTS=4
##YFACTOR=1
##XYDATA=(X++(Y..Y))
0 1 2 3 4
##END=
`

func TestImportXYDataBuildsSILinearDimension(t *testing.T) {
	ds, err := Import(validXYData)
	require.NoError(t, err)
	require.Len(t, ds.Dimensions(), 1)
	require.Equal(t, 4, ds.Dimensions()[0].Count())
	dv := ds.DependentVariables()[0]
	require.Equal(t, "scalar", dv.QuantityType())
	require.Equal(t, 4, dv.Size())
}

const validPeakTable = `##TITLE=peaks
##XUNITS=1/CM
##PEAKTABLE=(XY..XY)
1,10; 2,20; 3,15;
##END=
`

func TestImportPeakTableBuildsSIMonotonicDimension(t *testing.T) {
	ds, err := Import(validPeakTable)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Dimensions()[0].Count())
}

// TestProperty17IllegalFixturesFailWithoutCrashing covers §8 boundary
// property 17: importing a malformed document returns an error; none crash.
func TestProperty17IllegalFixturesFailWithoutCrashing(t *testing.T) {
	illegal := []string{
		"",
		"not jcamp at all",
		"##TITLE=missing everything else\n##END=\n",
		"##XYDATA=(X++(Y..Y))\n0 1 2\n##END=\n",
		"##NPOINTS=2\n##XYDATA=(X++(Y..Y))\n0 1\n##END=\n",
		"##NPOINTS=abc\n##FIRSTX=0\n##LASTX=1\n##XYDATA=(X++(Y..Y))\n0 1\n##END=\n",
		"##PEAKTABLE=(XY..XY)\n1,10;\n##END=\n",
	}
	for _, doc := range illegal {
		_, err := Import(doc)
		require.Error(t, err, "expected import error for %q", doc)
	}
}
