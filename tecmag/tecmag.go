// Package tecmag implements the Tecmag binary (.tnt) importer (§6.2): it
// verifies the "TNT1" magic, walks the tagged TMAG/TMG2/DATA sections of
// the container, and builds a Dataset with up to four SILinear dimensions
// and one complex64 DependentVariable.
package tecmag

import (
	"encoding/binary"
	"io"

	"github.com/csdm-go/csdm/dataset"
	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/dimension"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

const magic = "TNT1"

// tmagPrefix mirrors the leading fields of the reference importer's packed
// "Tecmag" struct, up through the fields the Dataset construction needs
// (sw/dwell per dimension); trailing struct fields are not modeled since
// the section's declared length, not this struct's size, bounds the read.
type tmagPrefix struct {
	Npts          [4]int32
	ActualNpts    [4]int32
	AcqPoints     int32
	NptsStart     [4]int32
	Scans         int32
	ActualScans   int32
	DummyScans    int32
	RepeatTimes   int32
	SADimension   int32
	SAMode        int32
	MagnetField   float64
	ObFreq        [4]float64
	BaseFreq      [4]float64
	OffsetFreq    [4]float64
	RefFreq       float64
	NMRFrequency  float64
	ObsChannel    int16
	_             [42]byte
	SW            [4]float64
	Dwell         [4]float64
}

// tmag2Prefix mirrors the leading fields of "Tecmag2" up through fft_flag.
type tmag2Prefix struct {
	_       [392]byte // fields preceding fft_flag in the reference struct
	FFTFlag [4]int16
}

type section struct {
	tag     string
	payload []byte
}

func walkSections(buf []byte, offset int) []section {
	var out []section
	for offset+8 <= len(buf) {
		tag := string(buf[offset : offset+4])
		offset += 4
		flag := binary.LittleEndian.Uint32(buf[offset:])
		offset += 4
		if flag == 0 {
			continue
		}
		if offset+4 > len(buf) {
			break
		}
		length := int(binary.LittleEndian.Uint32(buf[offset:]))
		offset += 4
		if offset+length > len(buf) {
			length = len(buf) - offset
		}
		out = append(out, section{tag: tag, payload: buf[offset : offset+length]})
		offset += length
	}
	return out
}

func decode(buf []byte, v any) error {
	return binary.Read(newByteReader(buf), binary.LittleEndian, v)
}

type byteReaderState struct {
	buf []byte
	pos int
}

func newByteReader(buf []byte) *byteReaderState { return &byteReaderState{buf: buf} }

func (r *byteReaderState) Read(p []byte) (int, error) {
	if r.pos >= len(r.buf) {
		return 0, io.EOF
	}
	n := copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}

// Import parses a Tecmag .tnt buffer into a Dataset (§6.2).
func Import(buf []byte) (*dataset.Dataset, error) {
	if len(buf) < 4 || string(buf[:4]) != magic {
		return nil, &errs.DecodeError{Source: "tecmag", Reason: "missing TNT1 magic"}
	}

	sections := walkSections(buf, 4)
	var tmag tmagPrefix
	var tmag2 tmag2Prefix
	var haveTmag2 bool
	var data []byte

	for _, s := range sections {
		switch s.tag {
		case "TMAG":
			if err := decode(s.payload, &tmag); err != nil {
				return nil, &errs.DecodeError{Source: "tecmag", Reason: "truncated TMAG section"}
			}
		case "TMG2":
			if err := decode(s.payload, &tmag2); err == nil {
				haveTmag2 = true
			}
		case "DATA":
			data = s.payload
		}
	}

	var dims []dimension.Dimension
	for i := 0; i < 4; i++ {
		if tmag.ActualNpts[i] <= 1 {
			continue
		}
		count := int(tmag.ActualNpts[i])
		freqDomain := haveTmag2 && tmag2.FFTFlag[i] != 0
		if freqDomain {
			sw := tmag.SW[i]
			increment := sw / float64(count)
			u, _ := unit.ParseUnit("Hz")
			lin, err := dimension.NewSILinear("frequency", count, unit.NewScalar(increment, u), unit.NewScalar(0, u), unit.NewScalar(0, u), unit.Scalar{})
			if err != nil {
				return nil, err
			}
			dims = append(dims, lin)
		} else {
			dwell := tmag.Dwell[i]
			u, _ := unit.ParseUnit("s")
			lin, err := dimension.NewSILinear("time", count, unit.NewScalar(dwell, u), unit.NewScalar(0, u), unit.NewScalar(0, u), unit.Scalar{})
			if err != nil {
				return nil, err
			}
			dims = append(dims, lin)
		}
	}
	if len(dims) == 0 {
		return nil, &errs.DecodeError{Source: "tecmag", Reason: "no dimension has more than one point"}
	}

	elemSize := numeric.C64.ElementSize()
	n := len(data) / elemSize
	buf2 := make([]byte, n*elemSize)
	copy(buf2, data[:n*elemSize])
	numeric.Conjugate(numeric.C64, buf2)

	meta := value.NewMapping()
	meta.Set("nmr_frequency", value.FromNumber(value.Float(tmag.NMRFrequency)))
	meta.Set("magnet_field", value.FromNumber(value.Float(tmag.MagnetField)))

	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:               dependentvariable.KindInternal,
		Name:               "signal",
		QuantityType:       "scalar",
		ElementType:        numeric.C64,
		Encoding:           dependentvariable.EncodingNone,
		ComponentsSupplied: []*value.BytesBuffer{value.NewBytesBuffer(buf2, false)},
		Metadata:           meta,
	})
	if err != nil {
		return nil, err
	}
	return dataset.New(dims, []*dependentvariable.DependentVariable{dv}, nil)
}
