// Package image imports 2-D raster images (PNG, JPEG, GIF — anything
// registered with the standard image package) into a CSDM Dataset, the Go
// counterpart of original_source's DatasetImage.c
// (DatasetImportImageCreateSignalWithImageData /
// DatasetImportImageCreateSignalWithData). Pixels become a single linear,
// dimensionless dimension of size width*height*frameCount, and channels
// become pixel_1/pixel_3/pixel_4 components, exactly as the C importer's
// ProcessGrayscaleImages/ProcessRGBImages/ProcessRGBAImages split.
//
// Where the original relied on stb_image for cross-platform decoding, this
// package uses Go's stdlib image/png and image/jpeg decoders instead —
// registered here so callers only need to import this package.
package image

import (
	"bytes"
	stdimage "image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"

	"github.com/csdm-go/csdm/dataset"
	"github.com/csdm-go/csdm/dependentvariable"
	"github.com/csdm-go/csdm/dimension"
	"github.com/csdm-go/csdm/errs"
	"github.com/csdm-go/csdm/numeric"
	"github.com/csdm-go/csdm/unit"
	"github.com/csdm-go/csdm/value"
)

// Import decodes a single image (DatasetImportImageCreateSignalWithData).
func Import(contents []byte) (*dataset.Dataset, error) {
	return ImportSeries([][]byte{contents}, 1.0)
}

// ImportSeries decodes a sequence of same-sized image frames into one
// Dataset (DatasetImportImageCreateSignalWithImageData). The frames' pixels
// are concatenated, frame after frame, along the single pixel dimension;
// frameIncrementInSec is accepted but not used, and no time dimension is
// built. Every later frame must decode to the first frame's width and
// height, or a ShapeError is returned; it is sampled with the first frame's
// channel layout, and its own color model is not checked.
func ImportSeries(frames [][]byte, frameIncrementInSec float64) (*dataset.Dataset, error) {
	if len(frames) == 0 {
		return nil, &errs.InvalidArgumentError{Field: "frames", Reason: "no image data provided"}
	}

	first, err := stdimage.Decode(bytes.NewReader(frames[0]))
	if err != nil {
		return nil, &errs.DecodeError{Source: "image", Reason: "failed to decode image data: " + err.Error()}
	}
	bounds := first.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, &errs.DecodeError{Source: "image", Reason: "decoded image has zero extent"}
	}
	layout := classify(first)

	totalPixels := width * height * len(frames)

	channelData := make([][]float32, layout.channels)
	for i := range channelData {
		channelData[i] = make([]float32, totalPixels)
	}

	pixelIndex := 0
	for fi, raw := range frames {
		img := first
		if fi > 0 {
			img, err = stdimage.Decode(bytes.NewReader(raw))
			if err != nil {
				return nil, &errs.DecodeError{Source: "image", Reason: "failed to decode frame: " + err.Error()}
			}
			b := img.Bounds()
			if b.Dx() != width || b.Dy() != height {
				return nil, &errs.ShapeError{Field: "frame", Want: width * height, Got: b.Dx() * b.Dy()}
			}
		}
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				layout.sample(img.At(x, y), channelData, pixelIndex)
				pixelIndex++
			}
		}
	}

	increment, err := unit.ParseScalar("1.0")
	if err != nil {
		return nil, err
	}
	dim, err := dimension.NewSILinear("", totalPixels, increment, unit.Scalar{}, unit.Scalar{}, unit.Scalar{})
	if err != nil {
		return nil, err
	}

	components := make([]*value.BytesBuffer, layout.channels)
	for i, ch := range channelData {
		buf := make([]byte, len(ch)*4)
		copy(numeric.ViewF32(buf), ch)
		components[i] = value.NewBytesBuffer(buf, false)
	}

	dv, err := dependentvariable.New(dependentvariable.Params{
		Kind:               dependentvariable.KindInternal,
		Name:               "image",
		QuantityType:       layout.quantityType,
		ElementType:        numeric.F32,
		Encoding:           dependentvariable.EncodingNone,
		ComponentsSupplied: components,
		ComponentLabels:    layout.labels,
	})
	if err != nil {
		return nil, err
	}

	_ = frameIncrementInSec // unused: no time dimension is built
	return dataset.New([]dimension.Dimension{dim}, []*dependentvariable.DependentVariable{dv}, nil)
}

// channelLayout describes how a decoded image's channels map onto CSDM
// pixel_N components, resolved once from the first frame and then reused
// for every subsequent frame in a series.
type channelLayout struct {
	channels     int
	quantityType string
	labels       []string
	hasAlpha     bool
	gray         bool
}

// classify picks the channel layout from the image's color model instead of
// stb_image's reported channel count: Gray and Gray16 models become pixel_1;
// every other model becomes pixel_4 when any pixel is not fully opaque, and
// pixel_3 otherwise. Go's PNG decoder returns grayscale+alpha images in an
// NRGBA/NRGBA64 model, so they are classified like RGB/RGBA images.
func classify(img stdimage.Image) channelLayout {
	switch img.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return channelLayout{channels: 1, quantityType: "pixel_1", labels: []string{"gray"}, gray: true}
	}

	if imageHasAlpha(img) {
		return channelLayout{channels: 4, quantityType: "pixel_4", labels: []string{"red", "green", "blue", "alpha"}, hasAlpha: true}
	}
	return channelLayout{channels: 3, quantityType: "pixel_3", labels: []string{"red", "green", "blue"}}
}

// imageHasAlpha scans for any pixel whose alpha is not fully opaque; an
// image format with no alpha channel at all (JPEG) always reports opaque.
func imageHasAlpha(img stdimage.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0xffff {
				return true
			}
		}
	}
	return false
}

// sample writes one pixel's channel values (normalized to [0, 1], matching
// the original's "/ 255.0f") into channelData at pixelIndex.
func (l channelLayout) sample(c color.Color, channelData [][]float32, pixelIndex int) {
	if l.gray {
		g := color.Gray16Model.Convert(c).(color.Gray16)
		channelData[0][pixelIndex] = float32(g.Y) / 65535.0
		return
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	channelData[0][pixelIndex] = float32(nrgba.R) / 255.0
	channelData[1][pixelIndex] = float32(nrgba.G) / 255.0
	channelData[2][pixelIndex] = float32(nrgba.B) / 255.0
	if l.hasAlpha {
		channelData[3][pixelIndex] = float32(nrgba.A) / 255.0
	}
}
