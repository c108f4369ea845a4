// Package band implements resistor color band detection and decoding.
//
// The pipeline takes a BGR photo of a single resistor, isolates the body,
// segments the painted color bands in HSV space and decodes the
// left-to-right band sequence into a resistance value in ohms. Every call
// is a pure function of its inputs: no state is shared across calls beyond
// the read-only color taxonomy, so concurrent callers are safe.
package band

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// ErrInvalidImage is returned when the input cannot be interpreted as a BGR
// pixel grid.
var ErrInvalidImage = errors.New("invalid image")

// Band is one detected color band. X and Y are the coordinates of the
// leftmost point of the band's region in the processed (possibly resized)
// image.
type Band struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
	Digit int    `json:"digit"`
}

// Result is the outcome of one detection call. Bands are ordered by
// ascending X. Ohms is nil when the band count is not 3, 4 or 5.
type Result struct {
	Bands []Band `json:"bands"`
	Ohms  *int64 `json:"value_ohms"`
}

// Detect runs the full detection pipeline on a BGR image.
func Detect(img gocv.Mat, p DetectionParams) (*Result, error) {
	return DetectWithSink(img, p, nil)
}

// DetectWithSink is Detect with an observer for intermediate pipeline
// artifacts. The sink is consulted only when p.Debug is set and never
// affects the returned result.
func DetectWithSink(img gocv.Mat, p DetectionParams, sink DebugSink) (*Result, error) {
	if img.Empty() || img.Rows() == 0 || img.Cols() == 0 {
		return nil, ErrInvalidImage
	}
	if img.Channels() != 3 {
		return nil, fmt.Errorf("%w: want 3 channels, got %d", ErrInvalidImage, img.Channels())
	}
	if !p.Debug {
		sink = nil
	}
	p = p.normalized()

	pp := preprocess(img, p)
	defer pp.Close()

	roi := roiMask(pp.gray, pp.foreground, p)
	defer roi.Close()
	if sink != nil {
		sink.ROI(roi)
	}

	minArea := p.minRegionArea(pp.hsv.Rows(), pp.hsv.Cols())
	bands := segmentBands(pp.hsv, pp.foreground, roi, p, minArea, sink)

	res := assemble(bands)
	if sink != nil {
		sink.Result(pp.blurred, res.Bands)
	}
	return res, nil
}
