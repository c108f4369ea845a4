package band

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
)

// DebugSink receives intermediate pipeline artifacts when
// DetectionParams.Debug is set. Implementations must not retain the Mats
// past the call; they are owned by the running detection.
type DebugSink interface {
	// ROI receives the resistor body mask.
	ROI(mask gocv.Mat)
	// ColorMask receives the cleaned segmentation mask for one palette entry.
	ColorMask(spec ColorSpec, mask gocv.Mat)
	// Result receives the blurred working image and the final ordered bands.
	Result(img gocv.Mat, bands []Band)
}

// FileSink writes debug artifacts as PNG files into a directory.
type FileSink struct {
	Dir string
}

func (s FileSink) ROI(mask gocv.Mat) {
	gocv.IMWrite(filepath.Join(s.Dir, "roi.png"), mask)
}

func (s FileSink) ColorMask(spec ColorSpec, mask gocv.Mat) {
	name := "mask_" + strings.ToLower(spec.Name) + ".png"
	gocv.IMWrite(filepath.Join(s.Dir, name), mask)
}

func (s FileSink) Result(img gocv.Mat, bands []Band) {
	overlay := img.Clone()
	defer overlay.Close()

	for _, b := range bands {
		spec, ok := lookup(b.Color)
		if !ok {
			continue
		}
		pt := image.Pt(b.X, b.Y)
		gocv.Circle(&overlay, pt, 4, spec.Display, -1)
		label := fmt.Sprintf("%s %d", b.Color, b.Digit)
		gocv.PutText(&overlay, label, image.Pt(b.X, b.Y-8),
			gocv.FontHersheySimplex, 0.4, spec.Display, 1)
	}
	gocv.IMWrite(filepath.Join(s.Dir, "bands.png"), overlay)
}
