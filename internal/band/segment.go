package band

import (
	"image"

	"gocv.io/x/gocv"
)

// segmentBands runs per-color segmentation. Each palette entry gets an HSV
// range mask restricted to the foreground and ROI, cleaned with a
// morphological opening, and its surviving regions are emitted as candidate
// bands anchored at the region's leftmost point.
//
// Entries are evaluated independently; overlapping HSV ranges can emit
// separate candidates for the same physical band. Downstream ordering and
// decoding treat each candidate on its own.
func segmentBands(hsv, foreground, roi gocv.Mat, p DetectionParams, minArea int, sink DebugSink) []Band {
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(p.MorphKernel, p.MorphKernel))
	defer kernel.Close()

	// Red's wraparound mask is built once and unioned in below.
	redWrap := gocv.NewMat()
	defer redWrap.Close()
	gocv.InRangeWithScalar(hsv, redWrapLower.scalar(), redWrapUpper.scalar(), &redWrap)

	var bands []Band
	for _, spec := range palette {
		mask := gocv.NewMat()
		gocv.InRangeWithScalar(hsv, spec.Lower.scalar(), spec.Upper.scalar(), &mask)
		if spec.Name == "RED" {
			gocv.BitwiseOr(redWrap, mask, &mask)
		}

		// Suppress background, then restrict to the resistor body.
		gocv.BitwiseAnd(mask, foreground, &mask)
		gocv.BitwiseAnd(mask, roi, &mask)
		if p.MorphKernel > 1 {
			gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, kernel)
		}

		contours := gocv.FindContours(mask, gocv.RetrievalExternal, gocv.ChainApproxSimple)
		for i := 0; i < contours.Size(); i++ {
			c := contours.At(i)
			if !validRegion(c, minArea) {
				continue
			}
			pt := leftmostPoint(c)
			bands = append(bands, Band{X: pt.X, Y: pt.Y, Color: spec.Name, Digit: spec.Digit})
		}

		if sink != nil {
			sink.ColorMask(spec, mask)
		}
		contours.Close()
		mask.Close()
	}
	return bands
}

// validRegion filters candidate regions: too-small areas are noise, and a
// bounding box wider than 0.40 of its height is a horizontal smear rather
// than a vertical band.
func validRegion(c gocv.PointVector, minArea int) bool {
	if gocv.ContourArea(c) < float64(minArea) {
		return false
	}
	r := gocv.BoundingRect(c)
	if r.Dy() == 0 || float64(r.Dx())/float64(r.Dy()) > 0.40 {
		return false
	}
	return true
}

// leftmostPoint returns the boundary point with the smallest x coordinate.
// Bands are vertical stripes around a horizontal cylinder, so the leftmost
// point is a stable horizontal anchor regardless of stripe curvature.
func leftmostPoint(c gocv.PointVector) image.Point {
	pts := c.ToPoints()
	best := pts[0]
	for _, pt := range pts[1:] {
		if pt.X < best.X {
			best = pt
		}
	}
	return best
}
