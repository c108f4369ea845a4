package band

import (
	"image"
	"math"

	"resistor-scan/pkg/colorutil"

	"gocv.io/x/gocv"
)

// roiMask isolates the resistor body. Edges and foreground are merged and
// closed into solid blobs; the highest scoring blob is filled into the
// returned mask. Scoring favors large elongated regions, which is what a
// cylindrical body looks like from the side, over compact clutter. When no
// blob qualifies the whole frame is returned so detection can still proceed.
func roiMask(gray, foreground gocv.Mat, p DetectionParams) gocv.Mat {
	h, w := gray.Rows(), gray.Cols()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)

	merged := gocv.NewMat()
	defer merged.Close()
	gocv.BitwiseOr(edges, foreground, &merged)

	k := max(3, p.MorphKernel)
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(k, k))
	defer kernel.Close()

	// Two close iterations run dilate twice before eroding twice, so edge
	// fragments up to two kernel widths apart still fuse into one body blob.
	closed := gocv.NewMat()
	defer closed.Close()
	gocv.MorphologyExWithParams(merged, &closed, gocv.MorphClose, kernel, 2, gocv.BorderConstant)

	contours := gocv.FindContours(closed, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	best := -1
	bestScore := -1.0
	minArea := 0.001 * float64(h) * float64(w)
	for i := 0; i < contours.Size(); i++ {
		area := gocv.ContourArea(contours.At(i))
		if area < minArea {
			continue
		}
		r := gocv.BoundingRect(contours.At(i))
		longer, shorter := r.Dx(), r.Dy()
		if shorter > longer {
			longer, shorter = shorter, longer
		}
		ar := float64(longer) / math.Max(1.0, float64(shorter))

		score := area
		if ar > 1.5 {
			score = area * ar
		}
		if score > bestScore {
			best = i
			bestScore = score
		}
	}

	if best < 0 {
		// No usable body contour; allow the full frame.
		return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(255, 0, 0, 0), h, w, gocv.MatTypeCV8U)
	}

	mask := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8U)
	gocv.DrawContours(&mask, contours, best, colorutil.White, -1)
	return mask
}
