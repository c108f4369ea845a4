package band

import (
	"image"

	"gocv.io/x/gocv"
)

// preprocessed holds the derived representations of the input image. All
// Mats are owned by the struct and released by Close.
type preprocessed struct {
	blurred    gocv.Mat
	gray       gocv.Mat
	hsv        gocv.Mat
	foreground gocv.Mat // inverted threshold: dark body pixels read as on
}

func (pp *preprocessed) Close() {
	pp.blurred.Close()
	pp.gray.Close()
	pp.hsv.Close()
	pp.foreground.Close()
}

// preprocess downscales and blurs the input, then derives the grayscale,
// HSV and binary foreground representations used by the rest of the
// pipeline. Params must already be normalized.
func preprocess(img gocv.Mat, p DetectionParams) *preprocessed {
	resized := resizeToLimit(img, p.MaxDimension)
	defer resized.Close()

	blurred := gocv.NewMat()
	switch p.Blur {
	case BlurBilateral:
		gocv.BilateralFilter(resized, &blurred, p.BilateralDiameter,
			float64(p.BilateralSigmaColor), float64(p.BilateralSigmaSpace))
	default:
		k := p.GaussianKernel
		gocv.GaussianBlur(resized, &blurred, image.Pt(k, k), 0, 0, gocv.BorderDefault)
	}

	gray := gocv.NewMat()
	gocv.CvtColor(blurred, &gray, gocv.ColorBGRToGray)

	hsv := gocv.NewMat()
	gocv.CvtColor(blurred, &hsv, gocv.ColorBGRToHSV)

	th := gocv.NewMat()
	if p.UseAdaptiveThreshold {
		gocv.AdaptiveThreshold(gray, &th, 255, gocv.AdaptiveThresholdMean,
			gocv.ThresholdBinary, p.AdaptiveBlockSize, float32(p.AdaptiveConstant))
	} else {
		gocv.Threshold(gray, &th, 0, 255, gocv.ThresholdBinary|gocv.ThresholdOtsu)
	}
	// The resistor body is darker than the background; invert so body
	// pixels read as white.
	gocv.BitwiseNot(th, &th)

	return &preprocessed{blurred: blurred, gray: gray, hsv: hsv, foreground: th}
}

// resizeToLimit caps the longest image side at maxDim using area-averaging
// interpolation. Returns a clone when no resize is needed; the caller owns
// the result.
func resizeToLimit(img gocv.Mat, maxDim int) gocv.Mat {
	h, w := img.Rows(), img.Cols()
	longest := max(h, w)
	if maxDim <= 0 || longest <= maxDim {
		return img.Clone()
	}

	scale := float64(maxDim) / float64(longest)
	resized := gocv.NewMat()
	gocv.Resize(img, &resized,
		image.Pt(int(float64(w)*scale), int(float64(h)*scale)),
		0, 0, gocv.InterpolationArea)
	return resized
}
