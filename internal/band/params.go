package band

// BlurMode selects the noise reduction filter applied before segmentation.
type BlurMode int

const (
	// BlurGaussian is the default; fast and usually sufficient.
	BlurGaussian BlurMode = iota
	// BlurBilateral preserves band edges better at a higher cost.
	BlurBilateral
)

// DetectionParams controls the detection pipeline.
type DetectionParams struct {
	// MaxDimension caps the longest image side before processing,
	// preserving aspect ratio. 0 disables resizing.
	MaxDimension int

	Blur           BlurMode
	GaussianKernel int // odd, >= 3

	// Bilateral filter parameters, used only when Blur is BlurBilateral.
	BilateralDiameter   int
	BilateralSigmaColor int
	BilateralSigmaSpace int

	// UseAdaptiveThreshold switches foreground extraction from global Otsu
	// to local mean-adaptive thresholding.
	UseAdaptiveThreshold bool
	AdaptiveBlockSize    int // odd, >= 3
	AdaptiveConstant     int

	// MorphKernel is the structuring element size for mask cleanup.
	MorphKernel int

	// MinRegionArea is the smallest contour area accepted as a band.
	// 0 means auto: 0.05% of the processed image area, floor 50 pixels.
	MinRegionArea int

	// Debug enables the observer hook for intermediate artifacts.
	// Never affects the returned result.
	Debug bool
}

// DefaultParams returns parameters tuned for hand-held photos of a single
// resistor on a plain background.
func DefaultParams() DetectionParams {
	return DetectionParams{
		MaxDimension:        900,
		Blur:                BlurGaussian,
		GaussianKernel:      7,
		BilateralDiameter:   9,
		BilateralSigmaColor: 75,
		BilateralSigmaSpace: 75,
		AdaptiveBlockSize:   51,
		AdaptiveConstant:    2,
		MorphKernel:         3,
	}
}

// normalized returns a copy with kernel sizes forced into their valid range.
func (p DetectionParams) normalized() DetectionParams {
	p.GaussianKernel = oddAtLeast(p.GaussianKernel, 3)
	p.AdaptiveBlockSize = oddAtLeast(p.AdaptiveBlockSize, 3)
	if p.MorphKernel < 1 {
		p.MorphKernel = 1
	}
	return p
}

func oddAtLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v | 1
}

// minRegionArea resolves the minimum band contour area for a processed image
// of the given size.
func (p DetectionParams) minRegionArea(h, w int) int {
	if p.MinRegionArea > 0 {
		return p.MinRegionArea
	}
	area := h * w / 2000
	if area < 50 {
		return 50
	}
	return area
}
