package band

import (
	"testing"

	"gocv.io/x/gocv"
)

func TestROIFallbackCoversFrame(t *testing.T) {
	// Uniform gray with an empty foreground: no edges, no contours.
	gray := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(128, 0, 0, 0), 120, 160, gocv.MatTypeCV8U)
	defer gray.Close()
	fg := gocv.NewMatWithSize(120, 160, gocv.MatTypeCV8U)
	defer fg.Close()

	mask := roiMask(gray, fg, testParams().normalized())
	defer mask.Close()

	if got := gocv.CountNonZero(mask); got != 120*160 {
		t.Errorf("fallback ROI covers %d pixels, want all %d", got, 120*160)
	}
}

func TestROIPrefersElongatedRegion(t *testing.T) {
	gray := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer gray.Close()
	fg := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer fg.Close()

	// A resistor-shaped blob and a larger-area compact blob far away.
	fillRect1(&fg, 30, 80, 150, 104, 255) // 120x24, aspect 5
	fillRect1(&fg, 210, 30, 270, 90, 255) // 60x60, aspect 1

	mask := roiMask(gray, fg, testParams().normalized())
	defer mask.Close()

	if mask.GetUCharAt(92, 90) != 255 {
		t.Error("elongated region center not inside ROI")
	}
	if mask.GetUCharAt(60, 240) != 0 {
		t.Error("compact clutter region leaked into ROI")
	}
}

func TestROIBridgesFragmentedOutline(t *testing.T) {
	gray := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer gray.Close()
	fg := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer fg.Close()

	// Two body fragments with a 4px gap: wider than one 3x3 close can
	// bridge, within reach of the two-iteration close.
	fillRect1(&fg, 40, 80, 100, 120, 255)
	fillRect1(&fg, 104, 80, 164, 120, 255)

	mask := roiMask(gray, fg, testParams().normalized())
	defer mask.Close()

	if mask.GetUCharAt(100, 101) != 255 {
		t.Error("gap between fragments not inside ROI, fragments did not merge")
	}
	if mask.GetUCharAt(100, 70) != 255 || mask.GetUCharAt(100, 134) != 255 {
		t.Error("fragment interiors not inside ROI")
	}
	if mask.GetUCharAt(10, 250) != 0 {
		t.Error("ROI unexpectedly covers the background")
	}
}

func TestROIIgnoresTinyRegions(t *testing.T) {
	gray := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer gray.Close()
	fg := gocv.NewMatWithSize(200, 300, gocv.MatTypeCV8U)
	defer fg.Close()

	// Under 0.1% of the frame (60 px): must not be selected, so the
	// fallback full-frame ROI applies.
	fillRect1(&fg, 10, 10, 15, 16, 255)

	mask := roiMask(gray, fg, testParams().normalized())
	defer mask.Close()

	if got := gocv.CountNonZero(mask); got != 200*300 {
		t.Errorf("ROI covers %d pixels, want full frame %d", got, 200*300)
	}
}
