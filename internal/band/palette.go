package band

import (
	"image/color"

	"gocv.io/x/gocv"
)

// HSV is a color triple in OpenCV's HSV convention (H 0-179, S 0-255, V 0-255).
type HSV struct {
	H, S, V uint8
}

func (c HSV) scalar() gocv.Scalar {
	return gocv.NewScalar(float64(c.H), float64(c.S), float64(c.V), 0)
}

// ColorSpec defines one band color: an inclusive HSV range used for
// segmentation, the decimal digit the color encodes, and a display color for
// debug overlays. The ranges depend on camera settings, white balance and
// lighting; adjust them for unusual capture conditions.
type ColorSpec struct {
	Name    string
	Digit   int
	Lower   HSV
	Upper   HSV
	Display color.RGBA
}

// palette is the band color taxonomy: ten entries, digits 0-9 exactly once.
var palette = []ColorSpec{
	{Name: "BLACK", Digit: 0, Lower: HSV{0, 0, 0}, Upper: HSV{255, 255, 20}, Display: color.RGBA{0, 0, 0, 255}},
	{Name: "BROWN", Digit: 1, Lower: HSV{0, 90, 10}, Upper: HSV{15, 250, 100}, Display: color.RGBA{102, 51, 0, 255}},
	{Name: "RED", Digit: 2, Lower: HSV{0, 30, 80}, Upper: HSV{10, 255, 200}, Display: color.RGBA{255, 0, 0, 255}},
	{Name: "ORANGE", Digit: 3, Lower: HSV{5, 150, 150}, Upper: HSV{15, 235, 250}, Display: color.RGBA{255, 128, 0, 255}},
	{Name: "YELLOW", Digit: 4, Lower: HSV{50, 100, 100}, Upper: HSV{70, 255, 255}, Display: color.RGBA{255, 255, 0, 255}},
	{Name: "GREEN", Digit: 5, Lower: HSV{45, 100, 50}, Upper: HSV{75, 255, 255}, Display: color.RGBA{0, 255, 0, 255}},
	{Name: "BLUE", Digit: 6, Lower: HSV{100, 150, 0}, Upper: HSV{140, 255, 255}, Display: color.RGBA{0, 0, 255, 255}},
	{Name: "VIOLET", Digit: 7, Lower: HSV{120, 40, 100}, Upper: HSV{140, 250, 220}, Display: color.RGBA{127, 0, 255, 255}},
	{Name: "GRAY", Digit: 8, Lower: HSV{0, 0, 50}, Upper: HSV{179, 50, 80}, Display: color.RGBA{128, 128, 128, 255}},
	{Name: "WHITE", Digit: 9, Lower: HSV{0, 0, 90}, Upper: HSV{179, 15, 250}, Display: color.RGBA{255, 255, 255, 255}},
}

// Red hue wraps around the 0/180 boundary, so RED carries a second range at
// the top of the hue axis. Both ranges are unioned into red's mask.
var (
	redWrapLower = HSV{160, 30, 80}
	redWrapUpper = HSV{179, 255, 200}
)

// Palette returns the band color taxonomy. The returned slice is shared
// read-only data; callers must not modify it.
func Palette() []ColorSpec {
	return palette
}

// lookup finds a taxonomy entry by name.
func lookup(name string) (ColorSpec, bool) {
	for _, spec := range palette {
		if spec.Name == name {
			return spec, true
		}
	}
	return ColorSpec{}, false
}
