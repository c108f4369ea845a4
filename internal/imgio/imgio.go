// Package imgio decodes uploaded image files into BGR Mats for the
// detection pipeline. File format parsing stays here; the pipeline itself
// only ever sees raw pixel buffers.
package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned for file extensions outside the upload
// allow-list.
var ErrUnsupportedFormat = errors.New("unsupported file type")

// allowedExtensions mirrors the decoders registered with image.Decode.
var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".tif":  {},
	".tiff": {},
}

// CheckExtension validates a file name against the upload allow-list.
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedExtensions[ext]; !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// Decode parses an encoded image and converts it into a 3-channel BGR Mat,
// dropping any alpha channel. The caller owns the returned Mat.
func Decode(data []byte) (gocv.Mat, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("decode image: %w", err)
	}
	return ToBGR(img)
}

// ToBGR converts a decoded image into a BGR byte Mat.
func ToBGR(img image.Image) (gocv.Mat, error) {
	// Normalize to NRGBA so pixel access is uniform across source formats.
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return gocv.NewMat(), fmt.Errorf("empty image %dx%d", w, h)
	}

	buf := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := buf[y*w*3:]
		for x := 0; x < w; x++ {
			dst[x*3+0] = src[x*4+2] // B
			dst[x*3+1] = src[x*4+1] // G
			dst[x*3+2] = src[x*4+0] // R
		}
	}

	mat, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, buf)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert image: %w", err)
	}
	return mat, nil
}
