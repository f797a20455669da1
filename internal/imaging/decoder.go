package imaging

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"shortlist/internal/services"
)

// Decoder turns a photo file into a raster bounded by a longest-edge size.
type Decoder interface {
	Decode(path string, maxEdge int) (image.Image, error)
}

// StdDecoder decodes JPEG, PNG, and GIF sources with the standard library
// codecs and downscales with Catmull-Rom resampling.
type StdDecoder struct{}

// Decode reads and decodes path, then scales the result so its longest edge
// is at most maxEdge. Images already within bounds are returned as decoded.
func (StdDecoder) Decode(path string, maxEdge int) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "imaging", "open", path, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, services.Wrap(services.ErrDecode, "imaging", "decode", path, err)
	}
	return Fit(src, maxEdge), nil
}

// Fit scales src down so its longest edge is at most maxEdge, preserving
// aspect ratio. It never upscales.
func Fit(src image.Image, maxEdge int) image.Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if maxEdge <= 0 || (width <= maxEdge && height <= maxEdge) {
		return src
	}

	var outW, outH int
	if width >= height {
		outW = maxEdge
		outH = height * maxEdge / width
	} else {
		outH = maxEdge
		outW = width * maxEdge / height
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}
