package storage

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/nfnt/resize"
)

// Downscale caps an image's larger dimension at maxDim, preserving aspect
// ratio. Images already within bounds, and payloads that do not decode as
// JPEG or PNG, pass through untouched.
func Downscale(data []byte, maxDim int) []byte {
	if maxDim <= 0 {
		return data
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return data
	}

	var resized image.Image
	if bounds.Dx() >= bounds.Dy() {
		resized = resize.Resize(uint(maxDim), 0, img, resize.Lanczos3)
	} else {
		resized = resize.Resize(0, uint(maxDim), img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		return data
	}
	return buf.Bytes()
}
