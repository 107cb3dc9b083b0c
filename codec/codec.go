// Package codec converts raw RGBA pixel data to and from the encoded
// transport forms used by diff payloads and layer import/export.
//
// The engine treats encoded bytes as opaque: the only requirement is
// that an encoding round-trips through the same codec with the same
// dimensions. Lossy WebP encoders are an accepted trade-off for
// region payloads; use [Zstd] when byte-exact payloads are required.
package codec

import (
	"errors"
	"image"
)

// Common codec errors.
var (
	// ErrDecode is returned when encoded bytes cannot be decoded.
	ErrDecode = errors.New("codec: decode failure")

	// ErrSizeMismatch is returned when raw pixel data does not hold
	// width*height*4 bytes.
	ErrSizeMismatch = errors.New("codec: raw size mismatch")
)

// Codec encodes and decodes RGBA pixel rectangles.
//
// RawToWebP/RawToPNG accept exactly width*height*4 bytes of RGBA data.
// WebPToRaw/PNGToRaw return exactly width*height*4 bytes; when the
// encoded image is smaller than the requested dimensions the remainder
// is transparent black.
type Codec interface {
	RawToWebP(rgba []byte, width, height int) ([]byte, error)
	WebPToRaw(data []byte, width, height int) ([]byte, error)
	RawToPNG(rgba []byte, width, height int) ([]byte, error)
	PNGToRaw(data []byte, width, height int) ([]byte, error)
}

// Default returns the codec the engine uses when none is supplied:
// lossless WebP for region payloads, PNG for interchange.
func Default() Codec {
	return WebP{}
}

// wrapRGBA views raw RGBA bytes as an image without copying.
func wrapRGBA(rgba []byte, width, height int) (*image.NRGBA, error) {
	if width < 0 || height < 0 || len(rgba) != width*height*4 {
		return nil, ErrSizeMismatch
	}
	return &image.NRGBA{
		Pix:    rgba,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// flattenImage copies a decoded image into a width*height RGBA slice,
// converting pixel formats as needed. Areas the decoded image does not
// cover stay transparent black.
func flattenImage(img image.Image, width, height int) []byte {
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	if src, ok := img.(*image.NRGBA); ok {
		b := src.Bounds()
		w := min(width, b.Dx())
		h := min(height, b.Dy())
		for y := 0; y < h; y++ {
			srcRow := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(out.Pix[y*out.Stride:y*out.Stride+w*4], srcRow[:w*4])
		}
		return out.Pix
	}

	b := img.Bounds()
	w := min(width, b.Dx())
	h := min(height, b.Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out.Pix
}
