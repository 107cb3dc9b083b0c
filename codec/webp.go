package codec

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/deepteams/webp"
	xwebp "golang.org/x/image/webp"
)

// WebP encodes region payloads as lossless WebP and interchange data
// as PNG. Lossless encoding keeps undo/redo byte-exact.
type WebP struct{}

// RawToWebP encodes raw RGBA bytes as a lossless WebP image.
func (WebP) RawToWebP(rgba []byte, width, height int) ([]byte, error) {
	img, err := wrapRGBA(rgba, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Lossless: true}); err != nil {
		return nil, fmt.Errorf("codec: webp encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WebPToRaw decodes a WebP image into width*height*4 RGBA bytes.
func (WebP) WebPToRaw(data []byte, width, height int) ([]byte, error) {
	img, err := xwebp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return flattenImage(img, width, height), nil
}

// RawToPNG encodes raw RGBA bytes as a PNG image.
func (WebP) RawToPNG(rgba []byte, width, height int) ([]byte, error) {
	img, err := wrapRGBA(rgba, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("codec: png encode: %w", err)
	}
	return buf.Bytes(), nil
}

// PNGToRaw decodes a PNG image into width*height*4 RGBA bytes.
func (WebP) PNGToRaw(data []byte, width, height int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return flattenImage(img, width, height), nil
}
