package codec

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/klauspost/compress/zstd"
)

// Zstd fills the WebP transport slots with zstd-compressed raw RGBA
// instead of WebP. Byte-exact and fast, at the cost of weaker
// compression on photographic content. PNG slots behave like [WebP].
//
// A Zstd value must be created with NewZstd.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstd creates a Zstd codec.
func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd writer: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("codec: zstd reader: %w", err)
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

// RawToWebP compresses raw RGBA bytes with zstd.
func (c *Zstd) RawToWebP(rgba []byte, width, height int) ([]byte, error) {
	if width < 0 || height < 0 || len(rgba) != width*height*4 {
		return nil, ErrSizeMismatch
	}
	return c.enc.EncodeAll(rgba, nil), nil
}

// WebPToRaw decompresses a payload produced by RawToWebP. Payloads
// shorter than width*height*4 bytes are padded with transparent black;
// longer payloads are truncated.
func (c *Zstd) WebPToRaw(data []byte, width, height int) ([]byte, error) {
	raw, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	want := width * height * 4
	if len(raw) == want {
		return raw, nil
	}
	out := make([]byte, want)
	copy(out, raw)
	return out, nil
}

// RawToPNG encodes raw RGBA bytes as a PNG image.
func (c *Zstd) RawToPNG(rgba []byte, width, height int) ([]byte, error) {
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
func (c *Zstd) PNGToRaw(data []byte, width, height int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return flattenImage(img, width, height), nil
}
