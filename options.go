package anvil

import "github.com/anvilgfx/anvil/codec"

// DefaultTileSize is the dirty-tracking tile edge used when no
// WithTileSize option is given.
const DefaultTileSize = 64

// Option configures an Anvil during creation.
//
// Example:
//
//	// Default: 64px tiles, lossless WebP codec
//	a := anvil.New(512, 512)
//
//	// Custom tile lattice and byte-exact payloads
//	z, _ := codec.NewZstd()
//	a := anvil.New(512, 512, anvil.WithTileSize(32), anvil.WithCodec(z))
type Option func(*options)

type options struct {
	tileSize int
	codec    codec.Codec
}

func defaultOptions() options {
	return options{
		tileSize: DefaultTileSize,
		codec:    nil, // resolved to codec.Default() if nil
	}
}

// WithTileSize sets the dirty-tracking tile edge length in pixels.
// Values below 1 fall back to DefaultTileSize.
func WithTileSize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.tileSize = size
		}
	}
}

// WithCodec sets the codec used to pack diff payloads and serve
// import/export. Use this to inject a custom transport encoding.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}
