package effects

import "github.com/anthonynsimon/bild/blur"

// AlphaMode controls how a blur treats the alpha channel.
type AlphaMode uint8

const (
	// AlphaBlur blurs the alpha channel along with the colors.
	AlphaBlur AlphaMode = iota

	// AlphaPreserve restores the original alpha after blurring, so
	// coverage edges stay crisp while colors soften.
	AlphaPreserve
)

// Gaussian applies a gaussian blur of the given radius. A radius of 0
// or less is a no-op.
func Gaussian(rgba []uint8, width, height int, radius float64, mode AlphaMode) {
	if radius <= 0 {
		return
	}
	src := wrap(rgba, width, height)
	if src == nil {
		return
	}
	out := blur.Gaussian(src, radius)
	if mode == AlphaPreserve {
		restoreAlpha(out.Pix, rgba)
	}
	copy(rgba, out.Pix)
}
