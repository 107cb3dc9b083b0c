package anvil

import "github.com/anvilgfx/anvil/effects"

// Raster filters applied to the whole layer. Like FloodFill, filters
// record no diffs; callers wanting undo snapshot with
// AddCurrentWholeDiff first. Every filter marks all tiles dirty.

// Invert inverts the R, G and B channels of every pixel.
func (a *Anvil) Invert() {
	effects.Invert(a.buf.Data(), a.Width(), a.Height())
	a.tiles.SetAll()
}

// Grayscale converts every pixel to its luminance.
func (a *Anvil) Grayscale() {
	effects.Grayscale(a.buf.Data(), a.Width(), a.Height())
	a.tiles.SetAll()
}

// BrightnessContrast adjusts brightness then contrast, both relative
// factors in [-1, 1] with 0 as identity.
func (a *Anvil) BrightnessContrast(brightness, contrast float64) {
	effects.BrightnessContrast(a.buf.Data(), a.Width(), a.Height(), brightness, contrast)
	a.tiles.SetAll()
}

// GaussianBlur applies a gaussian blur of the given radius.
func (a *Anvil) GaussianBlur(radius float64, mode effects.AlphaMode) {
	effects.Gaussian(a.buf.Data(), a.Width(), a.Height(), radius, mode)
	a.tiles.SetAll()
}

// Posterize quantizes the color channels to the given number of levels
// per channel.
func (a *Anvil) Posterize(levels int) {
	effects.Posterize(a.buf.Data(), a.Width(), a.Height(), levels)
	a.tiles.SetAll()
}

// Dither quantizes the color channels to the given number of levels
// with dithering; strength in [0, 1] scales the dither.
func (a *Anvil) Dither(mode effects.DitherMode, levels int, strength float64) {
	effects.Dither(a.buf.Data(), a.Width(), a.Height(), mode, levels, strength)
	a.tiles.SetAll()
}

// DustRemoval clears isolated opaque specks of at most maxSize pixels.
func (a *Anvil) DustRemoval(maxSize int, alphaThreshold uint8) {
	effects.DustRemoval(a.buf.Data(), a.Width(), a.Height(), maxSize, alphaThreshold)
	a.tiles.SetAll()
}

// SliceWithMask returns a maskW*maskH RGBA slice holding the layer
// pixels under non-zero mask bytes, sampled with the mask positioned
// at (offX, offY); everything else transparent black.
func (a *Anvil) SliceWithMask(mask []byte, maskW, maskH, offX, offY int) []byte {
	return a.buf.SliceWithMask(mask, maskW, maskH, offX, offY)
}

// CropWithMask returns an RGBA slice of the layer's size keeping only
// pixels covered by non-zero mask bytes, with the mask positioned at
// (offX, offY).
func (a *Anvil) CropWithMask(mask []byte, maskW, maskH, offX, offY int) []byte {
	return a.buf.CropWithMask(mask, maskW, maskH, offX, offY)
}
