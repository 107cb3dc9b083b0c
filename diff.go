package anvil

import (
	"fmt"

	"github.com/anvilgfx/anvil/codec"
)

// diffController accumulates the pre-images of buffer mutations and
// packs them into transport form.
//
// Three diff kinds exist, ordered fine to coarse: pixel, partial,
// whole. Ingesting a coarser kind discards finer pending changes it
// would override; once a coarser kind is pending, later ingests of the
// same or a finer kind are dropped, whether or not the pending
// pre-image covers their pixels. Partial and whole payloads are bulky, so they are packed
// through the codec at ingest time to bound memory; pixel diffs stay
// unpacked until flush.
type diffController struct {
	codec   codec.Codec
	pixels  []PixelDiff
	partial *PartialDiff
	whole   *WholeDiff
}

func newDiffController(c codec.Codec) *diffController {
	return &diffController{codec: c}
}

// addPixel appends the pre-mutation color of one pixel. Duplicate
// coordinates are kept; insertion order is the replay order.
func (d *diffController) addPixel(x, y int, before Color) {
	if d.partial != nil || d.whole != nil {
		return
	}
	d.pixels = append(d.pixels, PixelDiff{X: x, Y: y, Color: before.Packed()})
}

// addPartial ingests the pre-image of a rectangular region and packs it
// immediately. Pending pixel diffs are discarded. When a whole diff is
// already pending the partial is dropped: the whole pre-image covers
// the region.
func (d *diffController) addPartial(bounds BoundBox, swap []byte) error {
	if len(swap) != bounds.Area()*4 {
		return ErrPartialBufferSizeMismatch
	}
	if d.whole != nil {
		return nil
	}
	if d.partial != nil {
		// The pending partial is the older pre-image; keep it.
		Logger().Debug("anvil: partial diff already pending, dropping new one")
		d.pixels = nil
		return nil
	}
	encoded, err := d.codec.RawToWebP(swap, bounds.Width, bounds.Height)
	if err != nil {
		return fmt.Errorf("anvil: pack partial diff: %w", err)
	}
	d.partial = &PartialDiff{Bounds: bounds, Encoded: encoded}
	d.pixels = nil
	return nil
}

// addWhole ingests the pre-image of the entire buffer and packs it
// immediately. Pending pixel and partial diffs are discarded. A
// pending whole diff is kept: it is the older pre-image.
func (d *diffController) addWhole(width, height int, swap []byte) error {
	if len(swap) != width*height*4 {
		return ErrBufferSizeMismatch
	}
	if d.whole != nil {
		d.pixels = nil
		d.partial = nil
		return nil
	}
	encoded, err := d.codec.RawToWebP(swap, width, height)
	if err != nil {
		return fmt.Errorf("anvil: pack whole diff: %w", err)
	}
	d.setWholePacked(WholeDiff{Width: width, Height: height, Encoded: encoded})
	return nil
}

// setWholePacked is addWhole for a pre-image that is already encoded.
func (d *diffController) setWholePacked(w WholeDiff) {
	if d.whole == nil {
		d.whole = &w
	}
	d.pixels = nil
	d.partial = nil
}

// hasPending reports whether any diff kind is non-empty.
func (d *diffController) hasPending() bool {
	return len(d.pixels) > 0 || d.partial != nil || d.whole != nil
}

// preview builds the transport patch without clearing state. The
// returned patch shares encoded payloads with the pending state; it
// must not be applied before a flush or discard.
func (d *diffController) preview() *Patch {
	p := &Patch{Partial: d.partial, Whole: d.whole}
	if len(d.pixels) > 0 {
		p.Pixels = make([]PixelDiff, len(d.pixels))
		copy(p.Pixels, d.pixels)
	}
	return p
}

// flush returns the transport patch and resets the pending state.
// With nothing pending the returned patch is empty.
func (d *diffController) flush() *Patch {
	p := &Patch{Pixels: d.pixels, Partial: d.partial, Whole: d.whole}
	d.pixels = nil
	d.partial = nil
	d.whole = nil
	return p
}

// discard resets the pending state without building a patch.
func (d *diffController) discard() {
	d.pixels = nil
	d.partial = nil
	d.whole = nil
}
