package anvil

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/anvilgfx/anvil/codec"
	"github.com/anvilgfx/anvil/internal/buffer"
	"github.com/anvilgfx/anvil/internal/tile"
)

// Anvil owns the in-memory image of one layer: the RGBA pixel buffer,
// the dirty-tile index a renderer polls for partial uploads, and the
// pending-diff state that feeds undo/redo.
//
// An Anvil is single-threaded: no operation blocks, and callers that
// need parallelism partition by layer (one Anvil per layer) and
// coordinate externally.
type Anvil struct {
	buf   *buffer.Buffer
	tiles *tile.Grid
	diffs *diffController
	codec codec.Codec
}

// New creates an engine for a width*height layer filled with
// transparent black.
func New(width, height int, opts ...Option) *Anvil {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.codec == nil {
		o.codec = codec.Default()
	}
	return &Anvil{
		buf:   buffer.New(width, height),
		tiles: tile.New(width, height, o.tileSize),
		diffs: newDiffController(o.codec),
		codec: o.codec,
	}
}

// NewFromRaw creates an engine adopting a copy of the given RGBA
// bytes. Returns ErrBufferSizeMismatch when len(raw) is not
// width*height*4.
func NewFromRaw(width, height int, raw []byte, opts ...Option) (*Anvil, error) {
	if len(raw) != width*height*4 {
		return nil, ErrBufferSizeMismatch
	}
	a := New(width, height, opts...)
	a.buf.OverwriteCopy(raw, width, height)
	return a, nil
}

// Width returns the layer width in pixels.
func (a *Anvil) Width() int { return a.buf.Width() }

// Height returns the layer height in pixels.
func (a *Anvil) Height() int { return a.buf.Height() }

// TileSize returns the dirty-tracking tile edge length in pixels.
func (a *Anvil) TileSize() int { return a.tiles.TileSize() }

// RawData returns the layer's backing RGBA bytes as a read-only
// handle. The slice aliases live storage: callers contract not to
// mutate it and not to hold it across engine calls.
func (a *Anvil) RawData() []byte { return a.buf.Data() }

// --- pixel access ---

// SetPixel writes one pixel, marks its tile dirty, and records the
// pre-mutation color as a pending pixel diff. Unlike the buffer-level
// permissive write, an out-of-bounds coordinate is an error.
func (a *Anvil) SetPixel(x, y int, c Color) error {
	if !a.buf.InBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	r, g, b, al := a.buf.Get(x, y)
	a.buf.Set(x, y, c.R, c.G, c.B, c.A)
	a.tiles.MarkDirtyByPixel(x, y)
	a.diffs.addPixel(x, y, Color{R: r, G: g, B: b, A: al})
	return nil
}

// GetPixel returns the pixel at (x, y), or ErrOutOfBounds when the
// coordinate is outside the layer.
func (a *Anvil) GetPixel(x, y int) (Color, error) {
	if !a.buf.InBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	r, g, b, al := a.buf.Get(x, y)
	return Color{R: r, G: g, B: b, A: al}, nil
}

// --- fills ---

// FillRect writes the color to every pixel of the rectangle clipped to
// the layer, recording per-pixel pre-image diffs. A rectangle fully
// outside the layer is a no-op.
func (a *Anvil) FillRect(x, y, w, h int, c Color) {
	clip := BoundBox{X: x, Y: y, Width: w, Height: h}.
		Intersect(BoundBox{Width: a.buf.Width(), Height: a.buf.Height()})
	if clip.Empty() {
		return
	}
	for py := clip.Y; py < clip.Y+clip.Height; py++ {
		for px := clip.X; px < clip.X+clip.Width; px++ {
			r, g, b, al := a.buf.Get(px, py)
			a.buf.Set(px, py, c.R, c.G, c.B, c.A)
			a.diffs.addPixel(px, py, Color{R: r, G: g, B: b, A: al})
		}
	}
	a.tiles.MarkRectDirty(clip.X, clip.Y, clip.Width, clip.Height)
}

// FillAll writes the color to every pixel and marks all tiles dirty.
// No diffs are recorded; callers wanting undo snapshot with
// AddCurrentWholeDiff first.
func (a *Anvil) FillAll(c Color) {
	a.buf.Fill(c.R, c.G, c.B, c.A)
	a.tiles.SetAll()
}

// FillMaskArea writes the color to every pixel whose mask byte is
// non-zero. The mask covers the whole layer, one byte per pixel.
// Marks all tiles dirty; records no diffs.
func (a *Anvil) FillMaskArea(mask []byte, c Color) bool {
	if !a.buf.FillMaskArea(mask, c.R, c.G, c.B, c.A) {
		return false
	}
	a.tiles.SetAll()
	return true
}

// FloodFill scanline-fills from (x, y) with the given per-channel
// threshold and reports whether any pixel changed. All tiles are
// marked dirty on change, an over-approximation of the visited set.
// No diffs are recorded; callers wrap with a partial or whole snapshot
// when undo is required.
func (a *Anvil) FloodFill(x, y int, c Color, threshold uint8) bool {
	if !a.buf.FloodFill(x, y, c.R, c.G, c.B, c.A, threshold) {
		return false
	}
	a.tiles.SetAll()
	return true
}

// FloodFillMask is FloodFill constrained to the given selection mask.
func (a *Anvil) FloodFillMask(x, y int, c Color, threshold uint8, mask []byte, mode MaskMode) bool {
	if !a.buf.FloodFillMask(x, y, c.R, c.G, c.B, c.A, threshold, mask, buffer.MaskMode(mode)) {
		return false
	}
	a.tiles.SetAll()
	return true
}

// --- bulk pixel transfer ---

// WriteRect writes src into the rectangle, clipping to the layer, and
// marks intersecting tiles dirty. Returns ErrBufferSizeMismatch when
// len(src) is not w*h*4. Records no diffs.
func (a *Anvil) WriteRect(x, y, w, h int, src []byte) error {
	if err := a.buf.WriteRect(x, y, w, h, src); err != nil {
		return fmt.Errorf("%w: write rect %dx%d", ErrBufferSizeMismatch, w, h)
	}
	a.tiles.MarkRectDirty(x, y, w, h)
	return nil
}

// ReadRect copies the rectangle into a fresh RGBA slice of length
// w*h*4, padding out-of-bounds areas with transparent black.
func (a *Anvil) ReadRect(x, y, w, h int) []byte {
	return a.buf.ReadRect(x, y, w, h)
}

// WritePixels scatter-writes colors to coordinates. coords holds x,y
// pairs, colors one RGBA quad per pair; out-of-bounds pairs are
// skipped. Tiles containing written pixels are marked dirty.
func (a *Anvil) WritePixels(coords []uint32, colors []byte) bool {
	if !a.buf.WritePixels(coords, colors) {
		return false
	}
	for i := 0; i+1 < len(coords); i += 2 {
		x, y := int(coords[i]), int(coords[i+1])
		if a.buf.InBounds(x, y) {
			a.tiles.MarkDirtyByPixel(x, y)
		}
	}
	return true
}

// TransferFromRaw composites a source RGBA image onto the layer under
// the affine transform in opts (scale, then flips, then rotation about
// the scaled source center, then translation), resampling per
// opts.Antialias and blending source-over. Tiles covered by the
// transformed source's bounding box are marked dirty. Records no
// diffs.
func (a *Anvil) TransferFromRaw(src []byte, srcW, srcH int, opts BlitOptions) {
	a.buf.BlitRaw(src, srcW, srcH, buffer.BlitOptions{
		OffsetX:   opts.OffsetX,
		OffsetY:   opts.OffsetY,
		ScaleX:    opts.ScaleX,
		ScaleY:    opts.ScaleY,
		RotateDeg: opts.RotateDeg,
		Antialias: buffer.Antialias(opts.Antialias),
		FlipX:     opts.FlipX,
		FlipY:     opts.FlipY,
	})
	x, y, w, h := transformedBounds(srcW, srcH, opts)
	a.tiles.MarkRectDirty(x, y, w, h)
}

// TransferFromBuffer composites another layer's pixels onto this one.
func (a *Anvil) TransferFromBuffer(src *Anvil, opts BlitOptions) {
	a.TransferFromRaw(src.buf.Data(), src.Width(), src.Height(), opts)
}

// --- resize ---

// Resize reallocates the layer to newW*newH keeping the top-left
// anchored. Pending diffs are discarded; callers flush first or treat
// the resize as its own patch via AddCurrentWholeDiff.
func (a *Anvil) Resize(newW, newH int) {
	a.ResizeWithOffset(newW, newH, 0, 0, 0, 0)
}

// ResizeWithOffset reallocates the layer to newW*newH, copying the
// region so that source pixel (srcOX, srcOY) lands at (destOX,
// destOY). Dirty flags survive for tiles present in both lattices;
// pending diffs are discarded.
func (a *Anvil) ResizeWithOffset(newW, newH, srcOX, srcOY, destOX, destOY int) {
	if newW <= 0 || newH <= 0 {
		return
	}
	Logger().Debug("anvil: resize",
		slog.Int("old_w", a.buf.Width()), slog.Int("old_h", a.buf.Height()),
		slog.Int("new_w", newW), slog.Int("new_h", newH))
	a.buf.ResizeWithOrigins(newW, newH, srcOX, srcOY, destOX, destOY)
	a.tiles.Resize(newW, newH)
	a.diffs.discard()
}

// --- import / export ---

// ImportRaw replaces the layer's contents and dimensions with a copy
// of the given RGBA bytes. Returns false and leaves the layer
// unchanged when len(raw) is not width*height*4. Pending diffs are
// discarded and all tiles marked dirty on success.
func (a *Anvil) ImportRaw(raw []byte, width, height int) bool {
	if !a.buf.OverwriteCopy(raw, width, height) {
		return false
	}
	a.afterImport(width, height)
	return true
}

// ImportWebP decodes a WebP image and replaces the layer's contents.
// A decode failure returns false with the layer untouched.
func (a *Anvil) ImportWebP(data []byte, width, height int) bool {
	raw, err := a.codec.WebPToRaw(data, width, height)
	if err != nil {
		Logger().Warn("anvil: webp import failed", slog.Any("err", err))
		return false
	}
	if !a.buf.Overwrite(raw, width, height) {
		return false
	}
	a.afterImport(width, height)
	return true
}

// ImportPNG decodes a PNG image and replaces the layer's contents.
// A decode failure returns false with the layer untouched.
func (a *Anvil) ImportPNG(data []byte, width, height int) bool {
	raw, err := a.codec.PNGToRaw(data, width, height)
	if err != nil {
		Logger().Warn("anvil: png import failed", slog.Any("err", err))
		return false
	}
	if !a.buf.Overwrite(raw, width, height) {
		return false
	}
	a.afterImport(width, height)
	return true
}

func (a *Anvil) afterImport(width, height int) {
	Logger().Debug("anvil: import",
		slog.Int("width", width), slog.Int("height", height))
	a.tiles.Resize(width, height)
	a.tiles.SetAll()
	a.diffs.discard()
}

// ExportWebP encodes the layer as a WebP image.
func (a *Anvil) ExportWebP() ([]byte, error) {
	return a.codec.RawToWebP(a.buf.Data(), a.buf.Width(), a.buf.Height())
}

// ExportPNG encodes the layer as a PNG image.
func (a *Anvil) ExportPNG() ([]byte, error) {
	return a.codec.RawToPNG(a.buf.Data(), a.buf.Width(), a.buf.Height())
}

// ExportThumbnailPNG encodes a PNG no larger than maxW*maxH,
// downscaling with Catmull-Rom resampling and preserving aspect ratio.
// A layer already within the limits is exported unscaled.
func (a *Anvil) ExportThumbnailPNG(maxW, maxH int) ([]byte, error) {
	w, h := a.buf.Width(), a.buf.Height()
	if maxW <= 0 || maxH <= 0 || w == 0 || h == 0 {
		return nil, fmt.Errorf("anvil: thumbnail of %dx%d at %dx%d: empty target", w, h, maxW, maxH)
	}
	if w <= maxW && h <= maxH {
		return a.ExportPNG()
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	tw := max(1, int(float64(w)*scale))
	th := max(1, int(float64(h)*scale))

	src := &image.NRGBA{Pix: a.buf.Data(), Stride: w * 4, Rect: image.Rect(0, 0, w, h)}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Rect, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("anvil: thumbnail encode: %w", err)
	}
	return buf.Bytes(), nil
}

// --- tiles ---

// DirtyTiles returns the dirty tile indices in row-major order.
func (a *Anvil) DirtyTiles() []TileIndex {
	idx := a.tiles.DirtyIndices()
	out := make([]TileIndex, len(idx))
	for i, t := range idx {
		out[i] = TileIndex{Row: t.Row, Col: t.Col}
	}
	return out
}

// ClearDirtyTiles clears every dirty flag. Renderers call this after
// uploading; FlushDiffs does not clear dirtiness by itself.
func (a *Anvil) ClearDirtyTiles() {
	a.tiles.ClearAll()
}

// SetAllDirty marks every tile dirty.
func (a *Anvil) SetAllDirty() {
	a.tiles.SetAll()
}

// TileInfo returns the pixel rectangle covered by the tile. Edge tiles
// may be smaller than TileSize. Out-of-range indices return the zero
// box.
func (a *Anvil) TileInfo(idx TileIndex) BoundBox {
	x, y, w, h := a.tiles.TileBounds(tile.Index{Row: idx.Row, Col: idx.Col})
	return BoundBox{X: x, Y: y, Width: w, Height: h}
}

// --- diffs ---

// AddPixelDiff records the pre-mutation color of one pixel as a
// pending pixel diff without touching the buffer.
func (a *Anvil) AddPixelDiff(x, y int, before Color) {
	a.diffs.addPixel(x, y, before)
}

// AddPartialDiff records a rectangular pre-image. swap must hold
// bounds.Area()*4 RGBA bytes (ErrPartialBufferSizeMismatch otherwise);
// it is packed through the codec immediately. With setDirty true,
// tiles intersecting the box are marked dirty.
func (a *Anvil) AddPartialDiff(bounds BoundBox, swap []byte, setDirty bool) error {
	if err := a.diffs.addPartial(bounds, swap); err != nil {
		return err
	}
	if setDirty {
		a.tiles.MarkRectDirty(bounds.X, bounds.Y, bounds.Width, bounds.Height)
	}
	return nil
}

// AddCurrentWholeDiff snapshots the current layer through the codec
// and records it as a pending whole pre-image: "save before you
// mutate". Pending finer diffs are discarded.
func (a *Anvil) AddCurrentWholeDiff() error {
	w, h := a.buf.Width(), a.buf.Height()
	encoded, err := a.codec.RawToWebP(a.buf.Data(), w, h)
	if err != nil {
		return fmt.Errorf("anvil: snapshot whole diff: %w", err)
	}
	a.diffs.setWholePacked(WholeDiff{Width: w, Height: h, Encoded: encoded})
	return nil
}

// HasPendingChanges reports whether any diff kind is pending.
func (a *Anvil) HasPendingChanges() bool {
	return a.diffs.hasPending()
}

// PreviewPatch builds the transport patch without clearing pending
// state. The result shares payloads with the pending state and must
// not be applied before a flush or discard.
func (a *Anvil) PreviewPatch() *Patch {
	return a.diffs.preview()
}

// FlushDiffs returns the pending diffs as a transport patch and resets
// the pending state. Tile dirtiness is untouched; the renderer's
// upload loop owns it. Flushing with no writes returns an empty patch.
func (a *Anvil) FlushDiffs() *Patch {
	return a.diffs.flush()
}

// DiscardDiffs drops all pending diffs without building a patch.
func (a *Anvil) DiscardDiffs() {
	a.diffs.discard()
}

// --- patch application ---

// ApplyPatch replays a patch against the layer, kind by kind: whole
// first, then partial, then pixels. Each kind swaps the patch payload
// with the current contents in place, so after ApplyPatch the same
// Patch value replays in the opposite direction. Tiles the patch
// touches are marked dirty.
//
// mode records the caller's direction; application itself is
// symmetric.
func (a *Anvil) ApplyPatch(p *Patch, mode ApplyMode) error {
	if p.Empty() {
		return nil
	}
	Logger().Debug("anvil: apply patch",
		slog.String("mode", mode.String()),
		slog.Int("pixels", len(p.Pixels)),
		slog.Bool("partial", p.Partial != nil),
		slog.Bool("whole", p.Whole != nil))

	if p.Whole != nil {
		if err := a.applyWhole(p.Whole); err != nil {
			return err
		}
	}
	if p.Partial != nil {
		if err := a.applyPartial(p.Partial); err != nil {
			return err
		}
	}
	a.applyPixels(p.Pixels)
	return nil
}

func (a *Anvil) applyWhole(w *WholeDiff) error {
	newRaw, err := a.codec.WebPToRaw(w.Encoded, w.Width, w.Height)
	if err != nil {
		return fmt.Errorf("anvil: apply whole diff: %w", err)
	}
	curW, curH := a.buf.Width(), a.buf.Height()
	curEncoded, err := a.codec.RawToWebP(a.buf.Data(), curW, curH)
	if err != nil {
		return fmt.Errorf("anvil: apply whole diff: %w", err)
	}
	if !a.buf.Overwrite(newRaw, w.Width, w.Height) {
		return fmt.Errorf("%w: whole diff %dx%d", ErrBufferSizeMismatch, w.Width, w.Height)
	}
	if curW != w.Width || curH != w.Height {
		a.tiles.Resize(w.Width, w.Height)
	}
	a.tiles.SetAll()
	*w = WholeDiff{Width: curW, Height: curH, Encoded: curEncoded}
	return nil
}

func (a *Anvil) applyPartial(p *PartialDiff) error {
	box := p.Bounds
	newRaw, err := a.codec.WebPToRaw(p.Encoded, box.Width, box.Height)
	if err != nil {
		return fmt.Errorf("anvil: apply partial diff: %w", err)
	}
	cur := a.buf.ReadRect(box.X, box.Y, box.Width, box.Height)
	curEncoded, err := a.codec.RawToWebP(cur, box.Width, box.Height)
	if err != nil {
		return fmt.Errorf("anvil: apply partial diff: %w", err)
	}
	if err := a.buf.WriteRect(box.X, box.Y, box.Width, box.Height, newRaw); err != nil {
		return fmt.Errorf("anvil: apply partial diff: %w", err)
	}
	a.tiles.MarkRectDirty(box.X, box.Y, box.Width, box.Height)
	p.Encoded = curEncoded
	return nil
}

// applyPixels swaps pixel entries in insertion order. When the same
// coordinate appears twice, later entries observe the value written by
// earlier ones.
func (a *Anvil) applyPixels(pixels []PixelDiff) {
	for i := range pixels {
		e := &pixels[i]
		r, g, b, al := a.buf.Get(e.X, e.Y)
		cur := Color{R: r, G: g, B: b, A: al}.Packed()
		c := Unpack(e.Color)
		if a.buf.Set(e.X, e.Y, c.R, c.G, c.B, c.A) || cur != e.Color {
			a.tiles.MarkDirtyByPixel(e.X, e.Y)
		}
		e.Color = cur
	}
}

// transformedBounds returns the axis-aligned bounding box of the
// source rectangle under the blit transform, for dirty marking.
func transformedBounds(srcW, srcH int, opts BlitOptions) (x, y, w, h int) {
	// Signed extents: a negative scale mirrors the source to the other
	// side of the offset, and the scaled center moves with it.
	sw := float64(srcW) * opts.ScaleX
	sh := float64(srcH) * opts.ScaleY

	// Rotation about the scaled center grows the box to the rotated
	// extents; corners relative to center trace the same AABB.
	cx, cy := sw/2, sh/2
	sin, cos := sincosDeg(opts.RotateDeg)
	hw := abs(cx*cos) + abs(cy*sin)
	hh := abs(cx*sin) + abs(cy*cos)

	x0 := opts.OffsetX + cx - hw
	y0 := opts.OffsetY + cy - hh
	return int(x0) - 1, int(y0) - 1, int(2*hw) + 3, int(2*hh) + 3
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
