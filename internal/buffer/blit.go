package buffer

import "math"

// Antialias selects how source pixels are resampled during a blit.
type Antialias uint8

const (
	// AntialiasNearest selects the closest pixel (no interpolation).
	AntialiasNearest Antialias = iota

	// AntialiasBilinear interpolates linearly between 4 neighbors.
	AntialiasBilinear

	// AntialiasBicubic interpolates with a Catmull-Rom kernel over a
	// 4x4 neighborhood.
	AntialiasBicubic
)

// String returns a string representation of the antialias mode.
func (a Antialias) String() string {
	switch a {
	case AntialiasNearest:
		return "Nearest"
	case AntialiasBilinear:
		return "Bilinear"
	case AntialiasBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// BlitOptions carries the affine transform and resampling parameters
// for BlitRaw. The transform applies scale, then flips, then rotation
// about the scaled source center, then translation by the offset.
type BlitOptions struct {
	OffsetX, OffsetY float64
	ScaleX, ScaleY   float64
	RotateDeg        float64
	Antialias        Antialias
	FlipX, FlipY     bool
}

// BlitRaw composites the source RGBA image onto the buffer under the
// affine transform described by opts, sampling per opts.Antialias and
// blending source-over with straight alpha. Fully transparent source
// samples leave the destination untouched; destination pixels outside
// the buffer are skipped.
//
// A source whose byte length does not match srcW*srcH*4, or a zero
// scale (singular transform), is a no-op.
func (b *Buffer) BlitRaw(src []uint8, srcW, srcH int, opts BlitOptions) {
	if srcW <= 0 || srcH <= 0 || len(src) != srcW*srcH*4 {
		return
	}
	if opts.ScaleX == 0 || opts.ScaleY == 0 {
		return
	}

	sinR, cosR := math.Sincos(opts.RotateDeg * math.Pi / 180)

	// Rotation pivots on the center of the scaled source.
	centerX := float64(srcW) * opts.ScaleX / 2
	centerY := float64(srcH) * opts.ScaleY / 2

	for ty := 0; ty < b.height; ty++ {
		for tx := 0; tx < b.width; tx++ {
			// Inverse-map the destination pixel into source space:
			// untranslate, unrotate about the center, unscale, unflip.
			relX := float64(tx) - opts.OffsetX
			relY := float64(ty) - opts.OffsetY

			cx := relX - centerX
			cy := relY - centerY
			rotX := cx*cosR + cy*sinR + centerX
			rotY := -cx*sinR + cy*cosR + centerY

			sx := rotX / opts.ScaleX
			sy := rotY / opts.ScaleY

			if opts.FlipX {
				sx = float64(srcW-1) - sx
			}
			if opts.FlipY {
				sy = float64(srcH-1) - sy
			}

			if sx < 0 || sy < 0 || sx >= float64(srcW) || sy >= float64(srcH) {
				continue
			}

			sr, sg, sb, sa := sample(src, srcW, srcH, sx, sy, opts.Antialias)
			if sa == 0 {
				continue
			}

			i := (ty*b.width + tx) * 4
			dr, dg, db, da := b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
			r, g, bl, a := blendOver(sr, sg, sb, sa, dr, dg, db, da)
			b.data[i] = r
			b.data[i+1] = g
			b.data[i+2] = bl
			b.data[i+3] = a
		}
	}
}

// sample resamples the source at continuous coordinates (sx, sy).
func sample(src []uint8, w, h int, sx, sy float64, mode Antialias) (r, g, b, a uint8) {
	switch mode {
	case AntialiasBilinear:
		return sampleBilinear(src, w, h, sx, sy)
	case AntialiasBicubic:
		return sampleBicubic(src, w, h, sx, sy)
	default:
		return sampleNearest(src, w, h, sx, sy)
	}
}

// srcPixel reads one source pixel as floats, transparent black outside
// the source bounds.
func srcPixel(src []uint8, w, h, x, y int) (r, g, b, a float64) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return 0, 0, 0, 0
	}
	i := (y*w + x) * 4
	return float64(src[i]), float64(src[i+1]), float64(src[i+2]), float64(src[i+3])
}

func sampleNearest(src []uint8, w, h int, sx, sy float64) (uint8, uint8, uint8, uint8) {
	x := clampInt(int(math.Floor(sx+0.5)), 0, w-1)
	y := clampInt(int(math.Floor(sy+0.5)), 0, h-1)
	i := (y*w + x) * 4
	return src[i], src[i+1], src[i+2], src[i+3]
}

func sampleBilinear(src []uint8, w, h int, sx, sy float64) (uint8, uint8, uint8, uint8) {
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	x1 := min(x0+1, w-1)
	y1 := min(y0+1, h-1)
	fx := sx - float64(x0)
	fy := sy - float64(y0)

	r00, g00, b00, a00 := srcPixel(src, w, h, x0, y0)
	r10, g10, b10, a10 := srcPixel(src, w, h, x1, y0)
	r01, g01, b01, a01 := srcPixel(src, w, h, x0, y1)
	r11, g11, b11, a11 := srcPixel(src, w, h, x1, y1)

	lerp2 := func(c00, c10, c01, c11 float64) float64 {
		top := c00*(1-fx) + c10*fx
		bot := c01*(1-fx) + c11*fx
		return top*(1-fy) + bot*fy
	}

	return clampU8(lerp2(r00, r10, r01, r11)),
		clampU8(lerp2(g00, g10, g01, g11)),
		clampU8(lerp2(b00, b10, b01, b11)),
		clampU8(lerp2(a00, a10, a01, a11))
}

func sampleBicubic(src []uint8, w, h int, sx, sy float64) (uint8, uint8, uint8, uint8) {
	x1 := int(math.Floor(sx))
	y1 := int(math.Floor(sy))
	fx := sx - float64(x1)
	fy := sy - float64(y1)

	var col [4][4]float64 // per-row interpolated channels
	for row := 0; row < 4; row++ {
		y := clampInt(y1-1+row, 0, h-1)
		var px [4][4]float64
		for cx := 0; cx < 4; cx++ {
			x := clampInt(x1-1+cx, 0, w-1)
			px[cx][0], px[cx][1], px[cx][2], px[cx][3] = srcPixel(src, w, h, x, y)
		}
		for ch := 0; ch < 4; ch++ {
			col[row][ch] = catmullRom(px[0][ch], px[1][ch], px[2][ch], px[3][ch], fx)
		}
	}

	var out [4]uint8
	for ch := 0; ch < 4; ch++ {
		out[ch] = clampU8(catmullRom(col[0][ch], col[1][ch], col[2][ch], col[3][ch], fy))
	}
	return out[0], out[1], out[2], out[3]
}

// catmullRom evaluates the Catmull-Rom spline through p0..p3 at t.
func catmullRom(p0, p1, p2, p3, t float64) float64 {
	t2 := t * t
	t3 := t2 * t
	return 0.5 * ((2 * p1) +
		(-p0+p2)*t +
		(2*p0-5*p1+4*p2-p3)*t2 +
		(-p0+3*p1-3*p2+p3)*t3)
}

// blendOver composites source over destination with straight alpha.
func blendOver(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	saf := float64(sa) / 255
	daf := float64(da) / 255

	blendCh := func(s, d uint8) uint8 {
		return clampU8(float64(s)*saf + float64(d)*(1-saf))
	}
	outA := clampU8((saf + daf*(1-saf)) * 255)
	return blendCh(sr, dr), blendCh(sg, dg), blendCh(sb, db), outA
}

func clampU8(v float64) uint8 {
	return uint8(math.Round(math.Min(255, math.Max(0, v))))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
