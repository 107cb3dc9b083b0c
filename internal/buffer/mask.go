package buffer

// FillMaskArea writes the fill color to every pixel whose mask byte is
// non-zero. The mask covers the whole buffer, one byte per pixel.
// Returns false when the mask is shorter than width*height bytes.
func (b *Buffer) FillMaskArea(mask []uint8, r, g, bl, a uint8) bool {
	total := b.width * b.height
	if len(mask) < total {
		return false
	}
	for mi := 0; mi < total; mi++ {
		if mask[mi] == 0 {
			continue
		}
		i := mi * 4
		b.data[i] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
	return true
}

// SliceWithMask returns a maskW*maskH RGBA slice holding, for each
// non-zero mask byte at (x, y), the buffer pixel sampled from
// (offX+x, offY+y). Everything else is transparent black. Returns nil
// for an empty or undersized mask.
func (b *Buffer) SliceWithMask(mask []uint8, maskW, maskH, offX, offY int) []uint8 {
	if maskW <= 0 || maskH <= 0 || len(mask) < maskW*maskH {
		return nil
	}

	out := make([]uint8, maskW*maskH*4)
	for y := 0; y < maskH; y++ {
		for x := 0; x < maskW; x++ {
			mi := y*maskW + x
			if mask[mi] == 0 {
				continue
			}
			sx := x + offX
			sy := y + offY
			if !b.InBounds(sx, sy) {
				continue
			}
			src := (sy*b.width + sx) * 4
			copy(out[mi*4:mi*4+4], b.data[src:src+4])
		}
	}
	return out
}

// CropWithMask returns an RGBA slice of the buffer's own size keeping
// only pixels covered by a non-zero mask byte, with the mask positioned
// at (offX, offY). Uncovered pixels are transparent black. Returns nil
// for an undersized mask.
func (b *Buffer) CropWithMask(mask []uint8, maskW, maskH, offX, offY int) []uint8 {
	if b.width <= 0 || b.height <= 0 {
		return nil
	}
	if len(mask) < maskW*maskH {
		return nil
	}

	out := make([]uint8, len(b.data))
	for sy := 0; sy < b.height; sy++ {
		for sx := 0; sx < b.width; sx++ {
			mx := sx - offX
			my := sy - offY
			if mx < 0 || mx >= maskW || my < 0 || my >= maskH {
				continue
			}
			if mask[my*maskW+mx] == 0 {
				continue
			}
			i := (sy*b.width + sx) * 4
			copy(out[i:i+4], b.data[i:i+4])
		}
	}
	return out
}
