package buffer

// ResizeWithOrigins reallocates the buffer to newW*newH and copies the
// overlapping region so that source pixel (srcOX, srcOY) lands at
// destination pixel (destOX, destOY). Crop and translate in one pass:
// areas the copy does not cover stay transparent black.
//
// Non-positive target dimensions are a no-op.
func (b *Buffer) ResizeWithOrigins(newW, newH, srcOX, srcOY, destOX, destOY int) {
	if newW <= 0 || newH <= 0 {
		return
	}
	oldW, oldH := b.width, b.height
	if oldW == newW && oldH == newH && srcOX == 0 && srcOY == 0 && destOX == 0 && destOY == 0 {
		return
	}

	// Destination rows/cols for which a source pixel exists:
	// dest (dx,dy) maps to source (dx-destOX+srcOX, dy-destOY+srcOY),
	// which must be within [0,oldW) x [0,oldH).
	left := max(0, destOX-srcOX)
	top := max(0, destOY-srcOY)
	right := min(newW, destOX-srcOX+oldW)
	bottom := min(newH, destOY-srcOY+oldH)

	out := make([]uint8, newW*newH*4)
	if left < right && top < bottom {
		rowW := (right - left) * 4
		sxFirst := left - destOX + srcOX
		for dy := top; dy < bottom; dy++ {
			sy := dy - destOY + srcOY
			if sy < 0 || sy >= oldH {
				continue
			}
			if sxFirst < 0 || sxFirst+(right-left) > oldW {
				continue
			}
			src := (sy*oldW + sxFirst) * 4
			dst := (dy*newW + left) * 4
			copy(out[dst:dst+rowW], b.data[src:src+rowW])
		}
	}

	b.data = out
	b.width = newW
	b.height = newH
}
