package effects

// DustRemoval clears isolated opaque specks: 4-connected components of
// pixels with alpha >= alphaThreshold containing at most maxSize
// pixels are set to transparent black. A maxSize of 0 is a no-op.
func DustRemoval(rgba []uint8, width, height int, maxSize int, alphaThreshold uint8) {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 || maxSize <= 0 {
		return
	}

	total := width * height
	visited := make([]bool, total)
	queue := make([]int, 0, maxSize+1)
	component := make([]int, 0, maxSize+1)

	solid := func(pi int) bool {
		return rgba[pi*4+3] >= alphaThreshold
	}

	for start := 0; start < total; start++ {
		if visited[start] || !solid(start) {
			continue
		}

		// Flood the whole component, flagging it once it exceeds maxSize;
		// every pixel is marked visited so the rest of an oversize
		// component is not picked up again as a smaller one.
		queue = append(queue[:0], start)
		component = component[:0]
		visited[start] = true
		oversize := false
		for len(queue) > 0 {
			pi := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			component = append(component, pi)
			if len(component) > maxSize {
				oversize = true
			}

			x := pi % width
			for _, n := range [4]int{pi - width, pi + width, pi - 1, pi + 1} {
				if n < 0 || n >= total || visited[n] || !solid(n) {
					continue
				}
				// Horizontal neighbors must stay on the same row.
				if (n == pi-1 && x == 0) || (n == pi+1 && x == width-1) {
					continue
				}
				visited[n] = true
				queue = append(queue, n)
			}
		}

		if oversize {
			continue
		}
		for _, pi := range component {
			i := pi * 4
			rgba[i] = 0
			rgba[i+1] = 0
			rgba[i+2] = 0
			rgba[i+3] = 0
		}
	}
}
