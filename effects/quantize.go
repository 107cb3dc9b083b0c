package effects

// DitherMode selects the dithering algorithm.
type DitherMode uint8

const (
	// DitherOrdered perturbs each pixel with a Bayer 4x4 threshold
	// matrix before quantizing.
	DitherOrdered DitherMode = iota

	// DitherFloydSteinberg diffuses quantization error to neighboring
	// pixels (7/16 right, 3/16 down-left, 5/16 down, 1/16 down-right).
	DitherFloydSteinberg
)

// bayer4 is the 4x4 Bayer threshold matrix, values 0..15.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Posterize quantizes the R, G and B channels to the given number of
// levels per channel, leaving alpha untouched. levels below 2 clamp
// to 2.
func Posterize(rgba []uint8, width, height int, levels int) {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return
	}
	if levels < 2 {
		levels = 2
	}
	steps := float64(levels - 1)
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		q := float64(int(float64(v)/255*steps+0.5)) / steps * 255
		lut[v] = clampU8(q)
	}
	for i := 0; i < len(rgba); i += 4 {
		rgba[i] = lut[rgba[i]]
		rgba[i+1] = lut[rgba[i+1]]
		rgba[i+2] = lut[rgba[i+2]]
	}
}

// Dither quantizes the R, G and B channels to the given number of
// levels with dithering. strength in [0, 1] scales the perturbation
// (ordered) or the diffused error (Floyd-Steinberg); 0 degenerates to
// Posterize. Alpha is untouched.
func Dither(rgba []uint8, width, height int, mode DitherMode, levels int, strength float64) {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		return
	}
	if levels < 2 {
		levels = 2
	}
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}

	switch mode {
	case DitherFloydSteinberg:
		ditherFS(rgba, width, height, levels, strength)
	default:
		ditherOrdered(rgba, width, height, levels, strength)
	}
}

func quantizeChannel(v float64, steps float64) float64 {
	q := float64(int(v/255*steps+0.5)) / steps * 255
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return q
}

func ditherOrdered(rgba []uint8, width, height, levels int, strength float64) {
	steps := float64(levels - 1)
	step := 255 / steps
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Threshold in [-0.5, 0.5) scaled by the quantization step.
			t := (bayer4[y%4][x%4]/16 - 0.5) * step * strength
			i := (y*width + x) * 4
			for ch := 0; ch < 3; ch++ {
				rgba[i+ch] = clampU8(quantizeChannel(float64(rgba[i+ch])+t, steps))
			}
		}
	}
}

func ditherFS(rgba []uint8, width, height, levels int, strength float64) {
	steps := float64(levels - 1)

	// Error accumulators for the current and next row, 3 channels.
	cur := make([]float64, width*3)
	next := make([]float64, width*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			for ch := 0; ch < 3; ch++ {
				v := float64(rgba[i+ch]) + cur[x*3+ch]
				q := quantizeChannel(v, steps)
				rgba[i+ch] = clampU8(q)

				err := (v - q) * strength
				if x+1 < width {
					cur[(x+1)*3+ch] += err * 7 / 16
					next[(x+1)*3+ch] += err * 1 / 16
				}
				if x > 0 {
					next[(x-1)*3+ch] += err * 3 / 16
				}
				next[x*3+ch] += err * 5 / 16
			}
		}
		cur, next = next, cur
		for i := range next {
			next[i] = 0
		}
	}
}
