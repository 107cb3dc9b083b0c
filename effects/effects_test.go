package effects

import "testing"

// solid builds a w*h RGBA slice of one color.
func solid(w, h int, r, g, b, a uint8) []uint8 {
	out := make([]uint8, w*h*4)
	for i := 0; i < len(out); i += 4 {
		out[i] = r
		out[i+1] = g
		out[i+2] = b
		out[i+3] = a
	}
	return out
}

func TestInvert(t *testing.T) {
	rgba := solid(2, 2, 10, 20, 30, 200)
	Invert(rgba, 2, 2)
	if rgba[0] != 245 || rgba[1] != 235 || rgba[2] != 225 {
		t.Errorf("inverted pixel = (%d,%d,%d), want (245,235,225)", rgba[0], rgba[1], rgba[2])
	}
	if rgba[3] != 200 {
		t.Errorf("alpha = %d, want 200 unchanged", rgba[3])
	}
}

func TestInvertMismatchedSlice(t *testing.T) {
	rgba := []uint8{1, 2, 3}
	Invert(rgba, 2, 2)
	if rgba[0] != 1 {
		t.Error("mismatched slice was modified")
	}
}

func TestGrayscale(t *testing.T) {
	rgba := solid(2, 2, 255, 0, 0, 123)
	Grayscale(rgba, 2, 2)
	if rgba[0] != rgba[1] || rgba[1] != rgba[2] {
		t.Errorf("gray pixel channels differ: (%d,%d,%d)", rgba[0], rgba[1], rgba[2])
	}
	if rgba[0] == 0 || rgba[0] == 255 {
		t.Errorf("red luminance = %d, want strictly between 0 and 255", rgba[0])
	}
	if rgba[3] != 123 {
		t.Errorf("alpha = %d, want 123 unchanged", rgba[3])
	}
}

func TestBrightnessContrastIdentity(t *testing.T) {
	rgba := solid(2, 2, 40, 80, 120, 255)
	BrightnessContrast(rgba, 2, 2, 0, 0)
	if rgba[0] != 40 || rgba[1] != 80 || rgba[2] != 120 {
		t.Errorf("identity adjustment changed pixel to (%d,%d,%d)", rgba[0], rgba[1], rgba[2])
	}
}

func TestBrightnessDirection(t *testing.T) {
	up := solid(1, 1, 100, 100, 100, 255)
	BrightnessContrast(up, 1, 1, 0.5, 0)
	if up[0] <= 100 {
		t.Errorf("brightened value = %d, want > 100", up[0])
	}

	down := solid(1, 1, 100, 100, 100, 255)
	BrightnessContrast(down, 1, 1, -0.5, 0)
	if down[0] >= 100 {
		t.Errorf("darkened value = %d, want < 100", down[0])
	}
}

func TestGaussianPreserveAlpha(t *testing.T) {
	// A transparent hole in an opaque field keeps its alpha when
	// AlphaPreserve is selected.
	rgba := solid(5, 5, 200, 0, 0, 255)
	hole := (2*5 + 2) * 4
	rgba[hole+3] = 0

	Gaussian(rgba, 5, 5, 1.5, AlphaPreserve)
	if rgba[hole+3] != 0 {
		t.Errorf("hole alpha = %d, want 0 preserved", rgba[hole+3])
	}
}

func TestGaussianZeroRadiusNoOp(t *testing.T) {
	rgba := solid(3, 3, 1, 2, 3, 4)
	want := append([]uint8(nil), rgba...)
	Gaussian(rgba, 3, 3, 0, AlphaBlur)
	for i := range rgba {
		if rgba[i] != want[i] {
			t.Fatal("zero radius modified pixels")
		}
	}
}

func TestPosterizeTwoLevels(t *testing.T) {
	rgba := []uint8{
		10, 120, 200, 255,
		130, 127, 255, 7,
	}
	Posterize(rgba, 2, 1, 2)
	// Two levels snap every channel to 0 or 255.
	for i := 0; i < len(rgba); i += 4 {
		for ch := 0; ch < 3; ch++ {
			if v := rgba[i+ch]; v != 0 && v != 255 {
				t.Errorf("channel %d = %d, want 0 or 255", i+ch, v)
			}
		}
	}
	if rgba[3] != 255 || rgba[7] != 7 {
		t.Error("posterize touched alpha")
	}
}

func TestPosterizeIdempotent(t *testing.T) {
	rgba := solid(4, 4, 33, 99, 166, 255)
	Posterize(rgba, 4, 4, 5)
	once := append([]uint8(nil), rgba...)
	Posterize(rgba, 4, 4, 5)
	for i := range rgba {
		if rgba[i] != once[i] {
			t.Fatal("posterize not idempotent")
		}
	}
}

func TestDitherZeroStrengthMatchesPosterize(t *testing.T) {
	a := solid(4, 4, 77, 150, 30, 255)
	b := append([]uint8(nil), a...)

	Dither(a, 4, 4, DitherOrdered, 4, 0)
	Posterize(b, 4, 4, 4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("byte %d: dither = %d, posterize = %d", i, a[i], b[i])
		}
	}
}

func TestDitherFloydSteinbergQuantizes(t *testing.T) {
	rgba := solid(8, 8, 100, 100, 100, 255)
	Dither(rgba, 8, 8, DitherFloydSteinberg, 2, 1)
	for i := 0; i < len(rgba); i += 4 {
		for ch := 0; ch < 3; ch++ {
			if v := rgba[i+ch]; v != 0 && v != 255 {
				t.Errorf("channel = %d, want 0 or 255", v)
			}
		}
	}
}

func TestDustRemoval(t *testing.T) {
	// A single speck and a 3-pixel run on an otherwise transparent
	// canvas; maxSize 2 clears the speck and keeps the run.
	rgba := make([]uint8, 6*6*4)
	set := func(x, y int) {
		i := (y*6 + x) * 4
		rgba[i] = 255
		rgba[i+3] = 255
	}
	set(1, 1)
	set(3, 3)
	set(4, 3)
	set(5, 3)

	DustRemoval(rgba, 6, 6, 2, 128)

	if rgba[(1*6+1)*4+3] != 0 {
		t.Error("isolated speck survived")
	}
	for _, x := range []int{3, 4, 5} {
		if rgba[(3*6+x)*4+3] != 255 {
			t.Errorf("run pixel (%d,3) cleared", x)
		}
	}
}

func TestDustRemovalRowBoundary(t *testing.T) {
	// Pixels at the end of one row and the start of the next are not
	// 4-connected.
	rgba := make([]uint8, 4*2*4)
	rgba[(0*4+3)*4+3] = 255 // (3,0)
	rgba[(1*4+0)*4+3] = 255 // (0,1)

	DustRemoval(rgba, 4, 2, 1, 1)
	if rgba[(0*4+3)*4+3] != 0 || rgba[(1*4+0)*4+3] != 0 {
		t.Error("row-wrap neighbors treated as one component")
	}
}
