package anvil

import (
	"image/color"
	"testing"
)

func TestPackedLayout(t *testing.T) {
	c := Color{R: 255, G: 128, B: 64, A: 200}
	if got := c.Packed(); got != 0xC8FF8040 {
		t.Errorf("Packed() = %#x, want 0xC8FF8040", got)
	}
	if got := Unpack(0xC8FF8040); got != c {
		t.Errorf("Unpack() = %v, want %v", got, c)
	}
}

func TestPackedRoundTrip(t *testing.T) {
	// Sample the channel space; exhaustive over one channel, strided
	// over the others.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				for a := 0; a < 256; a++ {
					c := Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
					if got := Unpack(c.Packed()); got != c {
						t.Fatalf("round trip %v -> %#x -> %v", c, c.Packed(), got)
					}
				}
			}
		}
	}
}

func TestTransparentIsZero(t *testing.T) {
	if Transparent.Packed() != 0 {
		t.Errorf("Transparent.Packed() = %#x, want 0", Transparent.Packed())
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	want := Color{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("FromColor() = %v, want %v", got, want)
	}
}

func TestColorInterface(t *testing.T) {
	c := Color{R: 1, G: 2, B: 3, A: 4}
	n, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() = %T, want color.NRGBA", c.Color())
	}
	if n.R != 1 || n.G != 2 || n.B != 3 || n.A != 4 {
		t.Errorf("Color() = %v", n)
	}
}
