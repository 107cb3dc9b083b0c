package anvil

import "image/color"

// Color is an 8-bit sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Transparent is fully transparent black, the value of every pixel in a
// freshly allocated buffer.
var Transparent = Color{}

// Packed returns the color packed into a uint32 with layout
// (A<<24)|(R<<16)|(G<<8)|B. This is the transport form used by pixel
// diffs inside a [Patch].
func (c Color) Packed() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack converts a packed uint32 back into a Color.
// It is the inverse of [Color.Packed] for every value.
func Unpack(p uint32) Color {
	return Color{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: uint8(p >> 24),
	}
}

// Color converts to the standard color.Color interface.
func (c Color) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}
