package buffer

import (
	"bytes"
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	b := New(4, 3)
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("dimensions = %dx%d, want 4x3", b.Width(), b.Height())
	}
	if len(b.Data()) != 4*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(b.Data()), 4*3*4)
	}
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("byte %d = %d, want 0", i, v)
		}
	}
}

func TestFromRaw(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		rawLen  int
		wantErr error
	}{
		{"exact", 2, 2, 16, nil},
		{"1x1", 1, 1, 4, nil},
		{"short", 2, 2, 15, ErrSizeMismatch},
		{"long", 2, 2, 17, ErrSizeMismatch},
		{"empty for 1x1", 1, 1, 0, ErrSizeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromRaw(tt.width, tt.height, make([]uint8, tt.rawLen))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromRaw() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRawCopies(t *testing.T) {
	raw := []uint8{1, 2, 3, 4}
	b, err := FromRaw(1, 1, raw)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	raw[0] = 99
	if r, _, _, _ := b.Get(0, 0); r != 1 {
		t.Errorf("buffer aliases caller slice: r = %d, want 1", r)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	b := New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := [4]uint8{uint8(x), uint8(y), uint8(x + y), 255}
			b.Set(x, y, want[0], want[1], want[2], want[3])
			r, g, bl, a := b.Get(x, y)
			if got := [4]uint8{r, g, bl, a}; got != want {
				t.Fatalf("Get(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	b := New(4, 4)
	b.Fill(9, 9, 9, 9)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-100, -100}, {1 << 20, 1 << 20},
	}
	for _, c := range coords {
		r, g, bl, a := b.Get(c.x, c.y)
		if r != 0 || g != 0 || bl != 0 || a != 0 {
			t.Errorf("Get(%d,%d) = (%d,%d,%d,%d), want transparent black", c.x, c.y, r, g, bl, a)
		}
	}
}

func TestSetOutOfBounds(t *testing.T) {
	b := New(4, 4)
	before := append([]uint8(nil), b.Data()...)

	coords := []struct{ x, y int }{
		{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {-100, 100},
	}
	for _, c := range coords {
		if b.Set(c.x, c.y, 255, 255, 255, 255) {
			t.Errorf("Set(%d,%d) = true, want false", c.x, c.y)
		}
	}
	if !bytes.Equal(b.Data(), before) {
		t.Error("out-of-bounds Set modified the buffer")
	}
}

func TestSetChangeDetection(t *testing.T) {
	b := New(4, 4)
	if !b.Set(1, 1, 10, 20, 30, 40) {
		t.Error("first Set = false, want true")
	}
	if b.Set(1, 1, 10, 20, 30, 40) {
		t.Error("identical Set = true, want false")
	}
	if !b.Set(1, 1, 10, 20, 30, 41) {
		t.Error("single-channel change Set = false, want true")
	}
}

func TestFill(t *testing.T) {
	b := New(3, 3)
	b.Fill(1, 2, 3, 4)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			r, g, bl, a := b.Get(x, y)
			if r != 1 || g != 2 || bl != 3 || a != 4 {
				t.Fatalf("Get(%d,%d) = (%d,%d,%d,%d), want (1,2,3,4)", x, y, r, g, bl, a)
			}
		}
	}
}

func TestOverwrite(t *testing.T) {
	b := New(2, 2)
	raw := make([]uint8, 3*1*4)
	raw[0] = 7
	if !b.Overwrite(raw, 3, 1) {
		t.Fatal("Overwrite = false, want true")
	}
	if b.Width() != 3 || b.Height() != 1 {
		t.Errorf("dimensions = %dx%d, want 3x1", b.Width(), b.Height())
	}
	if r, _, _, _ := b.Get(0, 0); r != 7 {
		t.Errorf("r = %d, want 7", r)
	}

	if b.Overwrite(make([]uint8, 5), 1, 1) {
		t.Error("mismatched Overwrite = true, want false")
	}
	if b.Width() != 3 || b.Height() != 1 {
		t.Error("failed Overwrite changed dimensions")
	}
}

func TestClone(t *testing.T) {
	b := New(2, 2)
	b.Set(0, 0, 5, 5, 5, 5)
	c := b.Clone()
	b.Set(0, 0, 9, 9, 9, 9)
	if r, _, _, _ := c.Get(0, 0); r != 5 {
		t.Errorf("clone tracks original: r = %d, want 5", r)
	}
}
