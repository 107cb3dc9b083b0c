package anvil

import "testing"

func TestBoundBoxIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b BoundBox
		want BoundBox
	}{
		{
			"overlap",
			BoundBox{X: 0, Y: 0, Width: 4, Height: 4},
			BoundBox{X: 2, Y: 2, Width: 4, Height: 4},
			BoundBox{X: 2, Y: 2, Width: 2, Height: 2},
		},
		{
			"contained",
			BoundBox{X: 0, Y: 0, Width: 8, Height: 8},
			BoundBox{X: 1, Y: 2, Width: 3, Height: 4},
			BoundBox{X: 1, Y: 2, Width: 3, Height: 4},
		},
		{
			"disjoint",
			BoundBox{X: 0, Y: 0, Width: 2, Height: 2},
			BoundBox{X: 5, Y: 5, Width: 2, Height: 2},
			BoundBox{},
		},
		{
			"edge touch",
			BoundBox{X: 0, Y: 0, Width: 2, Height: 2},
			BoundBox{X: 2, Y: 0, Width: 2, Height: 2},
			BoundBox{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
			if got := tt.b.Intersect(tt.a); got != tt.want {
				t.Errorf("reversed Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBoundBoxAreaEmpty(t *testing.T) {
	if (BoundBox{Width: 3, Height: 2}).Area() != 6 {
		t.Error("Area() wrong")
	}
	if !(BoundBox{}).Empty() || (BoundBox{Width: 1, Height: 1}).Empty() {
		t.Error("Empty() wrong")
	}
}

func TestBoundBoxContains(t *testing.T) {
	b := BoundBox{X: 1, Y: 1, Width: 2, Height: 2}
	if !b.Contains(1, 1) || !b.Contains(2, 2) {
		t.Error("interior point not contained")
	}
	if b.Contains(3, 1) || b.Contains(0, 0) {
		t.Error("exterior point contained")
	}
}
