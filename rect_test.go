package polyedit

import "testing"

func TestRectNormalize(t *testing.T) {
	r := Rect{Origin: Vt(10, 10), Size: Vt(-4, -6)}
	got := r.Normalize()
	want := Rect{Origin: Vt(6, 4), Size: Vt(4, 6)}
	if got != want {
		t.Errorf("Normalize() = %+v, want %+v", got, want)
	}
	if r.Width() != 4 || r.Height() != 6 {
		t.Errorf("Width(), Height() = %d, %d, want 4, 6", r.Width(), r.Height())
	}
}

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		delta int
		want  Rect
	}{
		{"grow", RectFromCorners(Vt(0, 0), Vt(10, 4)), 2, Rect{Vt(-2, -2), Vt(14, 8)}},
		{"shrink", RectFromCorners(Vt(0, 0), Vt(10, 4)), -1, Rect{Vt(1, 1), Vt(8, 2)}},
		{"collapse", RectFromCorners(Vt(0, 0), Vt(10, 4)), -3, Rect{Vt(3, 2), Vt(4, 0)}},
		{"zero", RectFromCorners(Vt(1, 1), Vt(2, 2)), 0, Rect{Vt(1, 1), Vt(1, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Inflate(tt.delta); got != tt.want {
				t.Errorf("Inflate(%d) = %+v, want %+v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestRectRevertYAxis(t *testing.T) {
	r := RectFromCorners(Vt(-1, 2), Vt(5, 9))
	got := r.RevertYAxis()
	want := Rect{Origin: Vt(-1, -9), Size: Vt(6, 7)}
	if got != want {
		t.Errorf("RevertYAxis() = %+v, want %+v", got, want)
	}
	if back := got.RevertYAxis(); back != r {
		t.Errorf("RevertYAxis twice = %+v, want %+v", back, r)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromCorners(Vt(0, 0), Vt(10, 10))
	tests := []struct {
		v    Vertex
		want bool
	}{
		{Vt(5, 5), true},
		{Vt(0, 0), true},
		{Vt(10, 10), true},
		{Vt(10, 0), true},
		{Vt(11, 5), false},
		{Vt(5, -1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}

	flipped := Rect{Origin: Vt(10, 10), Size: Vt(-10, -10)}
	if !flipped.Contains(Vt(5, 5)) {
		t.Error("Contains() = false on a negative-size rect")
	}
	if !r.ContainsRect(RectFromCorners(Vt(1, 1), Vt(10, 9))) {
		t.Error("ContainsRect() = false for an inner rect")
	}
	if r.ContainsRect(RectFromCorners(Vt(1, 1), Vt(11, 9))) {
		t.Error("ContainsRect() = true for an overhanging rect")
	}
}

func TestRectIntersects(t *testing.T) {
	r := RectFromCorners(Vt(0, 0), Vt(10, 10))
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"overlap", RectFromCorners(Vt(5, 5), Vt(15, 15)), true},
		{"inside", RectFromCorners(Vt(2, 2), Vt(3, 3)), true},
		{"touching edge", RectFromCorners(Vt(10, 0), Vt(20, 10)), true},
		{"apart", RectFromCorners(Vt(11, 0), Vt(20, 10)), false},
		{"negative size", Rect{Origin: Vt(20, 20), Size: Vt(-12, -12)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.o); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.o, got, tt.want)
			}
		})
	}
}

func TestRectIntersectsSegment(t *testing.T) {
	r := RectFromCorners(Vt(0, 0), Vt(10, 10))
	tests := []struct {
		name   string
		p1, p2 Vertex
		want   bool
	}{
		{"endpoint inside", Vt(5, 5), Vt(50, 50), true},
		{"passing through", Vt(-5, 5), Vt(15, 5), true},
		{"diagonal through", Vt(-5, -5), Vt(15, 15), true},
		{"vertical through", Vt(5, -20), Vt(5, 20), true},
		{"missing", Vt(-5, 12), Vt(15, 12), false},
		{"clipping a corner", Vt(8, -2), Vt(12, 2), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.IntersectsSegment(tt.p1, tt.p2); got != tt.want {
				t.Errorf("IntersectsSegment(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
		})
	}
}
