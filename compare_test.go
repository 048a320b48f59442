package polyedit

import (
	"slices"
	"testing"
)

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b []Vertex
		want int
	}{
		{"equal", pts(0, 0, 10, 0), pts(0, 0, 10, 0), 0},
		{"fewer points first", pts(9, 9, 9, 9), pts(0, 0, 0, 0, 0, 0), -1},
		{"more points last", pts(0, 0, 0, 0, 0, 0), pts(9, 9, 9, 9), 1},
		{"x decides", pts(0, 0, 5, 9), pts(0, 0, 6, 0), -1},
		{"y decides", pts(0, 0, 5, 1), pts(0, 0, 5, 0), 1},
		{"earlier vertex decides", pts(1, 0, 0, 0), pts(0, 0, 9, 9), 1},
		{"reversed is not equal", pts(0, 0, 10, 0), pts(10, 0, 0, 0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewPolylineFrom(tt.a), NewPolylineFrom(tt.b)
			if got := sign(Compare(a, b)); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := sign(Compare(b, a)); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareIgnoresAttributes(t *testing.T) {
	a := NewPolylineFrom(pts(0, 0, 10, 0))
	b := NewPolylineFrom(pts(0, 0, 10, 0))
	b.SetWidth(20)
	b.SetFill(FillShape)
	if !Equal(a, b) {
		t.Error("Equal() = false for polylines differing only in width and fill")
	}
}

func TestCompareRotatedNotEqual(t *testing.T) {
	a := NewPolylineFrom(pts(0, 0, 10, 0, 10, 10))
	b := a.Clone()
	b.Rotate(Vt(5, 5), true)
	if Equal(a, b) {
		t.Error("Equal() = true for a rotated copy")
	}
}

func TestSortWithCompare(t *testing.T) {
	items := []*Polyline{
		NewPolylineFrom(pts(0, 0, 1, 1, 2, 2)),
		NewPolylineFrom(pts(5, 0, 1, 1)),
		NewPolylineFrom(pts(0, 0, 1, 1)),
	}
	slices.SortFunc(items, Compare)

	want := [][]Vertex{pts(0, 0, 1, 1), pts(5, 0, 1, 1), pts(0, 0, 1, 1, 2, 2)}
	for i, p := range items {
		if !slices.Equal(p.Points(), want[i]) {
			t.Errorf("sorted[%d] = %v, want %v", i, p.Points(), want[i])
		}
	}
}
