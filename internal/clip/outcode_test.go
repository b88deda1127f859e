package clip

import "testing"

func TestOutcode(t *testing.T) {
	r := NewRect(8, 7, 19, 13)

	tests := []struct {
		name string
		x, y int
		want Code
	}{
		{"inside", 10, 10, Inside},
		{"left", 2, 10, Left},
		{"on left border", 8, 10, Left},
		{"right", 25, 10, Right},
		{"on right border", 19, 10, Right},
		{"top", 10, 0, Top},
		{"on top border", 10, 7, Top},
		{"bottom", 10, 20, Bottom},
		{"on bottom border", 10, 13, Bottom},
		{"top left", 0, 0, Left | Top},
		{"bottom right corner", 19, 13, Right | Bottom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Outcode(r, tt.x, tt.y); got != tt.want {
				t.Errorf("Outcode(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRejectAccept(t *testing.T) {
	tests := []struct {
		name           string
		c0, c1         Code
		reject, accept bool
	}{
		{"both inside", Inside, Inside, false, true},
		{"one inside", Inside, Right, false, false},
		{"same band", Left, Left | Top, true, false},
		{"opposite bands", Left, Right, false, false},
		{"diagonal bands", Left | Bottom, Right | Top, false, false},
		{"shared top", Left | Top, Right | Top, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reject(tt.c0, tt.c1); got != tt.reject {
				t.Errorf("Reject(%v, %v) = %v, want %v", tt.c0, tt.c1, got, tt.reject)
			}
			if got := Accept(tt.c0, tt.c1); got != tt.accept {
				t.Errorf("Accept(%v, %v) = %v, want %v", tt.c0, tt.c1, got, tt.accept)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.ContainsOpen(5, 5) {
		t.Error("ContainsOpen(5, 5) = false, want true")
	}
	if r.ContainsOpen(0, 5) {
		t.Error("ContainsOpen(0, 5) = true, want false")
	}
	if !r.ContainsClosed(0, 5) {
		t.Error("ContainsClosed(0, 5) = false, want true")
	}
	if !r.ContainsClosed(10, 10) {
		t.Error("ContainsClosed(10, 10) = false, want true")
	}
	if r.ContainsClosed(11, 5) {
		t.Error("ContainsClosed(11, 5) = true, want false")
	}
}

func TestRect_Empty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", NewRect(0, 0, 10, 10), false},
		{"zero width", NewRect(5, 0, 5, 10), true},
		{"zero height", NewRect(0, 5, 10, 5), true},
		{"inverted", NewRect(10, 10, 0, 0), true},
		{"zero value", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCode_String(t *testing.T) {
	if got := Inside.String(); got != "inside" {
		t.Errorf("Inside.String() = %q", got)
	}
	if got := (Left | Bottom).String(); got != "left|bottom" {
		t.Errorf("(Left|Bottom).String() = %q", got)
	}
}
