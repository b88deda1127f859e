package lineclip

import "testing"

func TestResult_String(t *testing.T) {
	s := Seg(Pt(15, 5), Pt(21, 3))

	tests := []struct {
		name string
		r    Result
		want string
	}{
		{"outside", Result{Segment: s, Class: Outside}, "(15; 5) - (21; 3); is outside"},
		{"inside", Result{Segment: s, Class: FullyInside}, "(15; 5) - (21; 3)"},
		{"clipped", Result{Segment: s, Class: ClippedToBoundary}, "(15; 5) - (21; 3)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassification_String(t *testing.T) {
	tests := []struct {
		c    Classification
		want string
	}{
		{Unclassified, "unclassified"},
		{FullyInside, "fully inside"},
		{ClippedToBoundary, "clipped to boundary"},
		{Outside, "outside"},
		{Classification(42), "Classification(42)"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBoundarySet(t *testing.T) {
	var s BoundarySet
	if s.Len() != 0 || s.String() != "{}" {
		t.Errorf("empty set: Len() = %d, String() = %q", s.Len(), s.String())
	}

	s = s.Add(Bottom).Add(Left).Add(Left)
	if !s.Has(Left) || !s.Has(Bottom) || s.Has(Top) || s.Has(Right) {
		t.Errorf("unexpected membership in %v", s)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.String(); got != "{left, bottom}" {
		t.Errorf("String() = %q, want {left, bottom}", got)
	}
}
