package wire

import (
	"slices"
	"testing"

	aoc "advent2019"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		tok  string
		want aoc.Pt
	}{
		{"R8", aoc.Pt{X: 8, Y: 0}},
		{"U5", aoc.Pt{X: 0, Y: 5}},
		{"L5", aoc.Pt{X: -5, Y: 0}},
		{"D3", aoc.Pt{X: 0, Y: -3}},
	}
	for _, tt := range tests {
		got := ParsePath(tt.tok)
		if len(got) != 1 || got[0] != tt.want {
			t.Errorf("ParsePath(%q) = %v, want [%v]", tt.tok, got, tt.want)
		}
	}

	got := ParsePath("R8,U5,L5,D3")
	want := []aoc.Pt{{X: 8, Y: 0}, {X: 0, Y: 5}, {X: -5, Y: 0}, {X: 0, Y: -3}}
	if !slices.Equal(got, want) {
		t.Errorf("ParsePath(R8,U5,L5,D3) = %v, want %v", got, want)
	}
}

func TestTrace(t *testing.T) {
	got := Trace(ParsePath("R8,U5,L5,D3"))
	want := []aoc.Pt{
		{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
		{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 7, Y: 0}, {X: 8, Y: 0},
		{X: 8, Y: 1}, {X: 8, Y: 2}, {X: 8, Y: 3}, {X: 8, Y: 4},
		{X: 8, Y: 5},
		{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5},
		{X: 3, Y: 5},
		{X: 3, Y: 4}, {X: 3, Y: 3}, {X: 3, Y: 2},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Trace = %v, want %v", got, want)
	}
}

func TestClosestCrossing(t *testing.T) {
	tests := []struct {
		a, b      string
		wantDist  int
		wantSteps int
	}{
		{
			a:         "R8,U5,L5,D3",
			b:         "U7,R6,D4,L4",
			wantDist:  6,
			wantSteps: 30,
		},
		{
			a:         "R75,D30,R83,U83,L12,D49,R71,U7,L72",
			b:         "U62,R66,U55,R34,D71,R55,D58,R83",
			wantDist:  159,
			wantSteps: 610,
		},
		{
			a:         "R98,U47,R26,D63,R33,U87,L62,D20,R33,U53,R51",
			b:         "U98,R91,D20,R16,D67,R40,U7,R15,U6,R7",
			wantDist:  135,
			wantSteps: 410,
		},
	}
	for _, tt := range tests {
		a := Trace(ParsePath(tt.a))
		b := Trace(ParsePath(tt.b))
		crossings := Crossings(a, b)
		if got := ClosestDistance(crossings); got != tt.wantDist {
			t.Errorf("ClosestDistance(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.wantDist)
		}
		if got := FewestSteps(crossings, a, b); got != tt.wantSteps {
			t.Errorf("FewestSteps(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.wantSteps)
		}
	}
}

// A wire revisiting a cell keeps its first step count.
func TestFirstVisitWins(t *testing.T) {
	// Wire a loops back over (2,1): first at step 3, again at step 9.
	a := Trace(ParsePath("R2,U2,L2,D1,R2"))
	b := Trace(ParsePath("U1,R2"))
	crossings := Crossings(a, b)
	if len(crossings) != 3 {
		t.Fatalf("Crossings = %v, want 3 cells", crossings)
	}
	// (2,1) costs 3+3=6 counting a's first visit; the other crossings
	// cost 8 and 10, and a's second pass would make it 12.
	if got, want := FewestSteps(crossings, a, b), 6; got != want {
		t.Errorf("FewestSteps = %v, want %v", got, want)
	}
	if got, want := ClosestDistance(crossings), 1; got != want {
		t.Errorf("ClosestDistance = %v, want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	a := Trace(ParsePath("R8,U5,L5,D3"))
	b := Trace(ParsePath("U7,R6,D4,L4"))

	g := Render(a, b)
	if want := (aoc.Pt{X: 9, Y: 8}); g.Size() != want {
		t.Fatalf("Render size = %v, want %v", g.Size(), want)
	}
	// Row 0 is the top, so the central port sits on the bottom row.
	if got := g.At(aoc.Pt{X: 0, Y: 7}); got != 'o' {
		t.Errorf("central port = %q, want 'o'", got)
	}
	for _, p := range []aoc.Pt{{X: 3, Y: 4}, {X: 6, Y: 2}} {
		if got := g.At(p); got != 'X' {
			t.Errorf("cell %v = %q, want 'X'", p, got)
		}
	}

	// The panel only depends on the wires, not on their order.
	if g.Hash() != Render(b, a).Hash() {
		t.Errorf("Render(a, b) and Render(b, a) differ")
	}
}
