// Package wire solves the crossed-wires puzzle: two wires leave the
// central port of a grid, and we score the points where they cross.
package wire

import (
	"log"
	"regexp"
	"strings"

	aoc "advent2019"

	"golang.org/x/exp/maps"
)

var tokenRx = regexp.MustCompile(`^([UDLR])(\d+)$`)

// ParsePath converts a comma-separated wire path like "R8,U5,L5,D3"
// into one displacement per token.
func ParsePath(line string) []aoc.Pt {
	var vecs []aoc.Pt
	for _, tok := range strings.Split(line, ",") {
		m := tokenRx.FindStringSubmatch(tok)
		if m == nil {
			log.Fatalf("bad path token: %q", tok)
		}
		mag := aoc.Int(m[2])
		switch m[1] {
		case "U":
			vecs = append(vecs, aoc.Pt{X: 0, Y: mag})
		case "D":
			vecs = append(vecs, aoc.Pt{X: 0, Y: -mag})
		case "L":
			vecs = append(vecs, aoc.Pt{X: -mag, Y: 0})
		case "R":
			vecs = append(vecs, aoc.Pt{X: mag, Y: 0})
		}
	}
	return vecs
}

// Trace walks the displacement sequence one unit cell at a time from
// the central port and returns every cell visited, in order. The
// central port itself is not part of the trace.
func Trace(vecs []aoc.Pt) []aoc.Pt {
	var cells []aoc.Pt
	var pos aoc.Pt
	for _, v := range vecs {
		var step aoc.Pt
		switch {
		case v.X > 0:
			step.X = 1
		case v.X < 0:
			step.X = -1
		case v.Y > 0:
			step.Y = 1
		case v.Y < 0:
			step.Y = -1
		}
		// Displacements are axis-aligned, so one of the terms is always zero.
		for n := aoc.AbsDiff(v.X, 0) + aoc.AbsDiff(v.Y, 0); n > 0; n-- {
			pos = pos.Add(step)
			cells = append(cells, pos)
		}
	}
	return cells
}

// Crossings returns the set of cells visited by both wires. The
// central port never appears in a trace, so it never counts; nor does
// a wire crossing itself.
func Crossings(a, b []aoc.Pt) map[aoc.Pt]bool {
	seen := make(map[aoc.Pt]bool, len(a))
	for _, p := range a {
		seen[p] = true
	}
	cross := make(map[aoc.Pt]bool)
	for _, p := range b {
		if seen[p] {
			cross[p] = true
		}
	}
	return cross
}

// ClosestDistance returns the minimum Manhattan distance from the
// central port to any crossing.
func ClosestDistance(crossings map[aoc.Pt]bool) int {
	pts := maps.Keys(crossings)
	if len(pts) == 0 {
		log.Fatalf("the wires never cross")
	}
	best := pts[0].MDist(aoc.Pt{})
	for _, p := range pts[1:] {
		if d := p.MDist(aoc.Pt{}); d < best {
			best = d
		}
	}
	return best
}

// FewestSteps returns the minimum combined number of steps the two
// wires take to reach a crossing. Steps are 1-indexed; if a wire
// visits a cell more than once, the first visit counts.
func FewestSteps(crossings map[aoc.Pt]bool, a, b []aoc.Pt) int {
	stepsA := firstVisits(crossings, a)
	stepsB := firstVisits(crossings, b)
	best := -1
	for p := range crossings {
		if total := aoc.Sum(stepsA[p], stepsB[p]); best == -1 || total < best {
			best = total
		}
	}
	if best == -1 {
		log.Fatalf("the wires never cross")
	}
	return best
}

func firstVisits(crossings map[aoc.Pt]bool, trace []aoc.Pt) map[aoc.Pt]int {
	steps := make(map[aoc.Pt]int, len(crossings))
	for i, p := range trace {
		if !crossings[p] {
			continue
		}
		if _, ok := steps[p]; !ok {
			steps[p] = i + 1
		}
	}
	return steps
}

// Render draws the traced wires on a panel the way the puzzle prose
// does: 'o' marks the central port, 'X' marks crossings, '+' marks
// cells covered by a wire and '.' everything else. Row 0 is the top
// of the panel, so y grows upward.
func Render(a, b []aoc.Pt) aoc.Grid[byte] {
	lo, hi := bounds(a, b)
	g := aoc.MakeGrid[byte](hi.X-lo.X+1, hi.Y-lo.Y+1)
	for _, row := range g {
		for x := range row {
			row[x] = '.'
		}
	}
	cell := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: p.X - lo.X, Y: hi.Y - p.Y}
	}
	for _, trace := range [][]aoc.Pt{a, b} {
		for _, p := range trace {
			g.Set(cell(p), '+')
		}
	}
	for p := range Crossings(a, b) {
		g.Set(cell(p), 'X')
	}
	g.Set(cell(aoc.Pt{}), 'o')
	return g
}

// bounds returns the corners of the smallest box holding the central
// port and every traced cell.
func bounds(traces ...[]aoc.Pt) (lo, hi aoc.Pt) {
	for _, trace := range traces {
		for _, p := range trace {
			if p.X < lo.X {
				lo.X = p.X
			}
			if p.Y < lo.Y {
				lo.Y = p.Y
			}
			if p.X > hi.X {
				hi.X = p.X
			}
			if p.Y > hi.Y {
				hi.Y = p.Y
			}
		}
	}
	return lo, hi
}
