// Command wires reads two wire paths from stdin and reports the
// crossing closest to the central port, by Manhattan distance and by
// combined wire length.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	aoc "advent2019"
	"advent2019/wire"
)

var flagDebug = flag.Bool("debug", false, "print the traced panel before the answers")

func main() {
	flag.Parse()

	var traces [][]aoc.Pt
	s := bufio.NewScanner(os.Stdin)
	for s.Scan() {
		traces = append(traces, wire.Trace(wire.ParsePath(s.Text())))
	}
	aoc.MustDo(s.Err())
	if len(traces) != 2 {
		log.Fatalf("want 2 wire paths, got %d", len(traces))
	}

	if *flagDebug {
		for _, row := range wire.Render(traces[0], traces[1]) {
			fmt.Println(string(row))
		}
	}

	crossings := wire.Crossings(traces[0], traces[1])
	fmt.Printf("Part 1: distance: %d\n", wire.ClosestDistance(crossings))
	fmt.Printf("Part 2: steps: %d\n", wire.FewestSteps(crossings, traces[0], traces[1]))
}
