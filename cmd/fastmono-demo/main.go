package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/he-la/fastmono"
)

// Demo of triangulation: reads newline-separated "x y" pairs from stdin, one
// polygon (no blank-line separator — fastmono does not support multiple
// polygons or holes), triangulates it, and writes the resulting triangle
// index triples to stdout, one triangle per line.
//
// The polygon must be simple and wind clockwise. Neither requirement is
// validated beyond what Polygon.Indices itself checks.
func main() {
	coords := readCoords(os.Stdin)

	poly, err := fastmono.New[float64, uint32](coords)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fastmono-demo:", err)
		os.Exit(1)
	}

	indices, err := poly.Indices()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fastmono-demo:", err)
		os.Exit(1)
	}

	for i := 0; i+3 <= len(indices); i += 3 {
		fmt.Printf("%d %d %d\n", indices[i], indices[i+1], indices[i+2])
	}
}

func readCoords(in *os.File) []float64 {
	coords := []float64{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		x, y := parsePoint(line)
		coords = append(coords, x, y)
	}
	return coords
}

func parsePoint(line string) (x, y float64) {
	parts := strings.Fields(line)
	x, _ = strconv.ParseFloat(parts[0], 64)
	y, _ = strconv.ParseFloat(parts[1], 64)
	return x, y
}
