package game

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Location is one named board position. The coordinates are used only
// by presentation layers; the engine cares about the vertex index.
type Location struct {
	Name  string
	X, Y  float64
	Index int
}

// ParseLocations reads one location per line in the form "x y name",
// where the name is the remainder of the line and may contain spaces.
// The vertex index is the insertion order.
func ParseLocations(r io.Reader) ([]Location, error) {
	sc := bufio.NewScanner(r)
	var locations []Location
	seen := make(map[string]bool)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		parts := strings.SplitN(text, " ", 3)
		if len(parts) != 3 {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("malformed location %q", text)}
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("malformed coordinates in %q", text)}
		}
		name := strings.TrimSpace(parts[2])
		if name == "" || len(name) > MaxLocationNameLen {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid location name %q", name)}
		}
		if seen[name] {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("duplicate location %q", name)}
		}
		seen[name] = true
		locations = append(locations, Location{
			Name:  name,
			X:     x,
			Y:     y,
			Index: len(locations),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading locations: %w", err)
	}
	return locations, nil
}

// sortedByName returns a name-sorted copy used for lookup.
func sortedByName(locations []Location) []Location {
	sorted := make([]Location, len(locations))
	copy(sorted, locations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// similarity counts positions at which the two names carry the same
// byte, over their common prefix length.
func similarity(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sim := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			sim++
		}
	}
	return sim
}

// searchLocations binary-searches the name-sorted view. An exact match
// returns its vertex index. Otherwise it returns the index of the most
// similar candidate probed during the search; this is a fuzzy fallback
// for misspelled interactive input, not a guaranteed nearest match.
func searchLocations(sorted []Location, name string) int {
	lo, hi := 0, len(sorted)-1
	bestIndex, bestSim := 0, 0
	for lo <= hi {
		middle := (lo + hi) / 2
		current := sorted[middle]
		switch cmp := strings.Compare(name, current.Name); {
		case cmp < 0:
			hi = middle - 1
		case cmp > 0:
			lo = middle + 1
		default:
			return current.Index
		}
		if sim := similarity(name, current.Name); sim >= bestSim {
			bestSim = sim
			bestIndex = current.Index
		}
	}
	return bestIndex
}
