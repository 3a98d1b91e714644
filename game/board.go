package game

import (
	"fmt"
	"io"
)

// BoardSource bundles the readers for the three board assets: the
// ordinary-player graph, the Boeg graph (a superset including the
// special-only edges) and the location list.
type BoardSource struct {
	PlayerGraph io.Reader
	BoegGraph   io.Reader
	Locations   io.Reader
}

// BoardInfo is the static, read-once view of the board: both graphs
// over the shared vertex set, the location table in insertion and
// name-sorted order, and the four precomputed all-pairs tables.
// Immutable after construction.
type BoardInfo struct {
	GraphPlayer *Graph
	GraphBoeg   *Graph

	Locations []Location
	sorted    []Location

	DistPlayer Matrix
	ParPlayer  Matrix
	DistBoeg   Matrix
	ParBoeg    Matrix
}

// NewBoardInfo loads both graphs and the location table, verifies the
// shared vertex set and computes the all-pairs shortest-path tables.
func NewBoardInfo(src BoardSource) (*BoardInfo, error) {
	graphPlayer, err := ParseGraph(src.PlayerGraph)
	if err != nil {
		return nil, fmt.Errorf("player graph: %w", err)
	}
	graphBoeg, err := ParseGraph(src.BoegGraph)
	if err != nil {
		return nil, fmt.Errorf("boeg graph: %w", err)
	}
	if graphPlayer.NumVertices() != graphBoeg.NumVertices() {
		return nil, fmt.Errorf("graphs disagree on vertex count: player %d, boeg %d",
			graphPlayer.NumVertices(), graphBoeg.NumVertices())
	}
	locations, err := ParseLocations(src.Locations)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	if len(locations) != graphPlayer.NumVertices() {
		return nil, fmt.Errorf("%d locations for %d vertices",
			len(locations), graphPlayer.NumVertices())
	}

	b := &BoardInfo{
		GraphPlayer: graphPlayer,
		GraphBoeg:   graphBoeg,
		Locations:   locations,
		sorted:      sortedByName(locations),
	}
	b.DistPlayer, b.ParPlayer = graphPlayer.AllPairsShortestPaths(false)
	b.DistBoeg, b.ParBoeg = graphBoeg.AllPairsShortestPaths(true)
	return b, nil
}

// NumPositions returns the shared vertex count of both graphs.
func (b *BoardInfo) NumPositions() int { return b.GraphPlayer.NumVertices() }

// Name returns the location name of a vertex.
func (b *BoardInfo) Name(v int) string { return b.Locations[v].Name }

// FindLocation resolves a location name to its vertex index, falling
// back to the most similar candidate seen during the binary search when
// there is no exact match. Callers must tolerate an imprecise result.
func (b *BoardInfo) FindLocation(name string) int {
	return searchLocations(b.sorted, name)
}

// Path reconstructs the shortest path from source to target along the
// given parent table, source first. Both endpoints must lie in the same
// component; asking for a path to an unreachable vertex is a
// programming error.
func (b *BoardInfo) Path(parents Matrix, source, target int) []int {
	var reversed []int
	for v := target; v != source; v = parents.At(source, v) {
		if v == -1 {
			panic(fmt.Sprintf("game: no path from %d to %d", source, target))
		}
		reversed = append(reversed, v)
	}
	path := make([]int, 0, len(reversed)+1)
	path = append(path, source)
	for i := len(reversed) - 1; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}

// FollowPath walks steps edges from source toward target along the
// precomputed parent chain and returns the vertex it lands on; the walk
// stops at the target if the path is shorter than steps.
func (b *BoardInfo) FollowPath(parents Matrix, source, target, steps int) int {
	path := b.Path(parents, source, target)
	if steps >= len(path)-1 {
		return target
	}
	return path[steps]
}
