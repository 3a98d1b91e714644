package game

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// GraphKind distinguishes directed from undirected boards.
type GraphKind int

const (
	Directed GraphKind = iota
	Undirected
)

// Arc is a single directed adjacency entry. Special arcs may only be
// traversed by whoever holds the Boeg role.
type Arc struct {
	To      int
	Special bool
}

// Graph is an unweighted adjacency-list graph over board positions.
// Boards are small (tens of vertices), so all algorithms favor
// simplicity over asymptotics.
type Graph struct {
	Kind  GraphKind
	adj   [][]Arc
	edges int
}

// ParseError reports malformed board asset data. Board files are trusted
// local assets, but parse failures surface as errors so callers and
// tests can recover.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func NewGraph(vertices int, kind GraphKind) *Graph {
	return &Graph{
		Kind: kind,
		adj:  make([][]Arc, vertices),
	}
}

// NumVertices returns the number of board positions.
func (g *Graph) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of edges inserted; an undirected edge
// counts once.
func (g *Graph) NumEdges() int { return g.edges }

// Neighbors returns the adjacency list of v. The returned slice is
// owned by the graph and must not be mutated.
func (g *Graph) Neighbors(v int) []Arc { return g.adj[v] }

// InsertEdge adds a single directed arc from one vertex to another.
func (g *Graph) InsertEdge(from, to int, special bool) {
	g.adj[from] = append(g.adj[from], Arc{To: to, Special: special})
}

// AddEdge inserts an edge honoring the graph kind: undirected graphs
// get both arcs.
func (g *Graph) AddEdge(from, to int, special bool) {
	g.InsertEdge(from, to, special)
	if g.Kind == Undirected {
		g.InsertEdge(to, from, special)
	}
	g.edges++
}

// ParseGraph reads a graph description of the form
//
//	u 57
//	0 1
//	3 41 s
//
// where the header gives the kind tag ('d' or 'u') and vertex count,
// and each following line is one edge, optionally flagged 's' for
// Boeg-only traversal.
func ParseGraph(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	line := 0

	next := func() (string, bool) {
		for sc.Scan() {
			line++
			text := strings.TrimSpace(sc.Text())
			if text != "" {
				return text, true
			}
		}
		return "", false
	}

	header, ok := next()
	if !ok {
		return nil, &ParseError{Line: line, Msg: "missing graph header"}
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("malformed header %q", header)}
	}
	var kind GraphKind
	switch fields[0] {
	case "d":
		kind = Directed
	case "u":
		kind = Undirected
	default:
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("unrecognized graph kind %q", fields[0])}
	}
	vertices, err := strconv.Atoi(fields[1])
	if err != nil || vertices <= 0 {
		return nil, &ParseError{Line: line, Msg: fmt.Sprintf("invalid vertex count %q", fields[1])}
	}

	g := NewGraph(vertices, kind)
	for {
		text, ok := next()
		if !ok {
			break
		}
		fields = strings.Fields(text)
		special := false
		if len(fields) == 3 && fields[2] == "s" {
			special = true
		} else if len(fields) != 2 {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("malformed edge %q", text)}
		}
		from, err1 := strconv.Atoi(fields[0])
		to, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("malformed edge %q", text)}
		}
		if from < 0 || from >= vertices || to < 0 || to >= vertices {
			return nil, &ParseError{Line: line, Msg: fmt.Sprintf("edge %d-%d out of range", from, to)}
		}
		g.AddEdge(from, to, special)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading graph: %w", err)
	}
	return g, nil
}

// ShortestPathsFrom runs a BFS from source and returns distance and
// parent arrays. Unreachable vertices get distance -1; the source (and
// every unreachable vertex) gets parent -1. Special arcs are skipped
// unless allowSpecial is set.
func (g *Graph) ShortestPathsFrom(source int, allowSpecial bool) (dist, parent []int) {
	dist = make([]int, len(g.adj))
	parent = make([]int, len(g.adj))
	g.shortestPathsInto(source, allowSpecial, dist, parent)
	return dist, parent
}

func (g *Graph) shortestPathsInto(source int, allowSpecial bool, dist, parent []int) {
	visited := make([]bool, len(g.adj))
	for i := range dist {
		dist[i] = -1
		parent[i] = -1
	}
	visited[source] = true
	dist[source] = 0

	queue := []int{source}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, a := range g.adj[current] {
			if a.Special && !allowSpecial {
				continue
			}
			if visited[a.To] {
				continue
			}
			visited[a.To] = true
			dist[a.To] = dist[current] + 1
			parent[a.To] = current
			queue = append(queue, a.To)
		}
	}
}

// AllPairsShortestPaths runs the single-source BFS once per vertex and
// returns the flattened V×V distance and parent tables. The per-source
// searches are independent, so they fan out on goroutines writing
// disjoint matrix rows.
func (g *Graph) AllPairsShortestPaths(allowSpecial bool) (dist, parent Matrix) {
	n := len(g.adj)
	dist = NewMatrix(n)
	parent = NewMatrix(n)

	var wg sync.WaitGroup
	for source := 0; source < n; source++ {
		wg.Add(1)
		go func(source int) {
			defer wg.Done()
			g.shortestPathsInto(source, allowSpecial, dist.Row(source), parent.Row(source))
		}(source)
	}
	wg.Wait()
	return dist, parent
}

// Workspace holds the scratch buffers for the exact-distance searches.
// It is owned by a single GameState and fully reinitialized at the
// start of every query; reuse without reset is the bug class the reset
// here guards against.
type Workspace struct {
	visited []bool
	depth   []int
}

func NewWorkspace(vertices int) *Workspace {
	return &Workspace{
		visited: make([]bool, vertices),
		depth:   make([]int, vertices),
	}
}

func (ws *Workspace) reset(source int) {
	for i := range ws.visited {
		ws.visited[i] = false
		ws.depth[i] = -1
	}
	ws.depth[source] = 0
}

// ReachSet is the insertion-ordered set of vertices reachable at an
// exact distance. Iteration order is first-found order, which the
// strategies use for tie-breaking.
type ReachSet = orderedmap.OrderedMap[int, struct{}]

// ReachableExactly returns every vertex reachable from source via some
// simple path of length exactly steps. The DFS tracks an on-stack
// visited flag cleared on backtrack, so a vertex may be revisited on a
// different path; it never expands past the requested depth. steps == 0
// yields only the source itself.
func (g *Graph) ReachableExactly(ws *Workspace, source, steps int, allowSpecial bool) *ReachSet {
	if len(ws.visited) != len(g.adj) {
		panic("game: workspace sized for a different graph")
	}
	if steps < 0 {
		panic("game: negative step count")
	}
	ws.reset(source)
	out := orderedmap.New[int, struct{}]()
	g.reachableExactly(ws, source, steps, allowSpecial, out)
	return out
}

func (g *Graph) reachableExactly(ws *Workspace, u, steps int, allowSpecial bool, out *ReachSet) {
	ws.visited[u] = true
	if ws.depth[u] == steps {
		out.Set(u, struct{}{})
		ws.visited[u] = false
		return
	}
	for _, a := range g.adj[u] {
		if a.Special && !allowSpecial {
			continue
		}
		if ws.visited[a.To] {
			continue
		}
		ws.depth[a.To] = ws.depth[u] + 1
		if ws.depth[a.To] <= steps {
			g.reachableExactly(ws, a.To, steps, allowSpecial, out)
		}
	}
	ws.visited[u] = false
}

// HasPathExactly reports whether a simple path of length exactly steps
// exists from source to target. Dice movement consumes the whole roll
// as path length, so this is a path enumeration, not a distance check;
// it short-circuits on the first full-length path found.
func (g *Graph) HasPathExactly(ws *Workspace, source, target, steps int, allowSpecial bool) bool {
	if len(ws.visited) != len(g.adj) {
		panic("game: workspace sized for a different graph")
	}
	if steps < 0 {
		panic("game: negative step count")
	}
	ws.reset(source)
	found := false
	g.hasPathExactly(ws, source, target, steps, allowSpecial, &found)
	return found
}

func (g *Graph) hasPathExactly(ws *Workspace, u, target, steps int, allowSpecial bool, found *bool) {
	if *found {
		return
	}
	ws.visited[u] = true
	if u == target {
		*found = ws.depth[u] == steps
		ws.visited[u] = false
		return
	}
	for _, a := range g.adj[u] {
		if a.Special && !allowSpecial {
			continue
		}
		if ws.visited[a.To] {
			continue
		}
		ws.depth[a.To] = ws.depth[u] + 1
		if a.To == target || ws.depth[a.To] < steps {
			g.hasPathExactly(ws, a.To, target, steps, allowSpecial, found)
		}
	}
	ws.visited[u] = false
}
