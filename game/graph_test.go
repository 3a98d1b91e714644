package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// path graph 0-1-2-3-4
func pathGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := ParseGraph(strings.NewReader(`u 5
0 1
1 2
2 3
3 4
`))
	require.NoError(t, err)
	return g
}

// diamond: two routes of length 2 between 0 and 3
func diamondGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(4, Undirected)
	g.AddEdge(0, 1, false)
	g.AddEdge(0, 2, false)
	g.AddEdge(1, 3, false)
	g.AddEdge(2, 3, false)
	return g
}

func TestParseGraph(t *testing.T) {
	t.Run("undirected with special edge", func(t *testing.T) {
		g, err := ParseGraph(strings.NewReader("u 3\n0 1\n1 2 s\n"))
		require.NoError(t, err)
		require.Equal(t, 3, g.NumVertices())
		require.Equal(t, 2, g.NumEdges())
		require.Equal(t, []Arc{{To: 1, Special: false}}, g.Neighbors(0))
		require.Equal(t, []Arc{{To: 1, Special: true}}, g.Neighbors(2),
			"undirected parse should insert the reverse arc with the same flag")
	})

	t.Run("directed inserts a single arc", func(t *testing.T) {
		g, err := ParseGraph(strings.NewReader("d 2\n0 1\n"))
		require.NoError(t, err)
		require.Len(t, g.Neighbors(0), 1)
		require.Empty(t, g.Neighbors(1))
	})

	t.Run("unrecognized kind tag", func(t *testing.T) {
		_, err := ParseGraph(strings.NewReader("x 3\n0 1\n"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Equal(t, 1, parseErr.Line)
	})

	t.Run("edge out of range", func(t *testing.T) {
		_, err := ParseGraph(strings.NewReader("u 3\n0 3\n"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Equal(t, 2, parseErr.Line)
	})

	t.Run("malformed edge", func(t *testing.T) {
		_, err := ParseGraph(strings.NewReader("u 3\n0 one\n"))
		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseGraph(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestShortestPathsFrom(t *testing.T) {
	t.Run("distances and parents on a path", func(t *testing.T) {
		g := pathGraph(t)
		dist, parent := g.ShortestPathsFrom(0, false)
		require.Equal(t, []int{0, 1, 2, 3, 4}, dist)
		require.Equal(t, -1, parent[0], "BFS root has no parent")
		for v := 1; v < 5; v++ {
			require.Equal(t, v-1, parent[v])
		}
	})

	t.Run("unreachable vertices keep the -1 sentinel", func(t *testing.T) {
		g := NewGraph(3, Undirected)
		g.AddEdge(0, 1, false)
		dist, parent := g.ShortestPathsFrom(0, false)
		require.Equal(t, []int{0, 1, -1}, dist)
		require.Equal(t, -1, parent[2])
	})

	t.Run("special edges are skipped for ordinary players", func(t *testing.T) {
		g := NewGraph(3, Undirected)
		g.AddEdge(0, 1, false)
		g.AddEdge(1, 2, false)
		g.AddEdge(0, 2, true) // shortcut for the Boeg only
		dist, _ := g.ShortestPathsFrom(0, false)
		require.Equal(t, 2, dist[2])
		dist, _ = g.ShortestPathsFrom(0, true)
		require.Equal(t, 1, dist[2])
	})

	t.Run("matches brute force on the default board", func(t *testing.T) {
		board, err := DefaultBoard()
		require.NoError(t, err)
		g := board.GraphPlayer
		n := g.NumVertices()

		// Floyd-Warshall as the independent oracle.
		const inf = 1 << 20
		brute := make([][]int, n)
		for u := range brute {
			brute[u] = make([]int, n)
			for v := range brute[u] {
				if u != v {
					brute[u][v] = inf
				}
			}
			for _, a := range g.Neighbors(u) {
				brute[u][a.To] = 1
			}
		}
		for k := 0; k < n; k++ {
			for u := 0; u < n; u++ {
				for v := 0; v < n; v++ {
					if brute[u][k]+brute[k][v] < brute[u][v] {
						brute[u][v] = brute[u][k] + brute[k][v]
					}
				}
			}
		}

		for u := 0; u < n; u++ {
			dist, _ := g.ShortestPathsFrom(u, false)
			for v := 0; v < n; v++ {
				want := brute[u][v]
				if want == inf {
					want = -1
				}
				require.Equal(t, want, dist[v], "distance %d->%d", u, v)
			}
		}
	})
}

func TestAllPairsShortestPaths(t *testing.T) {
	t.Run("rows agree with single-source BFS", func(t *testing.T) {
		g := diamondGraph(t)
		dist, parent := g.AllPairsShortestPaths(false)
		for source := 0; source < g.NumVertices(); source++ {
			wantDist, wantParent := g.ShortestPathsFrom(source, false)
			require.Equal(t, wantDist, dist.Row(source))
			require.Equal(t, wantParent, parent.Row(source))
		}
	})

	t.Run("symmetric for undirected graphs", func(t *testing.T) {
		board, err := DefaultBoard()
		require.NoError(t, err)
		n := board.NumPositions()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				require.Equal(t, board.DistBoeg.At(u, v), board.DistBoeg.At(v, u))
			}
		}
	})
}

func reachKeys(set *ReachSet) []int {
	var keys []int
	for pair := set.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func TestReachableExactly(t *testing.T) {
	t.Run("zero steps yields only the source", func(t *testing.T) {
		g := pathGraph(t)
		ws := NewWorkspace(g.NumVertices())
		require.Equal(t, []int{2}, reachKeys(g.ReachableExactly(ws, 2, 0, false)))
	})

	t.Run("exact distance on a path", func(t *testing.T) {
		g := pathGraph(t)
		ws := NewWorkspace(g.NumVertices())
		require.Equal(t, []int{2}, reachKeys(g.ReachableExactly(ws, 0, 2, false)))
		require.Empty(t, reachKeys(g.ReachableExactly(ws, 0, 5, false)),
			"no simple path longer than the graph")
	})

	t.Run("revisits via distinct simple paths, insertion order kept", func(t *testing.T) {
		g := diamondGraph(t)
		ws := NewWorkspace(g.NumVertices())
		require.Equal(t, []int{3}, reachKeys(g.ReachableExactly(ws, 0, 2, false)))
		// Length 3 walks: 0-1-3-2 and 0-2-3-1, discovered in adjacency
		// order.
		require.Equal(t, []int{2, 1}, reachKeys(g.ReachableExactly(ws, 0, 3, false)))
	})

	t.Run("special edges honored", func(t *testing.T) {
		g := NewGraph(3, Undirected)
		g.AddEdge(0, 1, false)
		g.AddEdge(1, 2, false)
		g.AddEdge(0, 2, true)
		ws := NewWorkspace(3)
		require.Equal(t, []int{2}, reachKeys(g.ReachableExactly(ws, 0, 2, false)))
		require.Equal(t, []int{1}, reachKeys(g.ReachableExactly(ws, 0, 1, false)),
			"the shortcut must stay invisible to ordinary players")
		require.Equal(t, []int{1, 2}, reachKeys(g.ReachableExactly(ws, 0, 1, true)))
	})

	t.Run("workspace reuse leaves no residue", func(t *testing.T) {
		g := diamondGraph(t)
		shared := NewWorkspace(g.NumVertices())
		first := reachKeys(g.ReachableExactly(shared, 0, 3, false))
		second := reachKeys(g.ReachableExactly(shared, 0, 3, false))
		fresh := reachKeys(g.ReachableExactly(NewWorkspace(g.NumVertices()), 0, 3, false))
		require.Equal(t, fresh, first)
		require.Equal(t, fresh, second, "repeated query on a shared workspace must match a fresh one")
	})
}

// enumerateSimplePaths counts whether some simple path of the exact
// length exists, by brute force.
func enumerateSimplePaths(g *Graph, u, target, remaining int, visited []bool) bool {
	if u == target {
		return remaining == 0
	}
	if remaining == 0 {
		return false
	}
	visited[u] = true
	defer func() { visited[u] = false }()
	for _, a := range g.Neighbors(u) {
		if visited[a.To] {
			continue
		}
		if enumerateSimplePaths(g, a.To, target, remaining-1, visited) {
			return true
		}
	}
	return false
}

func TestHasPathExactly(t *testing.T) {
	t.Run("agrees with exhaustive enumeration", func(t *testing.T) {
		// Petersen-ish small fixture with multiple cycles.
		g := NewGraph(8, Undirected)
		edges := [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, {2, 4}, {4, 5}, {5, 6}, {6, 2}, {5, 7},
		}
		for _, e := range edges {
			g.AddEdge(e[0], e[1], false)
		}
		ws := NewWorkspace(8)
		for source := 0; source < 8; source++ {
			for target := 0; target < 8; target++ {
				for steps := 0; steps <= 6; steps++ {
					want := enumerateSimplePaths(g, source, target, steps, make([]bool, 8))
					got := g.HasPathExactly(ws, source, target, steps, false)
					require.Equal(t, want, got, "source=%d target=%d steps=%d", source, target, steps)
				}
			}
		}
	})

	t.Run("dice semantics: no overshoot, no stopping early", func(t *testing.T) {
		g := pathGraph(t)
		ws := NewWorkspace(g.NumVertices())
		require.True(t, g.HasPathExactly(ws, 0, 3, 3, false))
		require.False(t, g.HasPathExactly(ws, 0, 3, 2, false))
		require.False(t, g.HasPathExactly(ws, 0, 3, 4, false),
			"a path graph has no longer simple path to the target")
	})
}

func TestMatrix(t *testing.T) {
	m := NewMatrix(3)
	m.Set(1, 2, 7)
	require.Equal(t, 7, m.At(1, 2))
	require.Equal(t, []int{0, 0, 7}, m.Row(1))
	require.Panics(t, func() { m.At(3, 0) })
	require.Panics(t, func() { m.At(0, -1) })
}
