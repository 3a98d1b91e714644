package game

import "fmt"

// Matrix is a square, row-major table of ints used for the all-pairs
// distance and parent data. It replaces manual offset arithmetic with
// bounds-checked accessors while preserving row-major layout.
type Matrix struct {
	n     int
	cells []int
}

func NewMatrix(n int) Matrix {
	return Matrix{n: n, cells: make([]int, n*n)}
}

// Size returns the number of rows (and columns).
func (m Matrix) Size() int { return m.n }

// At returns the entry for row u, column v.
func (m Matrix) At(u, v int) int {
	m.check(u, v)
	return m.cells[u*m.n+v]
}

// Set writes the entry for row u, column v.
func (m Matrix) Set(u, v, value int) {
	m.check(u, v)
	m.cells[u*m.n+v] = value
}

// Row returns the mutable slice backing row u.
func (m Matrix) Row(u int) []int {
	m.check(u, 0)
	return m.cells[u*m.n : (u+1)*m.n]
}

func (m Matrix) check(u, v int) {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		panic(fmt.Sprintf("game: matrix index (%d,%d) out of range for size %d", u, v, m.n))
	}
}
