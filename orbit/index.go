// SPDX-License-Identifier: MIT

// Package orbit - uniform grid index for near-duplicate points.

package orbit

import (
	"math"
	"math/cmplx"
)

type cell [2]int64

type entry struct {
	id NodeID
	p  complex128
}

// pointIndex buckets points into square cells of side eps, so every point
// within eps of a query lies in the query's cell or one of its 8 neighbours.
type pointIndex struct {
	eps   float64
	cells map[cell][]entry
}

func newPointIndex(eps float64, hint int) *pointIndex {
	return &pointIndex{eps: eps, cells: make(map[cell][]entry, hint)}
}

func (ix *pointIndex) key(p complex128) cell {
	return cell{int64(math.Floor(real(p) / ix.eps)), int64(math.Floor(imag(p) / ix.eps))}
}

func (ix *pointIndex) insert(id NodeID, p complex128) {
	k := ix.key(p)
	ix.cells[k] = append(ix.cells[k], entry{id: id, p: p})
}

// near returns the first indexed point strictly closer than eps to p.
func (ix *pointIndex) near(p complex128) (NodeID, bool) {
	k := ix.key(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, e := range ix.cells[cell{k[0] + dx, k[1] + dy}] {
				if cmplx.Abs(p-e.p) < ix.eps {
					return e.id, true
				}
			}
		}
	}
	return 0, false
}
