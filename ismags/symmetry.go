// SPDX-License-Identifier: MIT
//
// File: symmetry.go
// Role: Automorphism search on the subgraph (ordered pair partitions with
// equitable refinement), producing permutations and cosets.

package ismags

import (
	"maps"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat/combin"
)

// analyzer searches the automorphisms of one coloured graph.
type analyzer struct {
	v         *view
	nodeColor []int
	edgeColor map[pair]int

	// orbit labels every node with its orbit. It is shared by all search
	// branches, so automorphisms found in one branch prune the others.
	orbit []int
}

type pairPartition struct {
	top, bottom [][]int
}

func newAnalyzer(v *view, c coloring) *analyzer {
	a := &analyzer{v: v, nodeColor: c.nodeColor, edgeColor: c.edgeColor, orbit: make([]int, v.size())}
	for i := range a.orbit {
		a.orbit[i] = i
	}

	return a
}

// analyze returns the automorphism generators and the cosets of the graph.
func (a *analyzer) analyze(cells [][]int) symmetry {
	start := a.refine(cells, false)[0]
	perms, cosets := a.process(start, start, nil)

	return symmetry{perms: perms, cosets: cosets}
}

// signatures combines every node's colour with its number of edges per
// (edge colour, neighbour colour).
func (a *analyzer) signatures(colors []int) []string {
	counts := make([]map[[2]int]int, a.v.size())
	for i := range counts {
		counts[i] = make(map[[2]int]int)
	}
	for _, e := range a.v.edges {
		ec := a.edgeColor[e]
		counts[e[0]][[2]int{ec, colors[e[1]]}]++
		counts[e[1]][[2]int{ec, colors[e[0]]}]++
	}

	sigs := make([]string, a.v.size())
	for i, cnt := range counts {
		keys := make([][2]int, 0, len(cnt))
		for k := range cnt {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(x, y int) bool {
			if keys[x][0] != keys[y][0] {
				return keys[x][0] < keys[y][0]
			}

			return keys[x][1] < keys[y][1]
		})
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(colors[i]))
		for _, k := range keys {
			sb.WriteByte(';')
			sb.WriteString(strconv.Itoa(k[0]))
			sb.WriteByte(',')
			sb.WriteString(strconv.Itoa(k[1]))
			sb.WriteByte('=')
			sb.WriteString(strconv.Itoa(cnt[k]))
		}
		sigs[i] = sb.String()
	}

	return sigs
}

// refine splits cells until every node in a cell has the same signature.
// Without branch the result has exactly one partition. With branch, cells
// of equal size split off together are emitted in every order, since their
// order decides which nodes get paired with the other side.
func (a *analyzer) refine(cells [][]int, branch bool) [][][]int {
	sigs := a.signatures(colorsOf(a.v.size(), cells))
	uniform := func(cell []int) bool {
		for _, x := range cell[1:] {
			if sigs[x] != sigs[cell[0]] {
				return false
			}
		}

		return true
	}

	stable := true
	for _, cell := range cells {
		if len(cell) > 0 && !uniform(cell) {
			stable = false
			break
		}
	}
	if stable {
		return [][][]int{cells}
	}

	out := [][][]int{nil}
	for _, cell := range cells {
		if len(cell) == 0 || uniform(cell) {
			for i := range out {
				out[i] = append(out[i], cell)
			}
			continue
		}
		split := partition(cell, func(x, y int) bool { return sigs[x] == sigs[y] })
		if branch {
			orders := orderingsByLength(split)
			next := make([][][]int, 0, len(out)*len(orders))
			for _, prefix := range out {
				for _, ord := range orders {
					np := make([][]int, 0, len(prefix)+len(ord))
					np = append(np, prefix...)
					next = append(next, append(np, ord...))
				}
			}
			out = next
			continue
		}
		sort.SliceStable(split, func(x, y int) bool { return len(split[x]) < len(split[y]) })
		for i := range out {
			out[i] = append(out[i], split...)
		}
	}

	var res [][][]int
	for _, p := range out {
		res = append(res, a.refine(p, branch)...)
	}

	return res
}

// orderingsByLength returns every arrangement of cells sorted by length in
// which only cells of the same length trade places.
func orderingsByLength(cells [][]int) [][][]int {
	byLen := make(map[int][][]int)
	var lens []int
	for _, c := range cells {
		if _, ok := byLen[len(c)]; !ok {
			lens = append(lens, len(c))
		}
		byLen[len(c)] = append(byLen[len(c)], c)
	}
	sort.Ints(lens)

	orders := [][][]int{nil}
	for _, l := range lens {
		group := byLen[l]
		perms := combin.Permutations(len(group), len(group))
		next := make([][][]int, 0, len(orders)*len(perms))
		for _, prefix := range orders {
			for _, perm := range perms {
				ord := make([][]int, 0, len(prefix)+len(perm))
				ord = append(ord, prefix...)
				for _, i := range perm {
					ord = append(ord, group[i])
				}
				next = append(next, ord)
			}
		}
		orders = next
	}

	return orders
}

// couple pairs node t of top cell idx with node b of bottom cell idx and
// refines both sides.
func (a *analyzer) couple(top, bottom [][]int, idx, t, b int) []pairPartition {
	tops := a.refine(individualize(top, idx, t), false)
	bots := a.refine(individualize(bottom, idx, b), true)
	out := make([]pairPartition, 0, len(bots))
	for _, bot := range bots {
		out = append(out, pairPartition{top: tops[0], bottom: bot})
	}

	return out
}

// individualize splits x out of cells[idx] into its own cell placed first.
func individualize(cells [][]int, idx, x int) [][]int {
	out := make([][]int, 0, len(cells)+1)
	out = append(out, cells[:idx]...)
	out = append(out, []int{x}, removeInt(cells[idx], x))

	return append(out, cells[idx+1:]...)
}

func aligned(top, bottom [][]int) bool {
	if len(top) != len(bottom) {
		return false
	}
	for i := range top {
		if len(top[i]) != len(bottom[i]) {
			return false
		}
	}

	return true
}

// process explores the ordered pair partition (top, bottom). It returns
// the automorphisms found below it and the cosets known so far.
func (a *analyzer) process(top, bottom [][]int, inherited map[int][]int) ([][][2]int, map[int][]int) {
	cosets := maps.Clone(inherited)
	if cosets == nil {
		cosets = make(map[int][]int)
	}
	if !aligned(top, bottom) {
		return nil, cosets
	}

	node, idx := -1, -1
	for i, cell := range top {
		if len(cell) < 2 {
			continue
		}
		for _, x := range cell {
			if node < 0 || x < node {
				node, idx = x, i
			}
		}
	}
	if node < 0 {
		perm, ok := a.permutation(top, bottom)
		if !ok || len(perm) == 0 {
			return nil, cosets
		}
		for _, p := range perm {
			a.merge(p[0], p[1])
		}

		return [][][2]int{perm}, cosets
	}

	targets := append([]int(nil), bottom[idx]...)
	sort.Ints(targets)
	var perms [][][2]int
	for _, node2 := range targets {
		if node != node2 && a.orbit[node] == a.orbit[node2] {
			continue
		}
		for _, opp := range a.couple(top, bottom, idx, node, node2) {
			found, more := a.process(opp.top, opp.bottom, cosets)
			perms = append(perms, found...)
			maps.Copy(cosets, more)
		}
	}

	if _, ok := cosets[node]; !ok && a.fixedBelow(top, bottom, node) {
		cosets[node] = a.orbitOf(node)
	}

	return perms, cosets
}

// permutation reads the node mapping of a discrete pair partition and
// returns the pairs it moves. ok is false when the mapping does not
// preserve the coloured structure.
func (a *analyzer) permutation(top, bottom [][]int) ([][2]int, bool) {
	sigma := make([]int, a.v.size())
	for i := range top {
		sigma[top[i][0]] = bottom[i][0]
	}
	for x, y := range sigma {
		if a.nodeColor[x] != a.nodeColor[y] {
			return nil, false
		}
	}
	for _, e := range a.v.edges {
		img := norm(sigma[e[0]], sigma[e[1]])
		c, ok := a.edgeColor[img]
		if !ok || c != a.edgeColor[e] {
			return nil, false
		}
	}

	seen := make(map[pair]bool)
	var moved [][2]int
	for x, y := range sigma {
		if x == y {
			continue
		}
		p := norm(x, y)
		if !seen[p] {
			seen[p] = true
			moved = append(moved, p)
		}
	}
	sort.Slice(moved, func(i, j int) bool {
		if moved[i][0] != moved[j][0] {
			return moved[i][0] < moved[j][0]
		}

		return moved[i][1] < moved[j][1]
	})

	return moved, true
}

func (a *analyzer) merge(x, y int) {
	lx, ly := a.orbit[x], a.orbit[y]
	if lx == ly {
		return
	}
	for i, l := range a.orbit {
		if l == ly {
			a.orbit[i] = lx
		}
	}
}

func (a *analyzer) orbitOf(x int) []int {
	var out []int
	for i, l := range a.orbit {
		if l == a.orbit[x] {
			out = append(out, i)
		}
	}

	return out
}

// fixedBelow reports whether every node smaller than node is paired with
// itself in a singleton cell.
func (a *analyzer) fixedBelow(top, bottom [][]int, node int) bool {
	fixed := make(map[int]bool)
	for i := range top {
		if len(top[i]) == 1 && len(bottom[i]) == 1 && top[i][0] == bottom[i][0] {
			fixed[top[i][0]] = true
		}
	}
	for k := 0; k < node; k++ {
		if !fixed[k] {
			return false
		}
	}

	return true
}

// symmetryKey identifies a coloured graph for SymmetryCache.
func symmetryKey(v *view, c coloring) string {
	var sb strings.Builder
	for _, id := range v.ids {
		sb.WriteString(strconv.Quote(id))
	}
	sb.WriteByte('|')
	for _, e := range v.edges {
		sb.WriteString(strconv.Itoa(e[0]))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(e[1]))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(c.edgeColor[e]))
		sb.WriteByte(' ')
	}
	sb.WriteByte('|')
	for _, cell := range c.nodeCells {
		for _, x := range cell {
			sb.WriteString(strconv.Itoa(x))
			sb.WriteByte(',')
		}
		sb.WriteByte('/')
	}

	return sb.String()
}
