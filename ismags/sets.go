package ismags

// Node sets are sorted, duplicate-free []int slices.

// intersect returns the nodes present in every set.
func intersect(sets [][]int) []int {
	if len(sets) == 0 {
		return nil
	}
	out := append([]int(nil), sets[0]...)
	for _, s := range sets[1:] {
		kept := out[:0]
		i, j := 0, 0
		for i < len(out) && j < len(s) {
			switch {
			case out[i] < s[j]:
				i++
			case out[i] > s[j]:
				j++
			default:
				kept = append(kept, out[i])
				i++
				j++
			}
		}
		out = kept
	}

	return out
}

// smallest returns the size of the smallest set.
func smallest(sets [][]int) int {
	best := -1
	for _, s := range sets {
		if best < 0 || len(s) < best {
			best = len(s)
		}
	}

	return best
}

func rangeSet(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, 0, hi-lo)
	for x := lo; x < hi; x++ {
		out = append(out, x)
	}

	return out
}

func withoutSet(n int, drop map[int]struct{}) []int {
	out := make([]int, 0, n)
	for x := 0; x < n; x++ {
		if _, ok := drop[x]; !ok {
			out = append(out, x)
		}
	}

	return out
}

func containsInt(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}

	return false
}

func removeInt(s []int, x int) []int {
	out := make([]int, 0, len(s))
	for _, y := range s {
		if y != x {
			out = append(out, y)
		}
	}

	return out
}

func lessInts(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
