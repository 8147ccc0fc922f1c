package dispatch

import "sort"

// AliasPair names two entry points that share a signature and behaviour,
// e.g. BindVertexArray and BindVertexArrayAPPLE.
type AliasPair struct {
	A, B string
}

// Pairs expands alias classes into every pair within each class.
func Pairs(classes [][]string) []AliasPair {
	var pairs []AliasPair
	for _, class := range classes {
		for i := range class {
			for j := i + 1; j < len(class); j++ {
				pairs = append(pairs, AliasPair{A: class[i], B: class[j]})
			}
		}
	}
	return pairs
}

// Closure returns the transitive closure of pairs: every two names connected
// through any chain of pairs become a pair. The result is sorted, with A < B
// in each pair and no self-pairs or duplicates.
func Closure(pairs []AliasPair) []AliasPair {
	parent := make(map[string]string)
	var find func(string) string
	find = func(n string) string {
		p, ok := parent[n]
		if !ok {
			parent[n] = n
			return n
		}
		if p == n {
			return n
		}
		root := find(p)
		parent[n] = root
		return root
	}
	for _, p := range pairs {
		ra, rb := find(p.A), find(p.B)
		if ra != rb {
			parent[ra] = rb
		}
	}

	classes := make(map[string][]string)
	for n := range parent {
		r := find(n)
		classes[r] = append(classes[r], n)
	}
	var closed []AliasPair
	for _, members := range classes {
		sort.Strings(members)
		closed = append(closed, Pairs([][]string{members})...)
	}
	sortPairs(closed, func(a, b string) bool { return a < b })
	return closed
}

// ClosureGaps lists the pairs that Closure adds to pairs, i.e. the aliases a
// single pairwise pass over pairs alone could fail to propagate.
func ClosureGaps(pairs []AliasPair) []AliasPair {
	have := make(map[AliasPair]bool, 2*len(pairs))
	for _, p := range pairs {
		have[p] = true
		have[AliasPair{A: p.B, B: p.A}] = true
	}
	var gaps []AliasPair
	for _, p := range Closure(pairs) {
		if !have[p] {
			gaps = append(gaps, p)
		}
	}
	return gaps
}

// alias runs the aliasing pass: for every pair, A adopts from B and then B
// adopts from A, so whichever name the driver exports fills in the other.
// A loaded cell is never overwritten. It returns the number of adoptions.
//
// pairs is closed transitively and ordered by registry position first, so
// the result is the same for any ordering of pairs and a second pass makes
// no further changes. Pairs naming entry points outside the table are
// ignored.
func (t *Table) alias(pairs []AliasPair) int {
	var known []AliasPair
	for _, p := range Closure(pairs) {
		ia, okA := t.index[p.A]
		ib, okB := t.index[p.B]
		if !okA || !okB {
			continue
		}
		if ib < ia {
			p.A, p.B = p.B, p.A
		}
		known = append(known, p)
	}
	sortPairs(known, func(a, b string) bool { return t.index[a] < t.index[b] })

	n := 0
	for _, p := range known {
		ia, ib := t.index[p.A], t.index[p.B]
		if t.cells[ia].AdoptIfUnloaded(t.cells[ib]) {
			t.healed[p.A] = t.donor(p.B)
			n++
		}
		if t.cells[ib].AdoptIfUnloaded(t.cells[ia]) {
			t.healed[p.B] = t.donor(p.A)
			n++
		}
	}
	return n
}

// donor follows a healed name back to the name that actually resolved.
func (t *Table) donor(name string) string {
	if d, ok := t.healed[name]; ok {
		return d
	}
	return name
}

func sortPairs(pairs []AliasPair, less func(a, b string) bool) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return less(pairs[i].A, pairs[j].A)
		}
		return less(pairs[i].B, pairs[j].B)
	})
}
