package notegraph

// unionFind implements union-find over notes with path compression and
// union by rank, used for connectivity checks.
type unionFind struct {
	parent map[Note]Note
	rank   map[Note]int
}

func newUnionFind(notes []Note) *unionFind {
	uf := &unionFind{
		parent: make(map[Note]Note, len(notes)),
		rank:   make(map[Note]int, len(notes)),
	}
	for _, n := range notes {
		uf.parent[n] = n
		uf.rank[n] = 0
	}
	return uf
}

func (uf *unionFind) find(n Note) Note {
	parent, ok := uf.parent[n]
	if !ok {
		return n
	}
	if parent != n {
		root := uf.find(parent)
		uf.parent[n] = root
		return root
	}
	return n
}

// union merges the components containing a and b. Returns true if they were separate.
func (uf *unionFind) union(a, b Note) bool {
	rootA := uf.find(a)
	rootB := uf.find(b)
	if rootA == rootB {
		return false
	}
	switch {
	case uf.rank[rootA] < uf.rank[rootB]:
		uf.parent[rootA] = rootB
	case uf.rank[rootA] > uf.rank[rootB]:
		uf.parent[rootB] = rootA
	default:
		uf.parent[rootB] = rootA
		uf.rank[rootA]++
	}
	return true
}

// components returns the number of disjoint components.
func (uf *unionFind) components() int {
	roots := make(map[Note]bool)
	for n := range uf.parent {
		roots[uf.find(n)] = true
	}
	return len(roots)
}
