package unionfind

// New constructs a UnionFind over the universe {0..n-1}, with every element
// initially alone in its own set.
// Returns ErrUniverseSize if n < 1.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n < 1 {
		return nil, ErrUniverseSize
	}
	parent := make([]int, n)
	size := make([]int, n)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}

	return &UnionFind{parent: parent, size: size, count: n}, nil
}

// Find resolves the root of the set containing x, compressing the path so
// that every node visited on the way points directly at the discovered root.
// Returns ErrElementRange if x lies outside [0, n).
// Complexity: O(α(n)) amortized, O(1) extra space.
func (uf *UnionFind) Find(x int) (int, error) {
	if x < 0 || x >= len(uf.parent) {
		return 0, ErrElementRange
	}
	// 1. Walk up to the root (parent[r] == r).
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	// 2. Second pass: repoint every visited node directly at the root.
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root, nil
}

// Union merges the sets containing x and y using union by size: the smaller
// tree's root is attached under the larger tree's root, and the larger root
// absorbs the smaller tree's population. Uniting two elements already in the
// same set is a cheap no-op, so repeated unions are idempotent.
// Returns ErrElementRange if either index lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Union(x, y int) error {
	rootX, err := uf.Find(x)
	if err != nil {
		return err
	}
	rootY, err := uf.Find(y)
	if err != nil {
		return err
	}
	if rootX == rootY {
		// Already in the same set; no action needed.
		return nil
	}
	// Attach the smaller tree under the larger tree's root.
	if uf.size[rootX] < uf.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	uf.parent[rootY] = rootX
	uf.size[rootX] += uf.size[rootY]
	uf.count--

	return nil
}

// Connected reports whether x and y belong to the same set.
// Returns ErrElementRange if either index lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) Connected(x, y int) (bool, error) {
	rootX, err := uf.Find(x)
	if err != nil {
		return false, err
	}
	rootY, err := uf.Find(y)
	if err != nil {
		return false, err
	}

	return rootX == rootY, nil
}

// Count reports the current number of disjoint sets.
// Complexity: O(1).
func (uf *UnionFind) Count() int {
	return uf.count
}

// SizeOf reports the population of the set containing x.
// Returns ErrElementRange if x lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (uf *UnionFind) SizeOf(x int) (int, error) {
	root, err := uf.Find(x)
	if err != nil {
		return 0, err
	}

	return uf.size[root], nil
}

// Len reports the universe size fixed at construction.
// Complexity: O(1).
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}
