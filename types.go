package digraph

// defaultCapacity is the initial matrix side used when no WithCapacity
// option is supplied.
const defaultCapacity = 10

// Edge is one weighted directed edge in enumeration output.
// Values are copies; mutating an Edge never affects the graph.
type Edge[V comparable] struct {
	// From is the source vertex label.
	From V

	// To is the destination vertex label.
	To V

	// Weight is the stored edge weight, always > 0 in enumeration output
	// (zero cells mean "no edge" and are never emitted).
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*config)

// config collects construction-time settings before allocation.
type config struct {
	capacity int
}

// WithCapacity sets the initial matrix side (rows == columns == n), useful
// when the peak vertex count is known up front and the grow-by-one copies
// should be avoided. Non-positive values fall back to the default.
//
// The capacity is a storage hint only: indices are still allocated lazily
// starting at zero, so a graph built with WithCapacity(100) and three
// vertices occupies indices 0..2.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// freeList allocates dense integer indices. Freed indices are recycled
// LIFO before the high-water mark advances, so the index space never grows
// past the peak live vertex count.
type freeList struct {
	recycled []int // indices returned by push, reused before next
	next     int   // high-water mark: lowest never-issued index
}

// pop returns the next available index: the most recently recycled one if
// any, otherwise the high-water mark (which then advances).
func (f *freeList) pop() int {
	if n := len(f.recycled); n > 0 {
		i := f.recycled[n-1]
		f.recycled = f.recycled[:n-1]

		return i
	}
	i := f.next
	f.next++

	return i
}

// push returns a freed index to the allocator for reuse.
func (f *freeList) push(i int) {
	f.recycled = append(f.recycled, i)
}

// reset forgets all issued and recycled indices; allocation restarts at zero.
func (f *freeList) reset() {
	f.recycled = f.recycled[:0]
	f.next = 0
}

// clone returns an independent copy of the allocator state.
func (f *freeList) clone() freeList {
	recycled := make([]int, len(f.recycled))
	copy(recycled, f.recycled)

	return freeList{recycled: recycled, next: f.next}
}
