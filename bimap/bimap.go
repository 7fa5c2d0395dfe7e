package bimap

// Bimap is a bijection between K and V: no two keys share a value and no two
// values share a key. Both directions are plain hash maps, so every operation
// below is O(1) unless stated otherwise.
//
// The zero value is not usable; construct with New.
type Bimap[K, V comparable] struct {
	forward map[K]V // key → value
	inverse map[V]K // value → key
}

// New returns an empty Bimap.
func New[K, V comparable]() *Bimap[K, V] {
	return &Bimap[K, V]{
		forward: make(map[K]V),
		inverse: make(map[V]K),
	}
}

// Add binds k↔v in both directions.
// Stage 1 (Validate): reject if either side is already bound.
// Stage 2 (Execute): insert into forward and inverse maps.
// Returns ErrDuplicateKey on collision; the Bimap is unchanged in that case.
func (b *Bimap[K, V]) Add(k K, v V) error {
	if _, exists := b.forward[k]; exists {
		return ErrDuplicateKey
	}
	if _, exists := b.inverse[v]; exists {
		return ErrDuplicateKey
	}
	b.forward[k] = v
	b.inverse[v] = k

	return nil
}

// Get returns the value bound to k, or ErrNotFound.
func (b *Bimap[K, V]) Get(k K) (V, error) {
	v, ok := b.forward[k]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	return v, nil
}

// GetInverse returns the key bound to v, or ErrNotFound.
func (b *Bimap[K, V]) GetInverse(v V) (K, error) {
	k, ok := b.inverse[v]
	if !ok {
		var zero K
		return zero, ErrNotFound
	}

	return k, nil
}

// Contains reports whether k is bound. Total; never fails.
func (b *Bimap[K, V]) Contains(k K) bool {
	_, ok := b.forward[k]
	return ok
}

// ContainsValue reports whether v is bound.
func (b *Bimap[K, V]) ContainsValue(v V) bool {
	_, ok := b.inverse[v]
	return ok
}

// Remove deletes the pair bound to k from both directions and returns the
// value that was freed. Returns ErrNotFound if k is unbound.
func (b *Bimap[K, V]) Remove(k K) (V, error) {
	v, ok := b.forward[k]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}
	delete(b.forward, k)
	delete(b.inverse, v)

	return v, nil
}

// Keys returns a snapshot of all bound keys in unspecified order.
// Mutating the returned slice never affects the Bimap.
// Complexity: O(n) time and memory.
func (b *Bimap[K, V]) Keys() []K {
	keys := make([]K, 0, len(b.forward))
	for k := range b.forward {
		keys = append(keys, k)
	}

	return keys
}

// Len returns the number of bound pairs.
func (b *Bimap[K, V]) Len() int {
	return len(b.forward)
}

// Clear removes every pair from both directions.
// Complexity: O(1); both maps are reallocated, not iterated.
func (b *Bimap[K, V]) Clear() {
	b.forward = make(map[K]V)
	b.inverse = make(map[V]K)
}
