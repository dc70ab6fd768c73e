// Package asset implements the stable-handle asset store shared by meshes,
// models and textures: a dense, index-addressed store with a free-list for
// reuse, plus a name->id lookup. Ported from renderer/src/asset_manager.rs's
// AssetStore<T>, restructured as a Go generic type instead of the teacher's
// per-kind AssetServer (mod_assets.go) so one implementation serves all
// three asset kinds.
package asset

// Named is implemented by anything storable in an AssetStore — its Name is
// the store's secondary lookup key.
type Named interface {
	Name() string
}

// ID is an opaque, cheap-to-copy handle into a Store[T]. It is only
// meaningful within the store that produced it; ids are reused after
// removal via the store's free-list, so equality does not imply the
// referent is still the same logical asset across a remove/insert cycle.
type ID[T Named] struct {
	index uint32
}

// Index exposes the underlying dense index, mostly useful for diagnostics
// and for building parallel side-tables.
func (id ID[T]) Index() uint32 { return id.index }

// Store is a dense-indexed map from ID to T (built on Pool), with a
// name->id lookup layered on top. It is not safe for concurrent mutation;
// the renderer only ever mutates it on the caller thread between frames
// (see spec.md §5).
type Store[T Named] struct {
	pool   *Pool[T]
	byName map[string]ID[T]
}

// NewStore constructs an empty store.
func NewStore[T Named]() *Store[T] {
	return &Store[T]{
		pool:   NewPool[T](),
		byName: make(map[string]ID[T]),
	}
}

// Insert stores value, returning its new id. The id is popped from the
// free-list if one is available, otherwise it is the next dense index.
func (s *Store[T]) Insert(value T) ID[T] {
	id := ID[T]{index: s.pool.Insert(value)}
	s.byName[value.Name()] = id
	return id
}

// Get returns the value at id, or false if id is out of range or was
// removed.
func (s *Store[T]) Get(id ID[T]) (T, bool) { return s.pool.Get(id.index) }

// GetPtr returns a pointer to the stored value for in-place mutation, or
// nil if id does not resolve to a live value.
func (s *Store[T]) GetPtr(id ID[T]) *T { return s.pool.GetPtr(id.index) }

// Lookup resolves a name to its id.
func (s *Store[T]) Lookup(name string) (ID[T], bool) {
	id, ok := s.byName[name]
	return id, ok
}

// ContainsName reports whether name is currently bound to a live asset.
func (s *Store[T]) ContainsName(name string) bool {
	_, ok := s.byName[name]
	return ok
}

// Remove drops id, returning the removed value. The id is pushed onto the
// free-list and its name binding erased, so a subsequent Insert may reissue
// the same index.
func (s *Store[T]) Remove(id ID[T]) (T, bool) {
	v, ok := s.pool.Remove(id.index)
	if !ok {
		return v, false
	}
	delete(s.byName, v.Name())
	return v, true
}

// Len reports the number of live values.
func (s *Store[T]) Len() int { return s.pool.Len() }

// All iterates every live (id, value) pair. The store must not be mutated
// (Insert/Remove) while iterating; this mirrors the single-threaded
// exclusive-ownership contract described in spec.md §5.
func (s *Store[T]) All(yield func(ID[T], *T) bool) {
	s.pool.All(func(idx uint32, v *T) bool {
		return yield(ID[T]{index: idx}, v)
	})
}
