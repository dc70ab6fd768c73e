package asset

// Pool is the unnamed half of Store: a dense, index-addressed slot array
// with a free-list, used directly wherever a collection needs stable
// integer handles without a name (mesh instances, model instances) — the
// same SparseMap-with-free-list shape spec.md describes for Mesh's
// instance-id -> MeshInstance mapping.
type Pool[T any] struct {
	slots    []poolSlot[T]
	freeIdx  []uint32
	liveSize int
}

type poolSlot[T any] struct {
	value    T
	occupied bool
}

// NewPool constructs an empty Pool.
func NewPool[T any]() *Pool[T] { return &Pool[T]{} }

// Insert stores value at the next free slot (reusing a removed one if
// available) and returns its index.
func (p *Pool[T]) Insert(value T) uint32 {
	if n := len(p.freeIdx); n > 0 {
		idx := p.freeIdx[n-1]
		p.freeIdx = p.freeIdx[:n-1]
		p.slots[idx] = poolSlot[T]{value: value, occupied: true}
		p.liveSize++
		return idx
	}
	idx := uint32(len(p.slots))
	p.slots = append(p.slots, poolSlot[T]{value: value, occupied: true})
	p.liveSize++
	return idx
}

// Get returns the value at idx, or false if idx is out of range or removed.
func (p *Pool[T]) Get(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(p.slots) || !p.slots[idx].occupied {
		return zero, false
	}
	return p.slots[idx].value, true
}

// GetPtr returns a pointer to the value at idx for in-place mutation, or
// nil.
func (p *Pool[T]) GetPtr(idx uint32) *T {
	if int(idx) >= len(p.slots) || !p.slots[idx].occupied {
		return nil
	}
	return &p.slots[idx].value
}

// Remove drops idx, pushing it onto the free-list for reuse.
func (p *Pool[T]) Remove(idx uint32) (T, bool) {
	var zero T
	if int(idx) >= len(p.slots) || !p.slots[idx].occupied {
		return zero, false
	}
	v := p.slots[idx].value
	p.slots[idx] = poolSlot[T]{}
	p.freeIdx = append(p.freeIdx, idx)
	p.liveSize--
	return v, true
}

// Len reports the number of live values.
func (p *Pool[T]) Len() int { return p.liveSize }

// All iterates every live (index, value) pair.
func (p *Pool[T]) All(yield func(uint32, *T) bool) {
	for i := range p.slots {
		if !p.slots[i].occupied {
			continue
		}
		if !yield(uint32(i), &p.slots[i].value) {
			return
		}
	}
}
