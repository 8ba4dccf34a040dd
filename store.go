package hui

import "errors"

// Store errors.
var (
	// ErrRectangleCapacity is returned when the store is full.
	ErrRectangleCapacity = errors.New("hui: rectangle capacity exceeded")
)

// RectangleID identifies a rectangle in the instance store. IDs are
// generation-checked: removing a rectangle invalidates its ID forever,
// even if the underlying slot is later reused.
//
// The zero RectangleID is never valid.
type RectangleID struct {
	index      uint32
	generation uint32
}

// Valid reports whether the ID was ever issued by a store. A valid ID may
// still be stale if the rectangle was removed.
func (id RectangleID) Valid() bool { return id.generation != 0 }

// dirtiness tracks how much GPU work the next frame needs. States are
// ordered: escalation within a frame only ever moves toward dirtyRebuild,
// never back. Only reset returns the store to dirtyClean.
type dirtiness uint8

const (
	// dirtyClean means the GPU buffer matches the store; the offscreen
	// pass can be skipped entirely.
	dirtyClean dirtiness = iota

	// dirtyRedraw means staging already holds the correct bytes (appends
	// only); upload and redraw, no re-encode needed.
	dirtyRedraw

	// dirtyRebuild means staging must be re-encoded from the slots before
	// upload (a rectangle was mutated or removed).
	dirtyRebuild
)

// rectangleSlot is a single arena slot. Slots are allocated once at store
// creation so &slot.rect pointers stay stable for the store's lifetime.
type rectangleSlot struct {
	generation uint32
	live       bool
	rect       Rectangle
}

// rectangleStore is a fixed-capacity generational arena of rectangle
// instances with dirty tracking and a staging buffer of serialized
// instance data ready for GPU upload.
//
// Not safe for concurrent use; the owning Renderer serializes access.
type rectangleStore struct {
	slots []rectangleSlot
	free  []uint32

	liveCount int
	state     dirtiness

	// staging holds liveCount*rectangleStride serialized bytes.
	// While state < dirtyRebuild, staging is maintained incrementally
	// (append on add); a rebuild re-encodes it from the slots.
	staging []byte

	// rebuilds counts full staging re-encodes since creation.
	rebuilds int
}

// newRectangleStore creates a store with the given fixed capacity.
// All slots are preallocated; generations start at 1 so the zero
// RectangleID never matches.
func newRectangleStore(capacity int) *rectangleStore {
	s := &rectangleStore{
		slots:   make([]rectangleSlot, capacity),
		free:    make([]uint32, 0, capacity),
		staging: make([]byte, 0, capacity*rectangleStride),
	}
	for i := range s.slots {
		s.slots[i].generation = 1
	}
	// Free list is popped from the back; fill it in reverse so slot 0 is
	// handed out first.
	for i := capacity - 1; i >= 0; i-- {
		s.free = append(s.free, uint32(i))
	}
	return s
}

// add inserts a rectangle and returns its ID. Fast path: while no rebuild
// is pending, the new instance is appended to staging directly and the
// store only escalates to dirtyRedraw.
func (s *rectangleStore) add(r Rectangle) (RectangleID, error) {
	if len(s.free) == 0 {
		return RectangleID{}, ErrRectangleCapacity
	}
	idx := s.free[len(s.free)-1]
	s.free = s.free[:len(s.free)-1]

	slot := &s.slots[idx]
	slot.live = true
	slot.rect = r
	s.liveCount++

	if s.state < dirtyRebuild {
		// Append-only fast path: staging stays valid, no re-encode.
		off := len(s.staging)
		s.staging = s.staging[:off+rectangleStride]
		putRectangle(s.staging[off:], &slot.rect)
		s.state = dirtyRedraw
	}

	return RectangleID{index: idx, generation: slot.generation}, nil
}

// get returns a mutable pointer to the rectangle with the given ID, or
// nil if the ID is stale or was never issued. Because the caller may
// mutate through the pointer, the store escalates to dirtyRebuild
// unconditionally, before the ID is even resolved.
func (s *rectangleStore) get(id RectangleID) *Rectangle {
	s.state = dirtyRebuild
	slot := s.lookup(id)
	if slot == nil {
		return nil
	}
	return &slot.rect
}

// peek returns the rectangle without escalating dirtiness. Used for
// read-only inspection.
func (s *rectangleStore) peek(id RectangleID) (Rectangle, bool) {
	slot := s.lookup(id)
	if slot == nil {
		return Rectangle{}, false
	}
	return slot.rect, true
}

// remove deletes the rectangle with the given ID, returning the removed
// value. The slot's generation is bumped so the ID is invalid forever.
func (s *rectangleStore) remove(id RectangleID) (Rectangle, bool) {
	slot := s.lookup(id)
	if slot == nil {
		return Rectangle{}, false
	}
	removed := slot.rect
	slot.live = false
	slot.generation++
	slot.rect = Rectangle{}
	s.liveCount--
	s.free = append(s.free, id.index)
	s.state = dirtyRebuild
	return removed, true
}

// lookup resolves an ID to its slot, or nil for stale/invalid IDs.
func (s *rectangleStore) lookup(id RectangleID) *rectangleSlot {
	if !id.Valid() || int(id.index) >= len(s.slots) {
		return nil
	}
	slot := &s.slots[id.index]
	if !slot.live || slot.generation != id.generation {
		return nil
	}
	return slot
}

// encode returns the serialized instance bytes for upload. If a rebuild
// is pending, staging is re-encoded from the live slots in index order.
func (s *rectangleStore) encode() []byte {
	if s.state == dirtyRebuild {
		s.staging = s.staging[:0]
		for i := range s.slots {
			slot := &s.slots[i]
			if !slot.live {
				continue
			}
			off := len(s.staging)
			s.staging = s.staging[:off+rectangleStride]
			putRectangle(s.staging[off:], &slot.rect)
		}
		s.rebuilds++
		Logger().Debug("hui: instance staging rebuilt",
			"instances", s.liveCount, "bytes", len(s.staging))
	}
	return s.staging
}

// reset marks the store clean after a successful upload.
func (s *rectangleStore) reset() { s.state = dirtyClean }

// dirty returns the current dirtiness state.
func (s *rectangleStore) dirty() dirtiness { return s.state }

// len returns the number of live rectangles.
func (s *rectangleStore) len() int { return s.liveCount }

// capacity returns the fixed slot count.
func (s *rectangleStore) capacity() int { return len(s.slots) }
