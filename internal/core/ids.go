package core

// Identified is anything carrying an integer id.
type Identified interface {
	GetID() int
}

// LastID returns the largest id in items. The second result is false when
// items is empty. Input order does not matter.
func LastID[T Identified](items []T) (int, bool) {
	last, found := 0, false
	for _, item := range items {
		id := item.GetID()
		if !found || id > last {
			last, found = id, true
		}
	}
	return last, found
}

// NextID returns the id a new item should take: one past LastID, or 1.
func NextID[T Identified](items []T) int {
	last, ok := LastID(items)
	if !ok {
		return 1
	}
	return last + 1
}
