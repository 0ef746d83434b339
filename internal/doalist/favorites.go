package doalist

import "slices"

// Favorites is the in-memory favorite id set. It is never persisted and
// may hold ids that no longer exist after a refetch.
type Favorites struct {
	ids map[int]struct{}
}

func NewFavorites() *Favorites {
	return &Favorites{ids: make(map[int]struct{})}
}

// Toggle adds or removes id and reports whether it is now a favorite
func (f *Favorites) Toggle(id int) bool {
	if _, ok := f.ids[id]; ok {
		delete(f.ids, id)
		return false
	}
	f.ids[id] = struct{}{}
	return true
}

func (f *Favorites) Has(id int) bool {
	_, ok := f.ids[id]
	return ok
}

func (f *Favorites) Len() int {
	return len(f.ids)
}

// IDs returns the favorite ids in ascending order
func (f *Favorites) IDs() []int {
	ids := make([]int, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
