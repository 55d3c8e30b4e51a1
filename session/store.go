package session

var _ Store = MemoryStore{}

// MemoryStore keeps lists in a map.
type MemoryStore struct {
	lists map[string]*List
}

// NewMemoryStore creates empty memory store.
func NewMemoryStore() MemoryStore {
	return MemoryStore{
		lists: map[string]*List{},
	}
}

// Get returns the list stored under name.
func (s MemoryStore) Get(name string) (*List, bool) {
	l, exists := s.lists[name]
	return l, exists
}

// Set stores the list under name.
func (s MemoryStore) Set(name string, list *List) {
	s.lists[name] = list
}

// Delete removes the list stored under name.
func (s MemoryStore) Delete(name string) {
	delete(s.lists, name)
}

// Len returns the number of lists in the store.
func (s MemoryStore) Len() int {
	return len(s.lists)
}
