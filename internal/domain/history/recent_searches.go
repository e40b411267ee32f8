package history

import "sync"

// RecentSearches is an ordered, duplicate-free list of cities whose lookup succeeded.
// It lives for the process lifetime and is safe for concurrent use.
type RecentSearches struct {
	mu      sync.RWMutex
	cities  []string
	maxSize int
}

// NewRecentSearches creates an empty list. maxSize <= 0 means unbounded; otherwise
// the oldest entry is evicted when a new city would exceed maxSize.
func NewRecentSearches(maxSize int) *RecentSearches {
	return &RecentSearches{maxSize: maxSize}
}

// Add appends city unless it is already present and reports whether the list changed
func (r *RecentSearches) Add(city string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(city) >= 0 {
		return false
	}
	if r.maxSize > 0 && len(r.cities) >= r.maxSize {
		r.cities = append(r.cities[:0], r.cities[len(r.cities)-r.maxSize+1:]...)
	}
	r.cities = append(r.cities, city)
	return true
}

// List returns a copy of the cities, oldest first
func (r *RecentSearches) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cities := make([]string, len(r.cities))
	copy(cities, r.cities)
	return cities
}

// Get returns the city at index
func (r *RecentSearches) Get(index int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.cities) {
		return "", false
	}
	return r.cities[index], true
}

// Contains matches the exact city string
func (r *RecentSearches) Contains(city string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(city) >= 0
}

func (r *RecentSearches) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cities)
}

func (r *RecentSearches) indexOf(city string) int {
	for i, c := range r.cities {
		if c == city {
			return i
		}
	}
	return -1
}
