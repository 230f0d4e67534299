package util

// StringSet is a set of strings. The zero value is not usable; create one with
// NewStringSet.
type StringSet map[string]bool

// NewStringSet creates a StringSet containing the given elements.
func NewStringSet(elements ...string) StringSet {
	s := make(StringSet, len(elements))
	for _, el := range elements {
		s[el] = true
	}
	return s
}

// Add adds the given element to the set. If the element is already in the set,
// no effect occurs.
func (s StringSet) Add(element string) {
	s[element] = true
}

// AddAll adds every element of the given slice to the set.
func (s StringSet) AddAll(elements []string) {
	for _, el := range elements {
		s[el] = true
	}
}

// Has returns whether the set contains the given element.
func (s StringSet) Has(element string) bool {
	return s[element]
}

// HasAll returns whether the set contains every one of the given elements. It
// returns true for an empty slice.
func (s StringSet) HasAll(elements []string) bool {
	for _, el := range elements {
		if !s[el] {
			return false
		}
	}
	return true
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Elements returns the elements of the set, sorted ascending.
func (s StringSet) Elements() []string {
	return OrderedKeys(s)
}
