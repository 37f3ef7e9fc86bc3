package stem

import (
	"sort"
	"sync/atomic"
)

// StopwordSet is a set of words exempt from stemming. Membership is exact and
// case-sensitive. The set is replaced as a whole: readers see either the old
// or the new contents, never a mix. The zero value is an empty set.
type StopwordSet struct {
	words atomic.Pointer[map[string]struct{}]
}

// NewStopwordSet makes a set holding words.
func NewStopwordSet(words []string) *StopwordSet {
	s := &StopwordSet{}
	s.Replace(words)
	return s
}

// Contains reports whether word is in the set.
func (s *StopwordSet) Contains(word string) bool {
	m := s.words.Load()
	if m == nil {
		return false
	}
	_, ok := (*m)[word]
	return ok
}

// Replace swaps the set for one built from words. Duplicates collapse.
func (s *StopwordSet) Replace(words []string) {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	s.words.Store(&m)
}

// Len returns the number of words in the set.
func (s *StopwordSet) Len() int {
	m := s.words.Load()
	if m == nil {
		return 0
	}
	return len(*m)
}

// Words returns the set's words, sorted.
func (s *StopwordSet) Words() []string {
	m := s.words.Load()
	if m == nil {
		return []string{}
	}
	res := make([]string, 0, len(*m))
	for w := range *m {
		res = append(res, w)
	}
	sort.Strings(res)
	return res
}
