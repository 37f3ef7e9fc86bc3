package stem

// buffer holds a word under transformation. Letters live in b[0..k]; anything
// past k has been stripped and is ignored.
type buffer struct {
	b []rune
	k int
}

func newBuffer(word string) *buffer {
	b := []rune(word)
	return &buffer{b: b, k: len(b) - 1}
}

func (b *buffer) at(i int) rune { return b.b[i] }

// end returns the cursor: the index of the last letter of the stem.
func (b *buffer) end() int { return b.k }

func (b *buffer) len() int { return b.k + 1 }

// suffix reports whether b[0..k] ends with s. On a match it returns the index
// just before the suffix, which is -1 when s covers the whole stem.
func (b *buffer) suffix(s string) (int, bool) {
	n := len(s) // suffixes are ASCII, validated in newRule
	if n > b.len() {
		return 0, false
	}
	j := b.k - n
	for i := 0; i < n; i++ {
		if b.b[j+1+i] != rune(s[i]) {
			return 0, false
		}
	}
	return j, true
}

// truncate drops every letter after j.
func (b *buffer) truncate(j int) {
	b.k = j
}

// replaceTail drops every letter after j and appends s.
func (b *buffer) replaceTail(j int, s string) {
	b.b = b.b[:j+1]
	for _, r := range s {
		b.b = append(b.b, r)
	}
	b.k = len(b.b) - 1
}

func (b *buffer) String() string {
	return string(b.b[:b.k+1])
}
