package stem

// cons reports whether the letter at i is a consonant. "y" is a consonant at
// the start of a word or after a vowel, and a vowel after a consonant.
func (b *buffer) cons(i int) bool {
	switch b.b[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !b.cons(i - 1)
	default:
		return true
	}
}

// measure counts the VC sequences in b[0..j], the m in [C](VC)^m[V].
//
//	<c><v>       gives 0
//	<c>vc<v>     gives 1
//	<c>vcvc<v>   gives 2
func (b *buffer) measure(j int) int {
	n, i := 0, 0
	// skip the leading consonant run
	for i <= j && b.cons(i) {
		i++
	}
	for i <= j {
		for i <= j && !b.cons(i) {
			i++
		}
		if i > j {
			break
		}
		n++
		for i <= j && b.cons(i) {
			i++
		}
	}
	return n
}

// vowelIn reports whether b[0..j] contains a vowel.
func (b *buffer) vowelIn(j int) bool {
	for i := 0; i <= j; i++ {
		if !b.cons(i) {
			return true
		}
	}
	return false
}

// doubleC reports whether b[j-1] and b[j] are the same consonant.
func (b *buffer) doubleC(j int) bool {
	if j < 1 || b.b[j] != b.b[j-1] {
		return false
	}
	return b.cons(j)
}

// cvc reports whether b[j-2..j] is consonant-vowel-consonant and b[j] is not
// w, x or y. It restores the e in cav(e), lov(e), hop(e) but not in snow, box,
// tray.
func (b *buffer) cvc(j int) bool {
	if j < 2 || !b.cons(j) || b.cons(j-1) || !b.cons(j-2) {
		return false
	}
	switch b.b[j] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

// Measure returns m for the whole word.
func Measure(word string) int {
	b := newBuffer(word)
	return b.measure(b.end())
}
