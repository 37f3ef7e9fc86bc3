package stem

import "fmt"

// condition guards a rule. j is the index of the last letter left once the
// rule's suffix is removed; -1 means nothing would be left.
type condition func(b *buffer, j int) bool

// rule rewrites a word ending in suffix to end in repl when cond holds.
// then runs after the rewrite, if set.
type rule struct {
	suffix string
	repl   string
	cond   condition
	then   func(b *buffer)
}

// step is an ordered rule list. The first rule whose suffix matches the word
// is selected; the step is over once a rule is selected, whether or not its
// condition held.
type step struct {
	name  string
	rules []rule
}

func newRule(suffix, repl string, cond condition) rule {
	if suffix == "" {
		panic("stem: rule with empty suffix")
	}
	for _, s := range []string{suffix, repl} {
		for i := 0; i < len(s); i++ {
			if s[i] < 'a' || s[i] > 'z' {
				panic(fmt.Sprintf("stem: invalid rule %q -> %q", suffix, repl))
			}
		}
	}
	return rule{suffix: suffix, repl: repl, cond: cond}
}

// withThen attaches a follow-up action to r.
func (r rule) withThen(fn func(b *buffer)) rule {
	r.then = fn
	return r
}

// apply runs the step against b and reports whether a rule rewrote it.
func (s step) apply(b *buffer) bool {
	for _, r := range s.rules {
		j, ok := b.suffix(r.suffix)
		if !ok {
			continue
		}
		if r.cond != nil && !r.cond(b, j) {
			return false
		}
		if r.repl == "" {
			b.truncate(j)
		} else {
			b.replaceTail(j, r.repl)
		}
		if r.then != nil {
			r.then(b)
		}
		return true
	}
	return false
}

// conditions

func mGt0(b *buffer, j int) bool { return b.measure(j) > 0 }

func mGt1(b *buffer, j int) bool { return b.measure(j) > 1 }

func hasVowel(b *buffer, j int) bool { return b.vowelIn(j) }

// precededBy returns a condition that holds when the letter at j is one of
// letters and cond holds.
func precededBy(letters string, cond condition) condition {
	return func(b *buffer, j int) bool {
		if j < 0 {
			return false
		}
		for _, l := range letters {
			if b.at(j) == l {
				return cond(b, j)
			}
		}
		return false
	}
}
