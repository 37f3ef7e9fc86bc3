package stem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"t", 0},
		{"tr", 0},
		{"ee", 0},
		{"tree", 0},
		{"by", 0},
		{"ya", 0},
		{"trouble", 1},
		{"oats", 1},
		{"trees", 1},
		{"ivy", 1},
		{"cyan", 1},
		{"school", 1},
		{"troubles", 2},
		{"private", 2},
		{"oaten", 2},
		{"orrery", 2},
		{"yellow", 2},
		{"syzygy", 2},
		{"sayyid", 2},
		{"excellent", 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Measure(tt.word), "Measure(%q)", tt.word)
	}
}

func TestPredicates(t *testing.T) {
	b := newBuffer("hopping")
	assert.True(t, b.doubleC(3), "pp")
	assert.False(t, b.doubleC(2))
	assert.False(t, b.doubleC(0))

	assert.True(t, newBuffer("hop").cvc(2))
	assert.False(t, newBuffer("snow").cvc(3), "w")
	assert.False(t, newBuffer("box").cvc(2), "x")
	assert.False(t, newBuffer("tray").cvc(3), "y")
	assert.False(t, newBuffer("ho").cvc(1))

	assert.True(t, newBuffer("sky").vowelIn(2), "y after a consonant is a vowel")
	assert.False(t, newBuffer("sky").vowelIn(1))
	assert.False(t, newBuffer("sky").vowelIn(-1))

	assert.True(t, newBuffer("yes").cons(0), "leading y")
	assert.False(t, newBuffer("toy").cons(1))
	assert.True(t, newBuffer("toy").cons(2), "y after a vowel")
}

func TestBuffer(t *testing.T) {
	b := newBuffer("ponies")
	j, ok := b.suffix("ies")
	assert.True(t, ok)
	assert.Equal(t, 2, j)

	_, ok = b.suffix("sses")
	assert.False(t, ok)
	_, ok = b.suffix("longerthanponies")
	assert.False(t, ok)

	j, ok = b.suffix("ponies")
	assert.True(t, ok)
	assert.Equal(t, -1, j, "whole word match leaves nothing")

	b.replaceTail(2, "i")
	assert.Equal(t, "poni", b.String())
	assert.Equal(t, 3, b.end())

	b.truncate(1)
	assert.Equal(t, "po", b.String())
	_, ok = b.suffix("ni")
	assert.False(t, ok, "letters past the cursor are gone")

	b.replaceTail(1, "nder")
	assert.Equal(t, "ponder", b.String())
}

func TestNewRuleRejectsBadSuffix(t *testing.T) {
	assert.Panics(t, func() { newRule("", "x", nil) })
	assert.Panics(t, func() { newRule("Ing", "", nil) })
	assert.Panics(t, func() { newRule("ing", "e!", nil) })
	assert.NotPanics(t, func() { newRule("ing", "", nil) })
}

func TestStepSelectsFirstMatchingSuffix(t *testing.T) {
	// eed matches and fails m>0, so ed is never tried
	b := newBuffer("feed")
	assert.False(t, step1b.apply(b))
	assert.Equal(t, "feed", b.String())

	// ement matches and fails m>1, so ment and ent are never tried
	b = newBuffer("agreement")
	assert.False(t, step4.apply(b))
	assert.Equal(t, "agreement", b.String())
}

// applies one step and returns the result, for vectors that target a single
// step
func runStep(s step, word string) string {
	b := newBuffer(word)
	s.apply(b)
	return b.String()
}

func TestSteps(t *testing.T) {
	tests := []struct {
		step  step
		input string
		want  string
	}{
		{step1a, "caresses", "caress"},
		{step1a, "ponies", "poni"},
		{step1a, "ties", "ti"},
		{step1a, "caress", "caress"},
		{step1a, "cats", "cat"},

		{step1b, "feed", "feed"},
		{step1b, "agreed", "agree"},
		{step1b, "plastered", "plaster"},
		{step1b, "bled", "bled"},
		{step1b, "motoring", "motor"},
		{step1b, "sing", "sing"},
		{step1b, "conflated", "conflate"},
		{step1b, "troubled", "trouble"},
		{step1b, "sized", "size"},
		{step1b, "hopping", "hop"},
		{step1b, "tanned", "tan"},
		{step1b, "falling", "fall"},
		{step1b, "hissing", "hiss"},
		{step1b, "fizzed", "fizz"},
		{step1b, "failing", "fail"},
		{step1b, "filing", "file"},

		{step1c, "happy", "happi"},
		{step1c, "sky", "sky"},

		{step2, "relational", "relate"},
		{step2, "conditional", "condition"},
		{step2, "rational", "rational"},
		{step2, "valenci", "valence"},
		{step2, "hesitanci", "hesitance"},
		{step2, "digitizer", "digitize"},
		{step2, "conformabli", "conformable"},
		{step2, "radicalli", "radical"},
		{step2, "differentli", "different"},
		{step2, "vileli", "vile"},
		{step2, "analogousli", "analogous"},
		{step2, "vietnamization", "vietnamize"},
		{step2, "predication", "predicate"},
		{step2, "operator", "operate"},
		{step2, "feudalism", "feudal"},
		{step2, "decisiveness", "decisive"},
		{step2, "hopefulness", "hopeful"},
		{step2, "callousness", "callous"},
		{step2, "formaliti", "formal"},
		{step2, "sensitiviti", "sensitive"},
		{step2, "sensibiliti", "sensible"},
		{step2, "archaeologi", "archaeolog"},

		{step3, "triplicate", "triplic"},
		{step3, "formative", "form"},
		{step3, "formalize", "formal"},
		{step3, "electriciti", "electric"},
		{step3, "electrical", "electric"},
		{step3, "hopeful", "hope"},
		{step3, "goodness", "good"},

		{step4, "revival", "reviv"},
		{step4, "allowance", "allow"},
		{step4, "inference", "infer"},
		{step4, "airliner", "airlin"},
		{step4, "gyroscopic", "gyroscop"},
		{step4, "adjustable", "adjust"},
		{step4, "defensible", "defens"},
		{step4, "irritant", "irrit"},
		{step4, "replacement", "replac"},
		{step4, "adjustment", "adjust"},
		{step4, "dependent", "depend"},
		{step4, "adoption", "adopt"},
		{step4, "homologou", "homolog"},
		{step4, "communism", "commun"},
		{step4, "activate", "activ"},
		{step4, "angulariti", "angular"},
		{step4, "homologous", "homolog"},
		{step4, "effective", "effect"},
		{step4, "bowdlerize", "bowdler"},
		{step4, "legion", "legion"},

		{step5a, "probate", "probat"},
		{step5a, "rate", "rate"},
		{step5a, "cease", "ceas"},
		{step5a, "halve", "halv"},

		{step5b, "controll", "control"},
		{step5b, "roll", "roll"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runStep(tt.step, tt.input), "step %s on %q", tt.step.name, tt.input)
	}
}
