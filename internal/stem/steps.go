package stem

// step1a gets rid of plurals:
//
//	caresses -> caress, ponies -> poni, caress -> caress, cats -> cat
var step1a = step{name: "1a", rules: []rule{
	newRule("sses", "ss", nil),
	newRule("ies", "i", nil),
	newRule("ss", "ss", nil),
	newRule("s", "", nil),
}}

// step1b gets rid of -eed, -ed and -ing:
//
//	agreed -> agree, feed -> feed, plastered -> plaster, motoring -> motor,
//	hopping -> hop, filing -> file, falling -> fall
var step1b = step{name: "1b", rules: []rule{
	newRule("eed", "ee", mGt0),
	newRule("ed", "", hasVowel).withThen(tidy1b),
	newRule("ing", "", hasVowel).withThen(tidy1b),
}}

var step1bRestore = step{name: "1b*", rules: []rule{
	newRule("at", "ate", nil),
	newRule("bl", "ble", nil),
	newRule("iz", "ize", nil),
}}

// tidy1b repairs a stem left behind by -ed or -ing.
func tidy1b(b *buffer) {
	if step1bRestore.apply(b) {
		return
	}
	k := b.end()
	switch {
	case b.doubleC(k):
		if c := b.at(k); c != 'l' && c != 's' && c != 'z' {
			b.truncate(k - 1)
		}
	case b.measure(k) == 1 && b.cvc(k):
		b.replaceTail(k, "e")
	}
}

// step1c turns a terminal y into i when there is another vowel in the stem.
var step1c = step{name: "1c", rules: []rule{
	newRule("y", "i", hasVowel),
}}

// step2 maps double suffixes to single ones, so -ization (-ize plus -ation)
// maps to -ize.
var step2 = step{name: "2", rules: []rule{
	newRule("ational", "ate", mGt0),
	newRule("tional", "tion", mGt0),
	newRule("enci", "ence", mGt0),
	newRule("anci", "ance", mGt0),
	newRule("izer", "ize", mGt0),
	newRule("bli", "ble", mGt0),
	newRule("alli", "al", mGt0),
	newRule("entli", "ent", mGt0),
	newRule("eli", "e", mGt0),
	newRule("ousli", "ous", mGt0),
	newRule("ization", "ize", mGt0),
	newRule("ation", "ate", mGt0),
	newRule("ator", "ate", mGt0),
	newRule("alism", "al", mGt0),
	newRule("iveness", "ive", mGt0),
	newRule("fulness", "ful", mGt0),
	newRule("ousness", "ous", mGt0),
	newRule("aliti", "al", mGt0),
	newRule("iviti", "ive", mGt0),
	newRule("biliti", "ble", mGt0),
	newRule("logi", "log", mGt0),
}}

// step3 deals with -ic-, -full, -ness etc.
var step3 = step{name: "3", rules: []rule{
	newRule("icate", "ic", mGt0),
	newRule("ative", "", mGt0),
	newRule("alize", "al", mGt0),
	newRule("iciti", "ic", mGt0),
	newRule("ical", "ic", mGt0),
	newRule("ful", "", mGt0),
	newRule("ness", "", mGt0),
}}

// step4 takes off -ant, -ence etc. in context <c>vcvc<v>.
var step4 = step{name: "4", rules: []rule{
	newRule("al", "", mGt1),
	newRule("ance", "", mGt1),
	newRule("ence", "", mGt1),
	newRule("er", "", mGt1),
	newRule("ic", "", mGt1),
	newRule("able", "", mGt1),
	newRule("ible", "", mGt1),
	newRule("ant", "", mGt1),
	newRule("ement", "", mGt1),
	newRule("ment", "", mGt1),
	newRule("ent", "", mGt1),
	newRule("ion", "", precededBy("st", mGt1)),
	newRule("ou", "", mGt1),
	newRule("ism", "", mGt1),
	newRule("ate", "", mGt1),
	newRule("iti", "", mGt1),
	newRule("ous", "", mGt1),
	newRule("ive", "", mGt1),
	newRule("ize", "", mGt1),
}}

// step5a removes a final -e when m > 1, or when m = 1 and the stem does not
// end cvc.
var step5a = step{name: "5a", rules: []rule{
	newRule("e", "", func(b *buffer, j int) bool {
		m := b.measure(j)
		return m > 1 || m == 1 && !b.cvc(j)
	}),
}}

// step5b changes -ll to -l when m > 1.
var step5b = step{name: "5b", rules: []rule{
	newRule("l", "", func(b *buffer, j int) bool {
		return b.doubleC(j+1) && b.measure(j) > 1
	}),
}}

var (
	allSteps    = []step{step1a, step1b, step1c, step2, step3, step4, step5a, step5b}
	pluralSteps = []step{step1a, step5a, step5b}
)
