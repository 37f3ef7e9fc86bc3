// Package stem implements the Porter suffix-stripping stemmer for English,
// with a replaceable set of stopwords that are returned unchanged.
package stem

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/go-pkgz/lcw"
	log "github.com/go-pkgz/lgr"
)

// MaxWordLen is the longest word Check accepts, in runes.
const MaxWordLen = 254

var (
	// ErrTooLong is returned by Check for words longer than MaxWordLen.
	ErrTooLong = errors.New("word too long")
	// ErrNotLowercase is returned by Check for words with runes outside a-z.
	ErrNotLowercase = errors.New("word must be lowercase a-z")
)

// Mode selects which steps run.
type Mode int

const (
	// Full runs every step, 1a through 5b.
	Full Mode = iota
	// Plurals runs step 1a, then 5a and 5b. It strips plurals and a trailing e
	// and leaves other suffixes alone.
	Plurals
)

func (m Mode) steps() []step {
	if m == Plurals {
		return pluralSteps
	}
	return allSteps
}

func (m Mode) String() string {
	if m == Plurals {
		return "plurals"
	}
	return "full"
}

// ParseMode maps "full" (or "") and "plurals" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "full":
		return Full, nil
	case "plurals":
		return Plurals, nil
	}
	return Full, fmt.Errorf("unknown mode %q", s)
}

// Stemmer stems words, skipping those in its stopword set. It is safe for
// concurrent use, including SetStopwords racing with Stem.
type Stemmer struct {
	stopwords *StopwordSet
	cache     lcw.LoadingCache
}

// Option configures a Stemmer.
type Option func(s *Stemmer)

// WithCache keeps up to size recent stems in an LRU cache. size <= 0 disables
// caching, which is the default.
func WithCache(size int) Option {
	return func(s *Stemmer) {
		if size <= 0 {
			s.cache = lcw.NewNopCache()
			return
		}
		c, err := lcw.NewLruCache(lcw.MaxKeys(size))
		if err != nil {
			log.Printf("[WARN] can't make stem cache of %d, caching disabled: %v", size, err)
			s.cache = lcw.NewNopCache()
			return
		}
		s.cache = c
	}
}

// WithStopwords sets the initial stopword set.
func WithStopwords(words []string) Option {
	return func(s *Stemmer) {
		s.stopwords.Replace(words)
	}
}

// New makes a Stemmer with an empty stopword set.
func New(opts ...Option) *Stemmer {
	s := &Stemmer{
		stopwords: &StopwordSet{},
		cache:     lcw.NewNopCache(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stem returns the stem of word. Empty words and stopwords come back as is.
func (s *Stemmer) Stem(word string) string {
	return s.StemMode(word, Full)
}

// StemPlurals is Stem restricted to the Plurals mode.
func (s *Stemmer) StemPlurals(word string) string {
	return s.StemMode(word, Plurals)
}

// StemMode stems word running the steps of mode.
func (s *Stemmer) StemMode(word string, mode Mode) string {
	if word == "" || s.stopwords.Contains(word) {
		return word
	}
	// a non-stopword's stem never depends on the stopword set, so cached
	// entries survive SetStopwords
	v, err := s.cache.Get(mode.String()+":"+word, func() (lcw.Value, error) {
		return stemWord(word, mode.steps()), nil
	})
	if err != nil {
		return stemWord(word, mode.steps())
	}
	return v.(string)
}

// SetStopwords replaces the stopword set with words.
func (s *Stemmer) SetStopwords(words []string) {
	s.stopwords.Replace(words)
	log.Printf("[DEBUG] stopwords replaced, %d words", s.stopwords.Len())
}

// Stopwords returns the current stopwords, sorted.
func (s *Stemmer) Stopwords() []string {
	return s.stopwords.Words()
}

// IsStopword reports whether word is currently a stopword.
func (s *Stemmer) IsStopword(word string) bool {
	return s.stopwords.Contains(word)
}

// CacheStat returns hit and miss counters of the stem cache.
func (s *Stemmer) CacheStat() lcw.CacheStat {
	return s.cache.Stat()
}

// stemWord runs steps over word. Words of one or two letters are left alone.
func stemWord(word string, steps []step) string {
	b := newBuffer(word)
	if b.len() <= 2 {
		return word
	}
	for _, st := range steps {
		st.apply(b)
	}
	return b.String()
}

// Check reports whether word is in the domain the stemmer is defined on:
// lowercase a-z, at most MaxWordLen letters. Stem does not call it.
func Check(word string) error {
	if n := utf8.RuneCountInString(word); n > MaxWordLen {
		return fmt.Errorf("%w: %d letters, max %d", ErrTooLong, n, MaxWordLen)
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return fmt.Errorf("%w: %q", ErrNotLowercase, word)
		}
	}
	return nil
}
