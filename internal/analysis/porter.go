// Package analysis plugs the stemmer into bleve as a token filter, so bleve
// index mappings can reference it by name.
package analysis

import (
	"fmt"

	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/registry"

	"github.com/kuandriy/porter-stemmer/internal/stem"
)

// Name is the token filter's registry name.
const Name = "porter_classic"

// StemmerFilter replaces each token's term with its stem. Keyword tokens pass
// through.
type StemmerFilter struct {
	stemmer *stem.Stemmer
	mode    stem.Mode
}

// NewStemmerFilter makes a filter backed by s.
func NewStemmerFilter(s *stem.Stemmer, mode stem.Mode) *StemmerFilter {
	return &StemmerFilter{stemmer: s, mode: mode}
}

// Filter stems input in place.
func (f *StemmerFilter) Filter(input analysis.TokenStream) analysis.TokenStream {
	for _, token := range input {
		if token.KeyWord {
			continue
		}
		token.Term = []byte(f.stemmer.StemMode(string(token.Term), f.mode))
	}
	return input
}

// StemmerFilterConstructor builds a filter from a bleve config map. Optional
// keys: "stopwords", a list of words left unstemmed, and "mode", "full" or
// "plurals".
func StemmerFilterConstructor(config map[string]interface{}, cache *registry.Cache) (analysis.TokenFilter, error) {
	mode := stem.Full
	if v, ok := config["mode"]; ok {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("mode must be a string, got %T", v)
		}
		m, err := stem.ParseMode(s)
		if err != nil {
			return nil, err
		}
		mode = m
	}

	var stopwords []string
	if v, ok := config["stopwords"]; ok {
		list, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("stopwords must be a list, got %T", v)
		}
		for _, w := range list {
			s, ok := w.(string)
			if !ok {
				return nil, fmt.Errorf("stopword must be a string, got %T", w)
			}
			stopwords = append(stopwords, s)
		}
	}

	return NewStemmerFilter(stem.New(stem.WithStopwords(stopwords)), mode), nil
}

// NewAnalyzer returns an analyzer that splits text on unicode word
// boundaries, lowercases each token and stems it with s.
func NewAnalyzer(s *stem.Stemmer, mode stem.Mode) analysis.Analyzer {
	return &analysis.DefaultAnalyzer{
		Tokenizer:    unicode.NewUnicodeTokenizer(),
		TokenFilters: []analysis.TokenFilter{lowercase.NewLowerCaseFilter(), NewStemmerFilter(s, mode)},
	}
}

// Terms runs text through a and returns the resulting terms in order.
func Terms(a analysis.Analyzer, text string) []string {
	ts := a.Analyze([]byte(text))
	res := make([]string, 0, len(ts))
	for _, t := range ts {
		res = append(res, string(t.Term))
	}
	return res
}

func init() {
	registry.RegisterTokenFilter(Name, StemmerFilterConstructor)
}
