package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/hashicorp/go-multierror"

	"github.com/kuandriy/porter-stemmer/internal/analysis"
	"github.com/kuandriy/porter-stemmer/internal/persist"
	"github.com/kuandriy/porter-stemmer/internal/stem"
)

// StemCommand set of flags and command for stemming words
type StemCommand struct {
	Plurals   bool          `long:"plurals" description:"strip plurals and a trailing e only"`
	Stopwords []string      `long:"stopwords" env:"STOPWORDS" env-delim:"," description:"stopword file, json array or one word per line"`
	Workers   int           `long:"workers" default:"4" description:"stemming goroutines"`
	Cache     int           `long:"cache" default:"0" description:"stem cache size, 0 disables"`
	Timeout   time.Duration `long:"timeout" default:"5m" description:"timeout for the whole run, 0 for none"`
	Text      bool          `long:"text" description:"treat input as free text, split into words and lowercased"`
	JSON      bool          `long:"json" description:"print word/stem pairs as json"`
	Output    string        `short:"o" long:"output" description:"save word/stem pairs to a json file"`

	stdin  io.Reader
	stdout io.Writer
}

type stemPair struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

// Execute is the entry point for "stem" command, called by flag parser
func (c *StemCommand) Execute(args []string) error {
	if c.Text {
		return c.executeText(args)
	}
	words := normalize(args)
	if len(args) == 0 {
		lines, err := readLines(c.in())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		words = normalize(lines)
	}
	if err := checkWords(words); err != nil {
		return err
	}

	stopwords, err := persist.LoadWords(c.Stopwords...)
	if err != nil {
		return fmt.Errorf("failed to load stopwords: %w", err)
	}
	mode := c.mode()
	stemmer := stem.New(stem.WithStopwords(stopwords), stem.WithCache(c.Cache))

	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	stems, err := stemmer.StemAll(ctx, words, mode, c.Workers)
	if err != nil {
		return fmt.Errorf("failed to stem %d words: %w", len(words), err)
	}
	pairs := make([]stemPair, len(words))
	for i := range words {
		pairs[i] = stemPair{Word: words[i], Stem: stems[i]}
	}
	log.Printf("[DEBUG] stemmed %d words, mode %s, cache %+v", len(words), mode, stemmer.CacheStat())

	if c.Output != "" {
		if err = persist.SaveAtomic(c.Output, pairs); err != nil {
			return fmt.Errorf("failed to save %s: %w", c.Output, err)
		}
		log.Printf("[INFO] saved %d stems to %s", len(pairs), c.Output)
	}
	return c.print(pairs)
}

// executeText runs arguments, or the whole of stdin, through the text analyzer
// and prints one stemmed term per line
func (c *StemCommand) executeText(args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(c.in())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	stopwords, err := persist.LoadWords(c.Stopwords...)
	if err != nil {
		return fmt.Errorf("failed to load stopwords: %w", err)
	}
	stemmer := stem.New(stem.WithStopwords(stopwords), stem.WithCache(c.Cache))
	terms := analysis.Terms(analysis.NewAnalyzer(stemmer, c.mode()), text)
	log.Printf("[DEBUG] analyzed %d bytes into %d terms", len(text), len(terms))

	if c.Output != "" {
		if err = persist.SaveAtomic(c.Output, terms); err != nil {
			return fmt.Errorf("failed to save %s: %w", c.Output, err)
		}
		log.Printf("[INFO] saved %d terms to %s", len(terms), c.Output)
	}
	if c.JSON {
		enc := json.NewEncoder(c.out())
		enc.SetIndent("", "  ")
		return enc.Encode(terms)
	}
	w := bufio.NewWriter(c.out())
	for _, t := range terms {
		if _, err = fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *StemCommand) mode() stem.Mode {
	if c.Plurals {
		return stem.Plurals
	}
	return stem.Full
}

func (c *StemCommand) print(pairs []stemPair) error {
	if c.JSON {
		enc := json.NewEncoder(c.out())
		enc.SetIndent("", "  ")
		return enc.Encode(pairs)
	}
	w := bufio.NewWriter(c.out())
	for _, p := range pairs {
		if _, err := fmt.Fprintln(w, p.Stem); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (c *StemCommand) in() io.Reader {
	if c.stdin == nil {
		return os.Stdin
	}
	return c.stdin
}

func (c *StemCommand) out() io.Writer {
	if c.stdout == nil {
		return os.Stdout
	}
	return c.stdout
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// normalize trims and lowercases words, dropping blanks
func normalize(words []string) []string {
	res := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			res = append(res, w)
		}
	}
	return res
}

// checkWords reports every word the stemmer can't take
func checkWords(words []string) error {
	var errs *multierror.Error
	for _, w := range words {
		if err := stem.Check(w); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%q: %w", w, err))
		}
	}
	return errs.ErrorOrNil()
}
