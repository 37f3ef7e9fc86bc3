package stem

import (
	"context"

	"github.com/go-pkgz/syncs"
)

// StemAll stems words with up to workers goroutines and returns the stems in
// input order. It stops early and returns ctx.Err() when ctx is cancelled.
func (s *Stemmer) StemAll(ctx context.Context, words []string, mode Mode, workers int) ([]string, error) {
	if workers < 1 {
		workers = 1
	}
	res := make([]string, len(words))
	if len(words) == 0 {
		return res, ctx.Err()
	}

	chunk := (len(words) + workers - 1) / workers
	grp := syncs.NewSizedGroup(workers, syncs.Context(ctx))
	for start := 0; start < len(words); start += chunk {
		lo, hi := start, min(start+chunk, len(words))
		grp.Go(func(ctx context.Context) {
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return
				}
				res[i] = s.StemMode(words[i], mode)
			}
		})
	}
	grp.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
