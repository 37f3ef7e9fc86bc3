package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/go-pkgz/lgr"

	"github.com/kuandriy/porter-stemmer/internal/persist"
	"github.com/kuandriy/porter-stemmer/internal/server"
	"github.com/kuandriy/porter-stemmer/internal/stem"
)

// ServeCommand with command line flags and env
type ServeCommand struct {
	Listen    string   `long:"listen" env:"LISTEN" default:"127.0.0.1:8080" description:"listen address"`
	Stopwords []string `long:"stopwords" env:"STOPWORDS" env-delim:"," description:"stopword file, json array or one word per line"`
	Cache     int      `long:"cache" env:"CACHE" default:"10000" description:"stem cache size, 0 disables"`
	Workers   int      `long:"workers" env:"WORKERS" default:"4" description:"goroutines per batch request"`

	Revision string `no-flag:"true"`
}

// Execute is the entry point for "serve" command, called by flag parser
func (s *ServeCommand) Execute(_ []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return s.run(ctx)
}

func (s *ServeCommand) run(ctx context.Context) error {
	log.Printf("[INFO] start server on %s, revision %s", s.Listen, s.Revision)
	stopwords, err := persist.LoadWords(s.Stopwords...)
	if err != nil {
		return fmt.Errorf("failed to load stopwords: %w", err)
	}
	stemmer := stem.New(stem.WithStopwords(stopwords), stem.WithCache(s.Cache))
	log.Printf("[INFO] loaded %d stopwords", len(stemmer.Stopwords()))

	srv := &server.Server{Stemmer: stemmer, Version: s.Revision, Workers: s.Workers}
	if err = srv.Run(ctx, s.Listen); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
