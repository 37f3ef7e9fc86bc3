// Package server exposes a Stemmer over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	log "github.com/go-pkgz/lgr"
	R "github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"

	"github.com/kuandriy/porter-stemmer/internal/analysis"
	"github.com/kuandriy/porter-stemmer/internal/stem"
)

const hardBodyLimit = 1024 * 1024 // limit size of body

// Server is a rest access server for a Stemmer
type Server struct {
	Stemmer *stem.Stemmer
	Version string
	Workers int // goroutines per batch request

	httpServer *http.Server
	lock       sync.Mutex
}

type stemRequest struct {
	Words []string `json:"words"`
	Mode  string   `json:"mode"`
}

type analyzeRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

type stopwordsRequest struct {
	Stopwords []string `json:"stopwords"`
}

// Run starts the http server on address and blocks until it stops. The server
// shuts down when ctx is cancelled.
func (s *Server) Run(ctx context.Context, address string) error {
	log.Printf("[INFO] activate http rest server on %s", address)

	s.lock.Lock()
	srv := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
	s.httpServer = srv
	s.lock.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.Shutdown()
		case <-done:
		}
	}()

	err := srv.ListenAndServe()
	log.Printf("[WARN] http server terminated, %s", err)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown rest http server
func (s *Server) Shutdown() {
	log.Print("[WARN] shutdown rest server")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Printf("[DEBUG] http shutdown error, %s", err)
		}
		log.Print("[DEBUG] shutdown http server completed")
	}
}

func (s *Server) routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, R.Recoverer(log.Default()))
	router.Use(middleware.Throttle(1000), middleware.Timeout(30*time.Second))
	router.Use(R.AppInfo("porter-stemmer", "kuandriy", s.Version), R.Ping)
	router.Use(R.SizeLimit(hardBodyLimit))

	router.Route("/api/v1", func(rapi chi.Router) {
		rapi.Use(logger.New(logger.WithBody, logger.Prefix("[DEBUG]")).Handler)
		rapi.Get("/stem/{word}", s.stemCtrl)
		rapi.Post("/stem", s.stemBatchCtrl)
		rapi.Post("/analyze", s.analyzeCtrl)
		rapi.Get("/stopwords", s.stopwordsCtrl)
		rapi.Put("/stopwords", s.setStopwordsCtrl)
	})
	return router
}

// GET /stem/{word}?mode=[full|plurals]
func (s *Server) stemCtrl(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	mode, err := stem.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "bad mode")
		return
	}
	if err = s.check(word); err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, err.Error())
		return
	}
	R.RenderJSON(w, R.JSON{"word": word, "stem": s.Stemmer.StemMode(word, mode), "mode": mode.String()})
}

// POST /stem, body {"words": [...], "mode": "full"}
func (s *Server) stemBatchCtrl(w http.ResponseWriter, r *http.Request) {
	req := stemRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "can't decode request")
		return
	}
	mode, err := stem.ParseMode(req.Mode)
	if err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "bad mode")
		return
	}
	for i, word := range req.Words {
		if err = s.check(word); err != nil {
			R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, fmt.Sprintf("word #%d: %v", i, err))
			return
		}
	}

	stems, err := s.Stemmer.StemAll(r.Context(), req.Words, mode, s.Workers)
	if err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusServiceUnavailable, err, "stemming interrupted")
		return
	}
	R.RenderJSON(w, R.JSON{"stems": stems, "mode": mode.String()})
}

// POST /analyze, body {"text": "...", "mode": "full"}
// text is split on word boundaries and lowercased before stemming
func (s *Server) analyzeCtrl(w http.ResponseWriter, r *http.Request) {
	req := analyzeRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "can't decode request")
		return
	}
	mode, err := stem.ParseMode(req.Mode)
	if err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "bad mode")
		return
	}
	terms := analysis.Terms(analysis.NewAnalyzer(s.Stemmer, mode), req.Text)
	R.RenderJSON(w, R.JSON{"terms": terms, "mode": mode.String()})
}

// check passes stopwords as is, they come back verbatim whatever they hold
func (s *Server) check(word string) error {
	if s.Stemmer.IsStopword(word) {
		return nil
	}
	return stem.Check(word)
}

// GET /stopwords
func (s *Server) stopwordsCtrl(w http.ResponseWriter, _ *http.Request) {
	R.RenderJSON(w, R.JSON{"stopwords": s.Stemmer.Stopwords()})
}

// PUT /stopwords, body {"stopwords": [...]}, replaces the whole set
func (s *Server) setStopwordsCtrl(w http.ResponseWriter, r *http.Request) {
	req := stopwordsRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		R.SendErrorJSON(w, r, log.Default(), http.StatusBadRequest, err, "can't decode request")
		return
	}
	s.Stemmer.SetStopwords(req.Stopwords)
	log.Printf("[INFO] stopwords replaced from %s", r.RemoteAddr)
	R.RenderJSON(w, R.JSON{"count": len(s.Stemmer.Stopwords())})
}
