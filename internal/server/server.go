// Package server serves the site over HTTP, drives the navigation socket and,
// in watch mode, reloads the site and connected browsers on file changes.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"mernsite/internal/contact"
	"mernsite/internal/site"
)

// Loader builds a fresh site snapshot. It is called once at start and again
// after every change in watch mode.
type Loader func() (*site.Site, error)

type Options struct {
	Port  int
	Watch bool
	// WatchPaths are the files and directories watched in watch mode.
	WatchPaths []string
	// Sink receives contact submissions. Defaults to a LogSink.
	Sink contact.Sink
}

// Server holds the current site snapshot. Handlers take the snapshot once per
// request so a reload never mixes two versions in one response.
type Server struct {
	mu   sync.RWMutex
	site *site.Site

	sink contact.Sink
	hub  *Hub
	now  func() time.Time
}

// New returns a server for st. A nil sink logs submissions.
func New(st *site.Site, sink contact.Sink) *Server {
	if sink == nil {
		sink = contact.LogSink{}
	}
	return &Server{site: st, sink: sink, now: time.Now}
}

// Site returns the current snapshot.
func (s *Server) Site() *site.Site {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.site
}

// SetSite swaps in a new snapshot.
func (s *Server) SetSite(st *site.Site) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.site = st
}

// EnableLiveReload adds the /ws/reload endpoint and script injection to the
// handler. Call it before Handler.
func (s *Server) EnableLiveReload() *Hub {
	if s.hub == nil {
		s.hub = newHub()
	}
	return s.hub
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Websockets stay outside the compress and timeout middleware.
	r.Get("/ws/nav", s.serveNav)
	if s.hub != nil {
		r.Get("/ws/reload", s.hub.ServeHTTP)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))
		r.Use(middleware.Timeout(30 * time.Second))
		if s.hub != nil {
			r.Use(liveReloadWrapper)
		}

		r.Handle("/static/*", http.HandlerFunc(s.handleStatic))

		r.Get("/", s.handleHome)
		r.Get("/about", s.handleAbout)
		r.Get("/service", s.handleServices)
		r.Get("/service/{slug}", s.handleService)
		r.Get("/project", s.handleProjects)
		r.Get("/blog", s.handleBlogList)
		r.Get("/blog/page/{n}", s.handleBlogPage)
		r.Get("/blog/{slug}", s.handleBlogPost)
		r.Get("/contact", s.handleContact)
		r.Post("/contact", s.handleContactSubmit)

		r.NotFound(s.handleNotFound)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, load Loader, opts Options) error {
	st, err := load()
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}
	srv := New(st, opts.Sink)

	if opts.Watch {
		srv.EnableLiveReload()
		watcher, err := newWatcher(opts.WatchPaths)
		if err != nil {
			return err
		}
		defer watcher.Close()
		go srv.watchForChanges(ctx, watcher, load)
	}

	addr := fmt.Sprintf(":%d", opts.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      45 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Serving site on http://localhost%s\n", addr)
		fmt.Println("Press Ctrl+C to stop")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if srv.hub != nil {
		srv.hub.closeAll()
	}
	return nil
}
