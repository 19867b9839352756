// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"cogentcore.org/webgl/base/errors"
	"cogentcore.org/webgl/base/fsx"
	"cogentcore.org/webgl/base/websocket"
	"cogentcore.org/webgl/config"
)

// Server is the development server for the app. It renders index.html
// from the current configuration and serves the built files from the
// output directory.
type Server struct {
	Config *config.Config

	// Hub has the live reload connections.
	Hub *websocket.Hub

	mux *http.ServeMux
}

// NewServer returns a new [Server] for the given configuration.
func NewServer(c *config.Config) *Server {
	s := &Server{Config: c, Hub: websocket.NewHub(), mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.serveIndex)
	s.mux.HandleFunc("GET /"+AppWasm, s.serveFile(AppWasm))
	s.mux.HandleFunc("GET /"+WasmExec, s.serveFile(WasmExec))
	s.mux.Handle("GET "+ReloadPath, s.Hub)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	b, err := MakeIndexHTML(s.Config, s.Config.Serve.Watch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(b)
}

func (s *Server) serveFile(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := filepath.Join(s.Config.Build.Output, name)
		if ok, err := fsx.FileExists(file); err != nil || !ok {
			http.Error(w, name+" has not been built", http.StatusServiceUnavailable)
			return
		}
		if name == AppWasm {
			w.Header().Set("Content-Type", "application/wasm")
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Cache-Control", "no-cache")
		http.ServeFile(w, r, file)
	}
}

// Reload tells every connected page to reload, returning how many
// pages were told.
func (s *Server) Reload() int {
	n := s.Hub.Broadcast(websocket.TextMessage, []byte(config.ReloadMessage))
	slog.Info("web: reloading pages", "pages", n)
	return n
}

// Serve builds the app and serves it at [config.Serve.Addr] until the
// context is done. With [config.Serve.Watch], the app is rebuilt and
// the pages reloaded when a .go file changes.
func Serve(ctx context.Context, c *config.Config) error {
	if err := Build(c); err != nil {
		return err
	}
	s := NewServer(c)
	srv := &http.Server{Addr: c.Serve.Addr, Handler: logRequests(s)}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if c.Serve.Watch {
		w := &Watcher{
			Dirs:     []string{"."},
			Skip:     []string{c.Build.Output},
			Debounce: time.Duration(c.Serve.Debounce),
			Rebuild:  func() error { return BuildWasm(c) },
			Reload:   func() { s.Reload() },
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Error("web: watcher stopped", "err", err)
			}
		}()
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("web: serving", "url", "http://"+c.Serve.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	slog.Info("web: shutting down server")
	s.Hub.Close()
	sctx, scancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer scancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("web: request", "method", r.Method, "path", r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
