// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rotisserie/eris"
)

//go:embed templates/*.tmpl
var templates embed.FS

var indexTmpl = template.Must(template.ParseFS(templates, "templates/index.html.tmpl"))

// Server serves the checkout API.
type Server struct {
	cfg      Config
	logger   *slog.Logger
	mux      *http.ServeMux
	upgrader websocket.Upgrader
}

// New validates cfg and wires the routes. A nil logger discards output.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		cfg:    cfg,
		logger: logger,
		mux:    http.NewServeMux(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/checkout", s.handleCheckout)
	s.mux.HandleFunc("/api/chart", s.handleChart)
	s.mux.HandleFunc("/api/qr", s.handleQR)
	s.mux.HandleFunc("/ws", s.handleWS)
	return s, nil
}

// Handler returns the routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	return requestLogger(s.logger, s.mux)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr, "darts", s.cfg.MaxDarts)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server: listen")
		}
		return nil
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(sctx); err != nil {
		return eris.Wrap(err, "server: shutdown")
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]any{
		"Doubles": s.cfg.Preferences.FavoriteDoubles,
		"Triples": s.cfg.Preferences.FavoriteTriples,
		"Darts":   s.cfg.MaxDarts,
	}
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("index render", "err", err)
		http.Error(w, template.HTMLEscapeString(err.Error()), http.StatusInternalServerError)
	}
}
