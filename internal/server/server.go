// Copyright 2024 The go-choropleth Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves a choropleth map over HTTP: the styled
// features and scale configuration for browser map layers, and
// server-rendered SVG maps and PNG legends.
package server

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/dluhc/go-choropleth/choropleth"
	"github.com/dluhc/go-choropleth/colorscale"
	"github.com/dluhc/go-choropleth/legend"
)

const maxImageSize = 4096

//go:embed static
var staticFiles embed.FS

type Server struct {
	m       *choropleth.Map
	log     zerolog.Logger
	origins []string
}

// New returns a server for m. origins lists the origins allowed by
// CORS; if empty, cross-origin requests are not allowed.
func New(m *choropleth.Map, log zerolog.Logger, origins []string) *Server {
	return &Server{m: m, log: log, origins: origins}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(hlog.NewHandler(s.log))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", d).
			Msg("request")
	}))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(func(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) })
	if len(s.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.origins,
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	sub, _ := fs.Sub(staticFiles, "static")
	r.Handle("/", http.FileServer(http.FS(sub)))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/hideout", s.handleHideout)
	r.Get("/features", s.handleFeatures)
	r.Get("/map.svg", s.handleSVG)
	r.Get("/legend", s.handleLegend)
	r.Get("/legend.png", s.handleLegendPNG)
	return r
}

type hideout struct {
	colorscale.Config
	HoverStyle colorscale.Style `json:"hoverStyle"`
}

func (s *Server) handleHideout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, hideout{s.m.Config(), colorscale.HoverStyle()})
}

func (s *Server) handleFeatures(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.m.Styled().Encode(&buf); err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.Write(buf.Bytes())
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	width, height, ok := s.size(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()
	opts := choropleth.RenderOptions{
		Width:    width,
		Height:   height,
		Minify:   queryBool(q.Get("minify")),
		NoLegend: q.Get("legend") != "" && !queryBool(q.Get("legend")),
	}
	var buf bytes.Buffer
	if err := s.m.WriteSVG(&buf, opts); err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	cb, err := s.m.Legend()
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, cb)
}

func (s *Server) handleLegendPNG(w http.ResponseWriter, r *http.Request) {
	cb, err := s.m.Legend()
	if err != nil {
		s.fail(w, r, http.StatusNotFound, err)
		return
	}
	width, height, ok := s.size(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := cb.PNG(&buf, s.m.Gradient(), legend.PNGOptions{Width: width, Height: height}); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// size parses the optional width and height query parameters. It
// writes an error response and returns ok false if either is bad.
func (s *Server) size(w http.ResponseWriter, r *http.Request) (width, height int, ok bool) {
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &width}, {"height", &height}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > maxImageSize {
			http.Error(w, "bad "+p.name, http.StatusBadRequest)
			return 0, 0, false
		}
		*p.dst = n
	}
	return width, height, true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	hlog.FromRequest(r).Error().Err(err).Int("status", status).Msg("request failed")
	writeJSON(w, status, errResp{err.Error()})
}

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func queryBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
