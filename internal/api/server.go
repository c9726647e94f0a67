package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/peircelab/peirce/pkg/cache"
	"github.com/peircelab/peirce/pkg/errors"
	"github.com/peircelab/peirce/pkg/graph"
	"github.com/peircelab/peirce/pkg/render"
	"github.com/peircelab/peirce/pkg/rules"
	"github.com/peircelab/peirce/pkg/session"
)

// Server bundles the dependencies of the HTTP handlers.
type Server struct {
	store  session.Store
	cache  cache.Cache
	logger *log.Logger
}

// NewServer creates a server over the given session store and render cache.
func NewServer(store session.Store, c cache.Cache, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: store, cache: c, logger: logger}
}

// Router builds the chi router with all v1 routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/parse", s.handleParse)
		r.Post("/find", s.handleFind)
		r.Post("/apply", s.handleApply)
		r.Post("/render", s.handleRender)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleSessionCreate)
			r.Get("/", s.handleSessionList)
			r.Get("/{id}", s.handleSessionGet)
			r.Delete("/{id}", s.handleSessionDelete)
			r.Post("/{id}/apply", s.handleSessionApply)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

// ---------------------------------------------------------------------------
// Request and response bodies
// ---------------------------------------------------------------------------

type parseRequest struct {
	Graph string `json:"graph"`
}

type parseResponse struct {
	Canonical string   `json:"canonical"`
	Atoms     []string `json:"atoms"`
	Children  int      `json:"children"`
	Size      int      `json:"size"`
}

type findRequest struct {
	Graph string `json:"graph"`
	Rule  string `json:"rule"`
}

type findResponse struct {
	Rule      string   `json:"rule"`
	Addresses []string `json:"addresses"`
}

type applyRequest struct {
	Graph   string `json:"graph"`
	Rule    string `json:"rule"`
	Address string `json:"address"`
}

type applyResponse struct {
	Result string `json:"result"`
}

type renderRequest struct {
	Graph  string `json:"graph"`
	Format string `json:"format"` // "dot", "svg" or "png"
	Shaded bool   `json:"shaded"`
}

type sessionCreateRequest struct {
	Premise string `json:"premise"`
}

type sessionApplyRequest struct {
	Rule    string `json:"rule"`
	Address string `json:"address"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := graph.Parse(req.Graph)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, parseResponse{
		Canonical: g.String(),
		Atoms:     g.Atoms,
		Children:  g.NumChildren(),
		Size:      g.Size(),
	})
}

func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	var req findRequest
	if !s.decode(w, r, &req) {
		return
	}
	rule, err := rules.ParseRule(req.Rule)
	if err != nil {
		s.writeError(w, err)
		return
	}
	g, err := graph.Parse(req.Graph)
	if err != nil {
		s.writeError(w, err)
		return
	}
	addrs, err := rules.Find(rule, g)
	if err != nil {
		s.writeError(w, err)
		return
	}
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	s.writeJSON(w, http.StatusOK, findResponse{Rule: string(rule), Addresses: out})
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !s.decode(w, r, &req) {
		return
	}
	result, err := s.applyRule(req.Graph, req.Rule, req.Address)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, applyResponse{Result: result})
}

func (s *Server) applyRule(text, ruleName, address string) (string, error) {
	rule, err := rules.ParseRule(ruleName)
	if err != nil {
		return "", err
	}
	g, err := graph.Parse(text)
	if err != nil {
		return "", err
	}
	addr, err := graph.ParseAddress(address)
	if err != nil {
		return "", err
	}
	result, err := rules.Apply(rule, g, addr)
	if err != nil {
		return "", err
	}
	return result.String(), nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := graph.Parse(req.Graph)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := strings.ToLower(req.Format)
	if format == "" {
		format = "svg"
	}
	dot := render.ToDOT(g, render.Options{Shaded: req.Shaded})
	if format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz")
		_, _ = w.Write([]byte(dot))
		return
	}

	key := cache.DiagramKey(g.String(), format, req.Shaded)
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", contentType(format))
		_, _ = w.Write(data)
		return
	}

	var data []byte
	switch format {
	case "svg":
		data, err = render.RenderSVG(dot)
	case "png":
		data, err = render.RenderPNG(dot)
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "unsupported render format %q", req.Format))
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, data, 24*time.Hour); err != nil {
		s.logger.Warn("failed to cache diagram", "error", err)
	}

	w.Header().Set("Content-Type", contentType(format))
	_, _ = w.Write(data)
}

func contentType(format string) string {
	switch format {
	case "png":
		return "image/png"
	default:
		return "image/svg+xml"
	}
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	var req sessionCreateRequest
	if !s.decode(w, r, &req) {
		return
	}
	g, err := graph.Parse(req.Premise)
	if err != nil {
		s.writeError(w, err)
		return
	}
	sess := session.New(g.String())
	if err := s.store.Put(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleSessionList(w http.ResponseWriter, r *http.Request) {
	all, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if all == nil {
		all = []*session.Session{}
	}
	s.writeJSON(w, http.StatusOK, all)
}

func (s *Server) handleSessionGet(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSessionDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSessionApply(w http.ResponseWriter, r *http.Request) {
	var req sessionApplyRequest
	if !s.decode(w, r, &req) {
		return
	}
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.applyRule(sess.Current, req.Rule, req.Address)
	if err != nil {
		s.writeError(w, err)
		return
	}

	addr, _ := graph.ParseAddress(req.Address)
	sess.Record(req.Rule, addr, result)
	if err := s.store.Put(r.Context(), sess); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sess)
}

// ---------------------------------------------------------------------------
// Encoding helpers
// ---------------------------------------------------------------------------

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeMalformedInput, err, "invalid request body"))
		return false
	}
	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "error", err)
	}
	s.writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

// statusFor maps error codes onto HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeMalformedInput,
		errors.ErrCodeInvalidAddress,
		errors.ErrCodeInvalidRule,
		errors.ErrCodeInvalidAtom,
		errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
