// Package viewer serves a read-only HTTP browser over a capability tree.
package viewer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/kirides/dxcaps/captree"
	"github.com/kirides/dxcaps/fields"
)

var errBadPath = errors.New("bad node path")

// Server exposes the tree as JSON under /api and as HTML pages.
type Server struct {
	root   *captree.Node
	worker *Worker
	view   fields.View
	log    zerolog.Logger
}

type Option func(*Server)

func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithView sets the view used when a request does not name one.
func WithView(v fields.View) Option {
	return func(s *Server) { s.view = v }
}

// New serves root. Every tree access goes through worker.
func New(root *captree.Node, worker *Worker, opts ...Option) *Server {
	s := &Server{root: root, worker: worker, view: fields.ViewInteresting, log: zerolog.Nop()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", s.page)
	r.Get("/node/*", s.page)
	r.Route("/api", func(r chi.Router) {
		r.Get("/tree", s.tree)
		r.Get("/node", s.node)
		r.Get("/node/*", s.node)
	})
	return r
}

// Serve listens on addr until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", addr).Msg("viewer listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}

func (s *Server) viewOf(r *http.Request) fields.View {
	if v := r.URL.Query().Get("view"); v != "" {
		return fields.ParseView(v)
	}
	return s.view
}

// parsePath turns "0/2/1" into child indices.
func parsePath(p string) ([]int, error) {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil, nil
	}
	parts := strings.Split(p, "/")
	out := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, errBadPath
		}
		out[i] = n
	}
	return out, nil
}

func formatPath(indices []int) string {
	parts := make([]string, len(indices))
	for i, n := range indices {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, "/")
}

type childJSON struct {
	Path     string `json:"path"`
	Label    string `json:"label"`
	HasTable bool   `json:"has_table"`
}

type nodeJSON struct {
	Path     string        `json:"path"`
	Label    string        `json:"label"`
	Trail    []childJSON   `json:"trail"`
	Table    *fields.Table `json:"table,omitempty"`
	Children []childJSON   `json:"children"`
}

type outlineJSON struct {
	Path     string        `json:"path"`
	Label    string        `json:"label"`
	Children []outlineJSON `json:"children,omitempty"`
}

// lookup resolves the node at indices, its trail and its table on the
// worker thread.
func (s *Server) lookup(ctx context.Context, indices []int, view fields.View) (nodeJSON, bool, error) {
	var (
		out   nodeJSON
		found bool
	)
	err := s.worker.Do(ctx, func() {
		n := s.root
		trail := []childJSON{{Path: "", Label: n.Label, HasTable: n.HasTable()}}
		for i := range indices {
			if n = n.Child(indices[i]); n == nil {
				return
			}
			trail = append(trail, childJSON{Path: formatPath(indices[:i+1]), Label: n.Label, HasTable: n.HasTable()})
		}
		found = true
		out = nodeJSON{Path: formatPath(indices), Label: n.Label, Trail: trail, Children: []childJSON{}}
		if t, ok := n.Table(view); ok {
			out.Table = &t
		}
		for i, c := range n.Children {
			p := append(append([]int(nil), indices...), i)
			out.Children = append(out.Children, childJSON{Path: formatPath(p), Label: c.Label, HasTable: c.HasTable()})
		}
	})
	return out, found, err
}

func (s *Server) node(w http.ResponseWriter, r *http.Request) {
	indices, err := parsePath(chi.URLParam(r, "*"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	n, found, err := s.lookup(r.Context(), indices, s.viewOf(r))
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if !found {
		writeJSONError(w, http.StatusNotFound, "node not found")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// tree returns the labels of the whole tree without resolving tables.
func (s *Server) tree(w http.ResponseWriter, r *http.Request) {
	var out outlineJSON
	err := s.worker.Do(r.Context(), func() {
		out = outline(s.root, nil)
	})
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func outline(n *captree.Node, indices []int) outlineJSON {
	o := outlineJSON{Path: formatPath(indices), Label: n.Label}
	for i, c := range n.Children {
		o.Children = append(o.Children, outline(c, append(append([]int(nil), indices...), i)))
	}
	return o
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
