// Package httpapi serves a read-only view of a single loaded graph
// snapshot over HTTP, for the `serve` CLI subcommand. Routing and
// request-ID middleware follow the teacher's cobra-adjacent style of
// small, explicitly-wired handlers; go-chi/chi and google/uuid are the
// same router and ID generator present in the teacher's go.mod but
// unused there, given their first home here.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/graphops/pkg/analyzer"
	"github.com/matzehuels/graphops/pkg/errors"
	"github.com/matzehuels/graphops/pkg/graph"
	"github.com/matzehuels/graphops/pkg/scc"
)

// Server serves read-only queries over an immutable graph snapshot.
type Server struct {
	graph *graph.Graph
}

// New creates a Server over g. g is never mutated.
func New(g *graph.Graph) *Server {
	return &Server{graph: g}
}

// Router builds the chi router for this server.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)

	r.Get("/stats", s.handleStats)
	r.Get("/scc", s.handleSCC)
	r.Get("/nodes/{key}", s.handleNode)

	return r
}

// requestID stamps every response with an X-Request-Id header, generated
// fresh per request rather than trusting an inbound one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

type statsResponse struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
	SeedCount int `json:"seed_count"`
	SinkCount int `json:"sink_count"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statsResponse{
		NodeCount: s.graph.NodeCount(),
		EdgeCount: s.graph.EdgeCount(),
		SeedCount: s.graph.SeedCount(),
		SinkCount: s.graph.SinkCount(),
	})
}

type sccComponentResponse struct {
	Name    string   `json:"name"`
	Index   int      `json:"index"`
	Members []string `json:"members"`
}

func (s *Server) handleSCC(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = scc.DefaultPrefix
	}

	result := scc.Run(r.Context(), analyzer.Snapshot(s.graph), prefix)
	resp := make([]sccComponentResponse, 0, len(result.Components))
	for _, c := range result.Components {
		resp = append(resp, sccComponentResponse{Name: c.Name, Index: c.Index, Members: c.Members})
	}
	writeJSON(w, http.StatusOK, resp)
}

type nodeResponse struct {
	Key       string   `json:"key"`
	Kind      string   `json:"kind"`
	InDegree  int      `json:"in_degree"`
	OutDegree int      `json:"out_degree"`
	Sources   []string `json:"sources"`
	Targets   []string `json:"targets"`
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	n, ok := s.graph.Node(key)
	if !ok {
		writeError(w, http.StatusNotFound, errors.New(errors.CodeNotFound, "no such node %q", key))
		return
	}
	writeJSON(w, http.StatusOK, nodeResponse{
		Key:       n.Key,
		Kind:      n.Kind().String(),
		InDegree:  n.InDegree(),
		OutDegree: n.OutDegree(),
		Sources:   n.SourceKeys(),
		Targets:   n.TargetKeys(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}
