package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matzehuels/graphops/pkg/graph"
)

func buildGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, k := range []string{"a", "b", "c"} {
		if _, err := g.AddNode(k); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := g.Connect("a", "b"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect("b", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Connect("b", "c"); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestHandleStats(t *testing.T) {
	s := New(buildGraph(t))
	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("X-Request-Id"); got == "" {
		t.Fatal("missing X-Request-Id header")
	}

	var resp statsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.NodeCount != 3 || resp.EdgeCount != 3 {
		t.Fatalf("got %+v", resp)
	}
}

func TestHandleSCC(t *testing.T) {
	s := New(buildGraph(t))
	req := httptest.NewRequest(http.MethodGet, "/scc", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	var resp []sccComponentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp) != 2 {
		t.Fatalf("got %d components, want 2", len(resp))
	}
}

func TestHandleNodeNotFound(t *testing.T) {
	s := New(buildGraph(t))
	req := httptest.NewRequest(http.MethodGet, "/nodes/missing", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestHandleNodeFound(t *testing.T) {
	s := New(buildGraph(t))
	req := httptest.NewRequest(http.MethodGet, "/nodes/b", nil)
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp nodeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.InDegree != 1 || resp.OutDegree != 2 {
		t.Fatalf("got %+v", resp)
	}
}
