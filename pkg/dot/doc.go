// Package dot emits deterministic Graphviz DOT source for a [graph.Graph]
// and renders it to SVG/PNG/PDF (spec.md §4.8, §6.2).
//
// [Writer] is a scoped, indentation-tracking primitive: opening a graph,
// subgraph, node block, or edge block pushes a scope; closing it emits
// the matching terminator (`}` for graph/subgraph, `]` for node/edge
// attribute lists) at the scope's own indent level. [Write] drives a
// Writer over a graph's nodes and edges in the deterministic order spec.md
// §5 requires.
//
// In-process SVG rendering uses [github.com/goccy/go-graphviz], the same
// library the teacher's nodelink package renders with; PDF/PNG conversion
// shells out to rsvg-convert, mirroring the teacher's render.ToPDF/ToPNG
// (kept under pkg/core/render in the teacher tree, adapted here into the
// same package as the writer it serves).
package dot
