package dot

import (
	"fmt"
	"io"
	"strings"
)

type scopeKind int

const (
	braceScope   scopeKind = iota // closes with "}"
	bracketScope                  // closes with "];"
)

type scope struct {
	kind   scopeKind
	indent int
}

// Writer emits indented, scoped DOT source to an underlying io.Writer. It
// tracks an explicit stack of open scopes so that Close always emits the
// correct terminator at the indent the scope was opened at, however deep
// the nesting.
type Writer struct {
	w     io.Writer
	err   error
	stack []scope
}

// New wraps w in a Writer ready to emit DOT source.
func New(w io.Writer) *Writer { return &Writer{w: w} }

func (dw *Writer) indent() int { return len(dw.stack) }

func (dw *Writer) writeLine(s string) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, "%s%s\n", strings.Repeat("  ", dw.indent()), s)
}

func (dw *Writer) push(k scopeKind) {
	dw.stack = append(dw.stack, scope{kind: k, indent: dw.indent()})
}

// Close ends the innermost open scope, emitting its terminator at the
// indent it was opened at. Closing an empty stack is a no-op.
func (dw *Writer) Close() {
	if len(dw.stack) == 0 {
		return
	}
	top := dw.stack[len(dw.stack)-1]
	dw.stack = dw.stack[:len(dw.stack)-1]
	if dw.err != nil {
		return
	}
	prefix := strings.Repeat("  ", top.indent)
	switch top.kind {
	case braceScope:
		_, dw.err = fmt.Fprintf(dw.w, "%s}\n", prefix)
	case bracketScope:
		_, dw.err = fmt.Fprintf(dw.w, "%s];\n", prefix)
	}
}

// Err returns the first write error encountered, if any.
func (dw *Writer) Err() error { return dw.err }

// OpenGraph opens the top-level graph scope. directed selects `digraph`
// (emitting `->` edges) versus `graph` (`--` edges); id is optional.
func (dw *Writer) OpenGraph(id string, directed bool) {
	kw := "graph"
	if directed {
		kw = "digraph"
	}
	header := kw
	if id != "" {
		header += " " + quoteID(id)
	}
	dw.writeLine(header + " {")
	dw.push(braceScope)
}

// OpenSubgraph opens a nested subgraph scope. An id prefixed "cluster"
// renders as a GraphViz cluster; an empty id produces an anonymous
// subgraph (useful for same-rank grouping).
func (dw *Writer) OpenSubgraph(id string) {
	header := "subgraph"
	if id != "" {
		header += " " + quoteID(id)
	}
	dw.writeLine(header + " {")
	dw.push(braceScope)
}

// Attr writes a single key=value attribute line inside the current scope.
func (dw *Writer) Attr(key, value string) {
	dw.writeLine(fmt.Sprintf("%s=%s;", key, quoteValue(value)))
}

// OpenNode opens a node's attribute-list scope: `"id" [`.
func (dw *Writer) OpenNode(id string) {
	dw.writeLine(quoteID(id) + " [")
	dw.push(bracketScope)
}

// NodeAttr writes a single attribute inside an open node (or edge) block,
// without the trailing semicolon OpenNode's sibling Attr uses (DOT
// attribute-list entries are comma-separated, not semicolon-terminated).
func (dw *Writer) NodeAttr(key, value string) {
	dw.writeLine(fmt.Sprintf("%s=%s,", key, quoteValue(value)))
}

// OpenEdge opens an edge's attribute-list scope: `"source" -> "target" [`
// (or `--` when directed is false).
func (dw *Writer) OpenEdge(source, target string, directed bool) {
	arrow := "--"
	if directed {
		arrow = "->"
	}
	dw.writeLine(fmt.Sprintf("%s %s %s [", quoteID(source), arrow, quoteID(target)))
	dw.push(bracketScope)
}

// quoteID quotes a DOT identifier, escaping embedded quotes/backslashes.
func quoteID(id string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(id) + `"`
}

// quoteValue quotes an attribute value unless it is an HTML-like label
// (begins with "<" and ends with ">"), which GraphViz requires unquoted.
func quoteValue(v string) string {
	if strings.HasPrefix(v, "<") && strings.HasSuffix(v, ">") {
		return v
	}
	return quoteID(v)
}
