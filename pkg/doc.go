// Package pkg provides the core libraries for graphops, a toolkit for
// analyzing directed graphs of assembly dependencies.
//
// # Overview
//
// graphops works on a tagged, attributed directed multigraph: nodes and
// edges carry keyed and unkeyed tags plus arbitrary string properties.
// The graph itself is agnostic to what populated it — a [builder.Builder]
// is injected by the caller, and the core never probes .NET binaries or
// any other runtime on its own.
//
// # Architecture
//
// The typical data flow through graphops:
//
//	builder.Builder (external collaborator)
//	         ↓
//	    [graph] package (tagged/attributed directed multigraph)
//	         ↓
//	    [analyzer] (reachability, domain closures, cycle detection)
//	         ↓
//	    [scc] (Tarjan's algorithm, component quotient graphs)
//	         ↓
//	    [classify] / [rewrite] (supergraph construction, edge purification)
//	         ↓
//	    [dot] / [csv] / graph JSON (rendered or serialized output)
//
// # Main Packages
//
// [graph] - The core multigraph type: nodes and edges with tagged,
// attributed [metadata.Metadata], JSON persistence, and the structural
// mutators (Connect, Disconnect, RemoveNodes, ...) every other package
// builds on.
//
// [keyset] - Generic ordered set and key-indexed-set collections used
// throughout the graph and analyzer packages to keep adjacency and
// membership queries deterministic.
//
// [analyzer] - Read-only structural queries over a graph snapshot:
// reachability maps, domain (upstream) closures, and cycle detection.
//
// [scc] - Tarjan's strongly connected components algorithm and
// construction of the condensed component (quotient) graph.
//
// [classify] - Node classification (by graph property or explicit
// mapping) and construction of supergraphs from a classification.
//
// [rewrite] - Graph rewrite operators: tag-based filtering, pruning, and
// the two purification modes (classic transitive-reduction-like pruning,
// and SCC-aware purification of the component quotient).
//
// [dot] - A scoped Graphviz DOT writer plus SVG/PDF/PNG rendering via
// goccy/go-graphviz and rsvg-convert.
//
// [csv] - CSV emission of per-node structural statistics.
//
// [cache] - Pluggable caching of expensive derived artifacts (reach
// maps, domain maps, SCC results, renders), with file and Redis backends.
//
// [store] - Pluggable persistence of named graph snapshots for the
// save/load subcommands, with file and MongoDB backends.
//
// [cliconfig] - TOML-based CLI configuration (~/.graphops.toml).
//
// [obshooks] - Observability hook interfaces (structured logging and
// timing callbacks) invoked around expensive operations, without coupling
// the core packages to any specific logger.
//
// [errors] - A typed, code-carrying error type used across the module in
// place of bare fmt.Errorf, so callers can branch on failure category.
package pkg
