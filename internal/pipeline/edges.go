package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
	"github.com/OFFIS-RIT/cimgraph/pkg/triples"
)

var edgesLog = logger.Named("Edges")

// EdgesParams configures an edge derivation run.
type EdgesParams struct {
	Graph      loader.SourceFile
	Partitions int
	Out        io.Writer
}

// RunEdges loads a typed resource graph and writes its type-level edges to
// Out, one "subject predicate object" line each, sorted. It returns the
// number of edges written.
func RunEdges(ctx context.Context, params EdgesParams) (int, error) {
	store, err := triples.Load(ctx, params.Graph)
	if err != nil {
		return 0, fmt.Errorf("failed to load graph: %w", err)
	}
	edgesLog.Info("Loaded graph", "file", params.Graph.FilePath, "resources", store.Resources(), "triples", store.Len())

	resolver := triples.NewResolver(triples.ResolverParams{Partitions: params.Partitions})
	edges, err := resolver.Resolve(ctx, store)
	if err != nil {
		return 0, err
	}

	sorted := edges.Sorted()
	for _, e := range sorted {
		if _, err := fmt.Fprintln(params.Out, e.String()); err != nil {
			return 0, fmt.Errorf("failed to write edges: %w", err)
		}
	}

	edgesLog.Info("Resolved edges", "edges", len(sorted))
	return len(sorted), nil
}
