package triples

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Default CGMES vocabulary of the resolver.
const (
	DefaultGroupPredicate  = "cim:Terminal.ConnectivityNode"
	DefaultTargetPredicate = "cim:Terminal.ConductingEquipment"
)

// DefaultFilterTypes are the connector and administrative types that never
// appear as edge endpoints.
func DefaultFilterTypes() []string {
	return []string{
		"cim:Terminal",
		"cim:IdentifiedObject",
		"cim:Name",
		"cim:NameType",
		"cim:NameTypeAuthority",
	}
}

// Edge is a type-level edge: subject and object are resource types.
type Edge struct {
	Subject   string
	Predicate string
	Object    string
}

func (e Edge) String() string {
	return fmt.Sprintf("%s %s %s", e.Subject, e.Predicate, e.Object)
}

// EdgeSet is a set of type-level edges.
type EdgeSet map[Edge]struct{}

func (s EdgeSet) Add(e Edge) {
	s[e] = struct{}{}
}

func (s EdgeSet) Contains(e Edge) bool {
	_, ok := s[e]
	return ok
}

// Sorted returns the edges ordered by subject, predicate and object.
func (s EdgeSet) Sorted() []Edge {
	edges := make([]Edge, 0, len(s))
	for e := range s {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b Edge) int {
		return cmp.Or(
			cmp.Compare(a.Subject, b.Subject),
			cmp.Compare(a.Predicate, b.Predicate),
			cmp.Compare(a.Object, b.Object),
		)
	})
	return edges
}

// ResolverParams configures a Resolver. Zero values select the defaults.
type ResolverParams struct {
	FilterTypes     []string
	GroupPredicate  string
	TargetPredicate string
	// Partitions splits the triples into that many chunks resolved in
	// parallel.
	Partitions int
}

// Resolver derives type-level edges from a Store, looking through
// connector resources.
type Resolver struct {
	filter     map[string]struct{}
	group      string
	target     string
	partitions int
}

// NewResolver creates a resolver.
func NewResolver(params ResolverParams) *Resolver {
	types := params.FilterTypes
	if types == nil {
		types = DefaultFilterTypes()
	}
	filter := make(map[string]struct{}, len(types))
	for _, t := range types {
		filter[t] = struct{}{}
	}

	group := cmp.Or(params.GroupPredicate, DefaultGroupPredicate)
	target := cmp.Or(params.TargetPredicate, DefaultTargetPredicate)

	return &Resolver{
		filter:     filter,
		group:      group,
		target:     target,
		partitions: max(params.Partitions, 1),
	}
}

// isDomain reports whether id is an edge endpoint: typed, and not of a
// filtered type.
func (r *Resolver) isDomain(store *Store, id string) bool {
	if !store.IsTyped(id) {
		return false
	}
	_, filtered := r.filter[store.EffectiveType(id)]
	return !filtered
}

// Resolve returns the type-level edge set of store. The store is only read.
func (r *Resolver) Resolve(ctx context.Context, store *Store) (EdgeSet, error) {
	triples := store.Triples()
	chunks := partition(triples, r.partitions)
	results := make([]EdgeSet, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		g.Go(func() error {
			edges := make(EdgeSet)
			for j, t := range chunk {
				if j%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				r.resolveTriple(store, t, edges)
			}
			results[i] = edges
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to resolve edges: %w", err)
	}

	merged := make(EdgeSet)
	for _, edges := range results {
		for e := range edges {
			merged.Add(e)
		}
	}

	logger.Debug("[Edges] Resolved", "triples", len(triples), "edges", len(merged), "partitions", len(chunks))
	return merged, nil
}

func (r *Resolver) resolveTriple(store *Store, t Triple, edges EdgeSet) {
	s, p, o := t.Subject, t.Predicate, t.Object
	if !r.isDomain(store, s) {
		return
	}
	subjectType := store.EffectiveType(s)

	if r.isDomain(store, o) {
		edges.Add(Edge{Subject: subjectType, Predicate: p, Object: store.EffectiveType(o)})
		return
	}

	// o is a connector: look one hop further.
	add := func(b string) {
		if b != s && r.isDomain(store, b) {
			edges.Add(Edge{Subject: subjectType, Predicate: p, Object: store.EffectiveType(b)})
		}
	}
	for _, next := range store.Outgoing(o) {
		add(next.Object)
	}

	// Connectors grouped on the same node as o contribute their targets.
	for _, grp := range store.Outgoing(o) {
		if grp.Predicate != r.group {
			continue
		}
		for _, sibling := range store.Incoming(grp.Object, r.group) {
			for _, tgt := range store.Outgoing(sibling.Subject) {
				if tgt.Predicate == r.target {
					add(tgt.Object)
				}
			}
		}
	}
}

// partition splits triples into at most n contiguous chunks.
func partition(triples []Triple, n int) [][]Triple {
	if len(triples) == 0 {
		return nil
	}
	n = min(n, len(triples))
	size := (len(triples) + n - 1) / n

	chunks := make([][]Triple, 0, n)
	for start := 0; start < len(triples); start += size {
		end := min(start+size, len(triples))
		chunks = append(chunks, triples[start:end])
	}
	return chunks
}
