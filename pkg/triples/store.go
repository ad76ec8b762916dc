package triples

import "slices"

// Triple is one labeled edge between two resources, by resource id.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
}

// Store holds the triples of one typed resource graph together with the
// declared type of every resource. A Store is immutable once loaded and safe
// for concurrent reads.
type Store struct {
	resources map[string]string
	triples   []Triple
	outgoing  map[string][]Triple
	incoming  map[string][]Triple
}

func newStore() *Store {
	return &Store{
		resources: make(map[string]string),
		outgoing:  make(map[string][]Triple),
		incoming:  make(map[string][]Triple),
	}
}

func (s *Store) addResource(id, typ string) {
	s.resources[id] = typ
}

func (s *Store) addTriple(t Triple) {
	s.triples = append(s.triples, t)
	s.outgoing[t.Subject] = append(s.outgoing[t.Subject], t)
	s.incoming[t.Object] = append(s.incoming[t.Object], t)
}

// Triples returns all triples in load order.
func (s *Store) Triples() []Triple {
	return slices.Clone(s.triples)
}

// Len returns the number of triples.
func (s *Store) Len() int {
	return len(s.triples)
}

// Resources returns the number of resources, typed or not.
func (s *Store) Resources() int {
	return len(s.resources)
}

// Has reports whether id is a resource of the graph.
func (s *Store) Has(id string) bool {
	_, ok := s.resources[id]
	return ok
}

// IsTyped reports whether id is a resource with a declared type.
func (s *Store) IsTyped(id string) bool {
	return s.resources[id] != ""
}

// EffectiveType returns the declared type of id. An untyped resource is its
// own type; ids outside the graph have none.
func (s *Store) EffectiveType(id string) string {
	typ, ok := s.resources[id]
	if !ok {
		return ""
	}
	if typ == "" {
		return id
	}
	return typ
}

// Outgoing returns the triples whose subject is id.
func (s *Store) Outgoing(id string) []Triple {
	return s.outgoing[id]
}

// Incoming returns the triples whose object is id. A non-empty predicate
// restricts the result to that predicate.
func (s *Store) Incoming(id, predicate string) []Triple {
	all := s.incoming[id]
	if predicate == "" {
		return all
	}
	var out []Triple
	for _, t := range all {
		if t.Predicate == predicate {
			out = append(out, t)
		}
	}
	return out
}
