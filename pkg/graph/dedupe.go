package graph

import "fmt"

// EntityKind scopes a natural key. The same name may exist once per kind.
type EntityKind string

const (
	KindSubstation        EntityKind = "Substation"
	KindLine              EntityKind = "Line"
	KindEquipment         EntityKind = "ConductingEquipment"
	KindTopologicalNode   EntityKind = "TopologicalNode"
	KindCoordinateSystem  EntityKind = "CoordinateSystem"
	KindMarketRole        EntityKind = "MarketRole"
	KindMarketParticipant EntityKind = "MarketParticipant"
)

type cacheKey struct {
	kind EntityKind
	name string
}

// Cache maps (kind, natural key) to the single entity registered under it.
// Keys are compared by exact, case-sensitive equality. A Cache belongs to one
// Builder and is not safe for concurrent use.
type Cache struct {
	entries map[cacheKey]any
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[cacheKey]any),
	}
}

// Lookup returns the entity registered under (kind, name).
func (c *Cache) Lookup(kind EntityKind, name string) (any, bool) {
	entity, ok := c.entries[cacheKey{kind: kind, name: name}]
	return entity, ok
}

// Put registers entity under (kind, name). Registering the same entity again
// is a no-op; registering a different one returns ErrDuplicateKey and leaves
// the cache unchanged.
func (c *Cache) Put(kind EntityKind, name string, entity any) error {
	key := cacheKey{kind: kind, name: name}
	if existing, ok := c.entries[key]; ok {
		if existing == entity {
			return nil
		}
		return fmt.Errorf("%s %q: %w", kind, name, ErrDuplicateKey)
	}
	c.entries[key] = entity
	return nil
}

// Len returns the number of registered keys.
func (c *Cache) Len() int {
	return len(c.entries)
}

// lookup is the typed form of Cache.Lookup. It reports false when the key is
// registered to an entity of another type.
func lookup[T any](c *Cache, kind EntityKind, name string) (*T, bool) {
	v, ok := c.Lookup(kind, name)
	if !ok {
		return nil, false
	}
	entity, ok := v.(*T)
	return entity, ok
}

// mustPut panics on ErrDuplicateKey: the builder always looks up first, so a
// collision is a bug rather than bad input.
func (c *Cache) mustPut(kind EntityKind, name string, entity any) {
	if err := c.Put(kind, name, entity); err != nil {
		panic(err)
	}
}
