package importer

import (
	"context"

	"mediadex/internal/catalog"
)

// resolver maps normalized names to lookup entities, one cache per kind,
// scoped to a single import run. The caches are seeded from the store before
// the first row so repeated names, and names that existed before the run,
// never trigger a duplicate create.
type resolver struct {
	tx      *catalog.Tx
	caches  map[string]map[string]catalog.Entity
	created map[string]int
}

func newResolver(ctx context.Context, tx *catalog.Tx) (*resolver, error) {
	r := &resolver{
		tx:      tx,
		caches:  make(map[string]map[string]catalog.Entity),
		created: make(map[string]int),
	}
	for _, kind := range catalog.EntityKinds() {
		entities, err := tx.Entities(ctx, kind)
		if err != nil {
			return nil, err
		}
		cache := make(map[string]catalog.Entity, len(entities))
		for _, entity := range entities {
			cache[entity.Name] = entity
		}
		r.caches[kind.String()] = cache
	}
	return r, nil
}

// resolve returns the cached entity for a normalized name, creating it on a
// miss. A hit costs no store round-trip.
func (r *resolver) resolve(ctx context.Context, kind catalog.EntityKind, name string) (catalog.Entity, error) {
	cache := r.caches[kind.String()]
	if entity, ok := cache[name]; ok {
		return entity, nil
	}

	entity, err := r.tx.CreateEntity(ctx, kind, name)
	if err != nil {
		return catalog.Entity{}, err
	}
	cache[name] = entity
	r.created[kind.String()]++
	return entity, nil
}

// createdCounts reports how many entities of each kind this run created.
func (r *resolver) createdCounts() map[string]int {
	out := make(map[string]int, len(r.created))
	for kind, count := range r.created {
		out[kind] = count
	}
	return out
}
