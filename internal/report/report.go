package report

import (
	"context"

	"mediadex/internal/catalog"
)

const (
	// topLimit caps each aggregate listing.
	topLimit = 10
	// sampleLimit caps the per-table row samples.
	sampleLimit = 30
)

// Summary holds the aggregate statistics of the catalog.
type Summary struct {
	Counts        catalog.Counts
	TopCountries  []catalog.NameCount
	TitlesPerYear []catalog.YearCount
	TopGenres     []catalog.NameCount
	TopActors     []catalog.NameCount
}

// Snapshot is the full reporting page: the aggregates plus a sample of every
// table. Lookup samples are sorted by collated name; titles and associations
// keep insertion order.
type Snapshot struct {
	Summary
	Countries      []catalog.Entity
	Genres         []catalog.Entity
	Actors         []catalog.Entity
	Directors      []catalog.Entity
	Titles         []catalog.TitleRow
	TitleGenres    []catalog.AssociationRow
	TitleActors    []catalog.AssociationRow
	TitleDirectors []catalog.AssociationRow
}

// BuildSummary gathers the aggregate statistics with read-only queries.
func BuildSummary(ctx context.Context, store *catalog.Store) (*Summary, error) {
	var (
		summary Summary
		err     error
	)
	if summary.Counts, err = store.Counts(ctx); err != nil {
		return nil, err
	}
	if summary.TopCountries, err = store.TopCountries(ctx, topLimit); err != nil {
		return nil, err
	}
	if summary.TitlesPerYear, err = store.TitlesPerYear(ctx, topLimit); err != nil {
		return nil, err
	}
	if summary.TopGenres, err = store.TopGenres(ctx, topLimit); err != nil {
		return nil, err
	}
	if summary.TopActors, err = store.TopActors(ctx, topLimit); err != nil {
		return nil, err
	}
	return &summary, nil
}

// BuildSnapshot gathers the full reporting page.
func BuildSnapshot(ctx context.Context, store *catalog.Store) (*Snapshot, error) {
	summary, err := BuildSummary(ctx, store)
	if err != nil {
		return nil, err
	}
	snapshot := Snapshot{Summary: *summary}

	for _, target := range []struct {
		kind catalog.EntityKind
		dest *[]catalog.Entity
	}{
		{catalog.KindCountry, &snapshot.Countries},
		{catalog.KindGenre, &snapshot.Genres},
		{catalog.KindActor, &snapshot.Actors},
		{catalog.KindDirector, &snapshot.Directors},
	} {
		entities, err := store.LookupEntities(ctx, target.kind, sampleLimit)
		if err != nil {
			return nil, err
		}
		SortByName(entities)
		*target.dest = entities
	}

	if snapshot.Titles, err = store.Titles(ctx, sampleLimit); err != nil {
		return nil, err
	}
	for _, target := range []struct {
		kind catalog.AssociationKind
		dest *[]catalog.AssociationRow
	}{
		{catalog.AssocGenre, &snapshot.TitleGenres},
		{catalog.AssocActor, &snapshot.TitleActors},
		{catalog.AssocDirector, &snapshot.TitleDirectors},
	} {
		rows, err := store.Associations(ctx, target.kind, sampleLimit)
		if err != nil {
			return nil, err
		}
		*target.dest = rows
	}

	return &snapshot, nil
}
