package report_test

import (
	"context"
	"testing"

	"mediadex/internal/catalog"
	"mediadex/internal/importer"
	"mediadex/internal/report"
	"mediadex/internal/testsupport"
)

func seededStore(t *testing.T) *catalog.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	header := []string{"show_id", "type", "title", "director", "cast", "country", "date_added", "release_year", "rating", "duration", "listed_in"}
	rows := [][]string{
		{"s1", "Movie", "Alpha", "Ann Dole", "Zoe Park, Ann Ruiz", "United States", "September 24, 2021", "2020", "PG", "90 min", "Dramas"},
		{"s2", "Movie", "Beta", "", "Zoe Park", "United States", "", "2020", "", "101 min", "Dramas, Comedies"},
		{"s3", "TV Show", "Gamma", "", "Élodie Yung", "France", "", "2019", "TV-14", "2 Seasons", "TV Dramas"},
	}
	path := testsupport.WriteCSV(t, header, rows)

	imp := importer.New(cfg, store, nil)
	if _, err := imp.Run(context.Background(), importer.Options{Path: path}); err != nil {
		t.Fatalf("seed import failed: %v", err)
	}
	return store
}

func TestBuildSummaryAggregates(t *testing.T) {
	store := seededStore(t)

	summary, err := report.BuildSummary(context.Background(), store)
	if err != nil {
		t.Fatalf("BuildSummary failed: %v", err)
	}
	if summary.Counts.Titles != 3 {
		t.Fatalf("titles = %d, want 3", summary.Counts.Titles)
	}
	if len(summary.TopCountries) == 0 || summary.TopCountries[0].Name != "United States" || summary.TopCountries[0].Count != 2 {
		t.Fatalf("unexpected top countries %+v", summary.TopCountries)
	}
	if len(summary.TitlesPerYear) == 0 || summary.TitlesPerYear[0].Year != 2020 || summary.TitlesPerYear[0].Count != 2 {
		t.Fatalf("unexpected years %+v", summary.TitlesPerYear)
	}
	if len(summary.TopGenres) == 0 || summary.TopGenres[0].Name != "Dramas" || summary.TopGenres[0].Count != 2 {
		t.Fatalf("unexpected genres %+v", summary.TopGenres)
	}
	if len(summary.TopActors) == 0 || summary.TopActors[0].Name != "Zoe Park" || summary.TopActors[0].Count != 2 {
		t.Fatalf("unexpected actors %+v", summary.TopActors)
	}
}

func TestBuildSnapshotSamples(t *testing.T) {
	store := seededStore(t)

	snapshot, err := report.BuildSnapshot(context.Background(), store)
	if err != nil {
		t.Fatalf("BuildSnapshot failed: %v", err)
	}
	if len(snapshot.Titles) != 3 || snapshot.Titles[0].Name != "Alpha" {
		t.Fatalf("unexpected title sample %+v", snapshot.Titles)
	}
	if len(snapshot.TitleGenres) != 4 {
		t.Fatalf("expected 4 title_genre rows, got %d", len(snapshot.TitleGenres))
	}
	if len(snapshot.Directors) != 1 || snapshot.Directors[0].Name != "Ann Dole" {
		t.Fatalf("unexpected directors %+v", snapshot.Directors)
	}
}

func TestSortByNameCollation(t *testing.T) {
	entities := []catalog.Entity{
		{ID: 1, Name: "Zoe Park"},
		{ID: 2, Name: "Élodie Yung"},
		{ID: 3, Name: "ann ruiz"},
	}
	report.SortByName(entities)
	if entities[0].Name != "ann ruiz" || entities[1].Name != "Élodie Yung" || entities[2].Name != "Zoe Park" {
		t.Fatalf("unexpected order %+v", entities)
	}
}
