package catalog

import (
	"context"
	"database/sql"
	"fmt"
)

// Counts holds the row count of every catalog table.
type Counts struct {
	Countries      int
	Genres         int
	Actors         int
	Directors      int
	Titles         int
	TitleGenres    int
	TitleActors    int
	TitleDirectors int
}

// NameCount pairs an entity name with an aggregate title count.
type NameCount struct {
	Name  string
	Count int
}

// YearCount pairs a release year with its title count.
type YearCount struct {
	Year  int
	Count int
}

// TitleRow is a title joined with its country name for display.
type TitleRow struct {
	ID          int64
	Name        string
	Type        string
	ReleaseYear int
	Country     string
}

// AssociationRow is an association joined with both endpoint names.
type AssociationRow struct {
	ID     int64
	Title  string
	Entity string
}

// Counts returns the row count of every table.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	for _, target := range []struct {
		table string
		dest  *int
	}{
		{"country", &c.Countries},
		{"genre", &c.Genres},
		{"actor", &c.Actors},
		{"director", &c.Directors},
		{"title", &c.Titles},
		{"title_genre", &c.TitleGenres},
		{"title_actor", &c.TitleActors},
		{"title_director", &c.TitleDirectors},
	} {
		row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+target.table)
		if err := row.Scan(target.dest); err != nil {
			return Counts{}, fmt.Errorf("count %s: %w", target.table, err)
		}
	}
	return c, nil
}

// EntityCount returns the row count of one lookup table.
func (s *Store) EntityCount(ctx context.Context, kind EntityKind) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+kind.table)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", kind, err)
	}
	return count, nil
}

// TopCountries returns countries ordered by number of owned titles, highest
// first, ties broken by name.
func (s *Store) TopCountries(ctx context.Context, limit int) ([]NameCount, error) {
	return s.nameCounts(ctx, `
        SELECT c.name, COUNT(t.id) AS cnt
        FROM country c
        LEFT JOIN title t ON t.country_id = c.id
        GROUP BY c.id
        ORDER BY cnt DESC, c.name
        LIMIT ?`, limit)
}

// TitlesPerYear returns release years ordered by title count, highest first,
// ties broken by most recent year.
func (s *Store) TitlesPerYear(ctx context.Context, limit int) ([]YearCount, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT release_year, COUNT(1) AS cnt
        FROM title
        GROUP BY release_year
        ORDER BY cnt DESC, release_year DESC
        LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("titles per year: %w", err)
	}
	defer rows.Close()

	var out []YearCount
	for rows.Next() {
		var yc YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, err
		}
		out = append(out, yc)
	}
	return out, rows.Err()
}

// TopGenres returns genres ordered by association count.
func (s *Store) TopGenres(ctx context.Context, limit int) ([]NameCount, error) {
	return s.nameCounts(ctx, `
        SELECT g.name, COUNT(tg.id) AS cnt
        FROM genre g
        LEFT JOIN title_genre tg ON tg.genre_id = g.id
        GROUP BY g.id
        ORDER BY cnt DESC, g.name
        LIMIT ?`, limit)
}

// TopActors returns actors ordered by association count.
func (s *Store) TopActors(ctx context.Context, limit int) ([]NameCount, error) {
	return s.nameCounts(ctx, `
        SELECT a.full_name, COUNT(ta.id) AS cnt
        FROM actor a
        LEFT JOIN title_actor ta ON ta.actor_id = a.id
        GROUP BY a.id
        ORDER BY cnt DESC, a.full_name
        LIMIT ?`, limit)
}

// LookupEntities returns the first lookup rows of a kind ordered by id.
func (s *Store) LookupEntities(ctx context.Context, kind EntityKind, limit int) ([]Entity, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s ORDER BY id LIMIT ?", kind.column, kind.table)
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		var e Entity
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// Titles returns the first title rows ordered by id, with the owning country
// name resolved (empty when the title has no country).
func (s *Store) Titles(ctx context.Context, limit int) ([]TitleRow, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT t.id, t.name, t.type, t.release_year, c.name
        FROM title t
        LEFT JOIN country c ON c.id = t.country_id
        ORDER BY t.id
        LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []TitleRow
	for rows.Next() {
		var (
			tr      TitleRow
			country sql.NullString
		)
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.Type, &tr.ReleaseYear, &country); err != nil {
			return nil, err
		}
		tr.Country = country.String
		titles = append(titles, tr)
	}
	return titles, rows.Err()
}

// Associations returns the first association rows of a kind ordered by id,
// with both endpoint names resolved.
func (s *Store) Associations(ctx context.Context, kind AssociationKind, limit int) ([]AssociationRow, error) {
	var query string
	switch kind {
	case AssocGenre:
		query = `SELECT tg.id, t.name, g.name FROM title_genre tg
            JOIN title t ON t.id = tg.title_id
            JOIN genre g ON g.id = tg.genre_id
            ORDER BY tg.id LIMIT ?`
	case AssocActor:
		query = `SELECT ta.id, t.name, a.full_name FROM title_actor ta
            JOIN title t ON t.id = ta.title_id
            JOIN actor a ON a.id = ta.actor_id
            ORDER BY ta.id LIMIT ?`
	case AssocDirector:
		query = `SELECT td.id, t.name, d.full_name FROM title_director td
            JOIN title t ON t.id = td.title_id
            JOIN director d ON d.id = td.director_id
            ORDER BY td.id LIMIT ?`
	default:
		return nil, fmt.Errorf("unknown association kind %q", kind)
	}

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	defer rows.Close()

	var out []AssociationRow
	for rows.Next() {
		var ar AssociationRow
		if err := rows.Scan(&ar.ID, &ar.Title, &ar.Entity); err != nil {
			return nil, err
		}
		out = append(out, ar)
	}
	return out, rows.Err()
}

func (s *Store) nameCounts(ctx context.Context, query string, limit int) ([]NameCount, error) {
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("aggregate query: %w", err)
	}
	defer rows.Close()

	var out []NameCount
	for rows.Next() {
		var nc NameCount
		if err := rows.Scan(&nc.Name, &nc.Count); err != nil {
			return nil, err
		}
		out = append(out, nc)
	}
	return out, rows.Err()
}
