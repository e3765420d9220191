package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Tx wraps one import transaction. All catalog writes go through it so a
// failed run leaves no partial state behind.
type Tx struct {
	tx *sql.Tx
}

// Entities returns every lookup row of the given kind, for seeding the
// import resolver cache.
func (t *Tx) Entities(ctx context.Context, kind EntityKind) ([]Entity, error) {
	query := fmt.Sprintf("SELECT id, %s FROM %s", kind.column, kind.table)
	rows, err := t.tx.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("scan %s entities: %w", kind, err)
	}
	defer rows.Close()

	var entities []Entity
	for rows.Next() {
		var e Entity
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", kind, err)
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}

// CreateEntity inserts a new lookup row. The name must already be normalized;
// inserting a duplicate violates the table's unique constraint and surfaces
// as an error.
func (t *Tx) CreateEntity(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)", kind.table, kind.column)
	res, err := t.tx.ExecContext(ctx, query, name)
	if err != nil {
		return Entity{}, fmt.Errorf("insert %s %q: %w", kind, name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Entity{}, fmt.Errorf("last insert id: %w", err)
	}
	return Entity{ID: id, Name: name}, nil
}

// CreateTitle inserts a title row and returns its identifier. Empty duration
// and rating are stored as NULL.
func (t *Tx) CreateTitle(ctx context.Context, title *Title) (int64, error) {
	if title == nil {
		return 0, errors.New("title is nil")
	}
	res, err := t.tx.ExecContext(
		ctx,
		`INSERT INTO title (name, type, release_year, duration, rating, date_added, country_id)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		title.Name,
		title.Type,
		title.ReleaseYear,
		nullableString(title.Duration),
		nullableString(title.Rating),
		nullableDate(title.DateAdded),
		nullableID(title.CountryID),
	)
	if err != nil {
		return 0, fmt.Errorf("insert title %q: %w", title.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	title.ID = id
	return id, nil
}

// EnsureAssociation records a link between a title and a lookup entity. The
// insert is idempotent: an existing (title, entity) pair is left untouched
// and reported as success, so repeated names within one source field cannot
// produce duplicate rows.
func (t *Tx) EnsureAssociation(ctx context.Context, kind AssociationKind, titleID, entityID int64) error {
	query := fmt.Sprintf(
		"INSERT OR IGNORE INTO %s (title_id, %s) VALUES (?, ?)",
		kind.table, kind.entityColumn,
	)
	if _, err := t.tx.ExecContext(ctx, query, titleID, entityID); err != nil {
		return fmt.Errorf("ensure %s association: %w", kind, err)
	}
	return nil
}
