package catalog

import "time"

// Title types as they appear in the catalog export.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// Entity is a lookup row (country, genre, actor, or director) identified by
// a unique normalized name.
type Entity struct {
	ID   int64
	Name string
}

// Title is the central catalog record. Duration and Rating are free text and
// empty when the export omitted them; DateAdded and CountryID are nil when
// absent.
type Title struct {
	ID          int64
	Name        string
	Type        string
	ReleaseYear int
	Duration    string
	Rating      string
	DateAdded   *time.Time
	CountryID   *int64
}

// EntityKind identifies one of the four lookup tables. The kinds share a
// single resolve/create code path keyed by table and name column.
type EntityKind struct {
	name   string
	table  string
	column string
}

var (
	KindCountry  = EntityKind{name: "country", table: "country", column: "name"}
	KindGenre    = EntityKind{name: "genre", table: "genre", column: "name"}
	KindActor    = EntityKind{name: "actor", table: "actor", column: "full_name"}
	KindDirector = EntityKind{name: "director", table: "director", column: "full_name"}
)

func (k EntityKind) String() string { return k.name }

// EntityKinds returns all lookup kinds in a stable order.
func EntityKinds() []EntityKind {
	return []EntityKind{KindCountry, KindGenre, KindActor, KindDirector}
}

// AssociationKind identifies one of the three title↔entity link tables.
type AssociationKind struct {
	name         string
	table        string
	entityColumn string
}

var (
	AssocGenre    = AssociationKind{name: "title_genre", table: "title_genre", entityColumn: "genre_id"}
	AssocActor    = AssociationKind{name: "title_actor", table: "title_actor", entityColumn: "actor_id"}
	AssocDirector = AssociationKind{name: "title_director", table: "title_director", entityColumn: "director_id"}
)

func (k AssociationKind) String() string { return k.name }

// dateLayout is how calendar dates are stored in SQLite.
const dateLayout = "2006-01-02"
