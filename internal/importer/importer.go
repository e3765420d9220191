package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mediadex/internal/catalog"
	"mediadex/internal/config"
	"mediadex/internal/logging"
)

// Importer materializes a denormalized catalog export into the relational
// schema. One call to Run is one atomic unit of work.
type Importer struct {
	cfg    *config.Config
	store  *catalog.Store
	logger *slog.Logger
}

// New builds an Importer. A nil logger disables logging.
func New(cfg *config.Config, store *catalog.Store, logger *slog.Logger) *Importer {
	return &Importer{
		cfg:    cfg,
		store:  store,
		logger: logging.WithComponent(logger, "importer"),
	}
}

// Options controls one import run.
type Options struct {
	// Path is the catalog export to read.
	Path string
	// Limit truncates processing after this many rows. Zero means unlimited.
	Limit int
	// Progress, when set, is invoked after each examined row. A non-nil
	// return aborts the run and rolls back the transaction.
	Progress func(rowsExamined int) error
}

// Result reports what one run did.
type Result struct {
	// RowsExamined counts every row read, including skipped ones.
	RowsExamined int
	// TitlesCreated counts title rows inserted.
	TitlesCreated int
	// EntitiesCreated counts newly created lookup rows by kind name.
	EntitiesCreated map[string]int
}

// Run imports the export at opts.Path inside a single transaction. Fatal
// structural problems (unreadable source, missing required columns, a held
// import lock) abort before any row is processed; any error mid-run rolls
// back everything.
func (i *Importer) Run(ctx context.Context, opts Options) (Result, error) {
	if err := i.cfg.EnsureDirectories(); err != nil {
		return Result{}, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(i.cfg.ImportLockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, fmt.Errorf("acquire import lock: %w", err)
	}
	if !locked {
		return Result{}, ErrImportLocked
	}
	defer func() { _ = lock.Unlock() }()

	file, err := os.Open(opts.Path)
	if err != nil {
		return Result{}, fmt.Errorf("open catalog export: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ','
	if delimiter := i.cfg.Import.Delimiter; delimiter != "" {
		reader.Comma = []rune(delimiter)[0]
	}
	// Ragged rows degrade to empty fields instead of failing the run.
	reader.FieldsPerRecord = -1

	headerRecord, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, &MissingColumnsError{Columns: requiredColumns}
		}
		return Result{}, fmt.Errorf("read export header: %w", err)
	}
	hdr, err := parseHeader(headerRecord)
	if err != nil {
		return Result{}, err
	}

	runID := uuid.NewString()
	logger := i.logger.With(logging.String("run_id", runID))
	logger.Info("import starting",
		logging.String("source", opts.Path),
		logging.String("database", i.store.Path()),
		logging.Int("limit", opts.Limit),
	)

	result := Result{EntitiesCreated: map[string]int{}}
	err = i.store.WithTx(ctx, func(tx *catalog.Tx) error {
		res, err := newResolver(ctx, tx)
		if err != nil {
			return err
		}

		for {
			if opts.Limit > 0 && result.RowsExamined >= opts.Limit {
				break
			}
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("read export row: %w", err)
			}
			result.RowsExamined++

			if row, ok := parseRow(hdr, record); ok {
				if err := i.importRow(ctx, tx, res, row); err != nil {
					return err
				}
				result.TitlesCreated++
			} else {
				logger.Debug("skipped unusable row", logging.Int("row", result.RowsExamined))
			}

			if opts.Progress != nil {
				if err := opts.Progress(result.RowsExamined); err != nil {
					return err
				}
			}
		}

		result.EntitiesCreated = res.createdCounts()
		return nil
	})
	if err != nil {
		logger.Error("import aborted, rolled back", logging.Error(err))
		return Result{}, err
	}

	logger.Info("import complete",
		logging.Int("rows_examined", result.RowsExamined),
		logging.Int("titles_created", result.TitlesCreated),
		logging.Int("countries_created", result.EntitiesCreated[catalog.KindCountry.String()]),
		logging.Int("genres_created", result.EntitiesCreated[catalog.KindGenre.String()]),
		logging.Int("actors_created", result.EntitiesCreated[catalog.KindActor.String()]),
		logging.Int("directors_created", result.EntitiesCreated[catalog.KindDirector.String()]),
	)
	return result, nil
}

// importRow creates the title and its association rows. The country policy
// is first-token-only: a title belongs to at most one country even when the
// export lists several.
func (i *Importer) importRow(ctx context.Context, tx *catalog.Tx, res *resolver, r row) error {
	var countryID *int64
	if len(r.Countries) > 0 {
		country, err := res.resolve(ctx, catalog.KindCountry, r.Countries[0])
		if err != nil {
			return err
		}
		countryID = &country.ID
	}

	title := &catalog.Title{
		Name:        r.Name,
		Type:        r.Type,
		ReleaseYear: r.ReleaseYear,
		Duration:    r.Duration,
		Rating:      r.Rating,
		DateAdded:   r.DateAdded,
		CountryID:   countryID,
	}
	titleID, err := tx.CreateTitle(ctx, title)
	if err != nil {
		return err
	}

	for _, assoc := range []struct {
		entityKind catalog.EntityKind
		assocKind  catalog.AssociationKind
		names      []string
	}{
		{catalog.KindGenre, catalog.AssocGenre, r.Genres},
		{catalog.KindActor, catalog.AssocActor, r.Cast},
		{catalog.KindDirector, catalog.AssocDirector, r.Directors},
	} {
		for _, name := range assoc.names {
			entity, err := res.resolve(ctx, assoc.entityKind, name)
			if err != nil {
				return err
			}
			if err := tx.EnsureAssociation(ctx, assoc.assocKind, titleID, entity.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
