package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// maxFetchSize bounds a single collection read. Upstream imports stay in the
// low tens of thousands of records; anything past this bound indicates a
// runaway import and is cut off rather than ballooning a request.
const maxFetchSize = 50000

// Repository reads raw record documents from the store. The engine itself
// never talks to the database: it consumes the fetched []RawRecord snapshot.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new raw record repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "records").Logger(),
	}
}

// EnsureSchema creates the record store tables if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS raw_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		doc TEXT NOT NULL,
		imported_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_raw_records_collection ON raw_records(collection);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create raw_records schema: %w", err)
	}
	return nil
}

// FetchCollection returns every raw record of a source collection, in import
// order, bounded by maxFetchSize. A row whose document does not decode is
// skipped with a warning; the rest of the batch is still returned.
func (r *Repository) FetchCollection(ctx context.Context, collection SourceCollection) ([]RawRecord, error) {
	query := `SELECT id, doc FROM raw_records WHERE collection = ? ORDER BY id LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, string(collection), maxFetchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection %s: %w", collection, err)
	}
	defer rows.Close()

	var result []RawRecord
	for rows.Next() {
		var rowID int64
		var doc string
		if err := rows.Scan(&rowID, &doc); err != nil {
			return nil, fmt.Errorf("failed to scan raw record: %w", err)
		}

		var rec RawRecord
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			r.log.Warn().
				Err(err).
				Int64("row_id", rowID).
				Str("collection", string(collection)).
				Msg("Skipping undecodable raw record")
			continue
		}
		result = append(result, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating collection %s: %w", collection, err)
	}

	r.log.Debug().
		Str("collection", string(collection)).
		Int("count", len(result)).
		Msg("Fetched raw records")

	return result, nil
}

// Insert stores a raw record document. Used by import tooling and tests.
func (r *Repository) Insert(ctx context.Context, collection SourceCollection, rec RawRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode raw record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO raw_records (collection, doc) VALUES (?, ?)`,
		string(collection), string(doc))
	if err != nil {
		return fmt.Errorf("failed to insert raw record: %w", err)
	}
	return nil
}
