package investors

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
)

// Repository reads the client register from the record store.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new client repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "clients").Logger(),
	}
}

// EnsureSchema creates the clients table if it does not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		client_type TEXT NOT NULL DEFAULT 'individual',
		voting_status TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1
	);`

	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create clients schema: %w", err)
	}
	return nil
}

// GetActive returns all active clients in insertion order. Voting statuses
// are normalized into the four buckets on the way out.
func (r *Repository) GetActive(ctx context.Context) ([]Client, error) {
	query := `SELECT id, name, email, phone, client_type, voting_status, is_active
		FROM clients WHERE is_active = 1 ORDER BY rowid`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		var clientType, votingStatus string
		var isActive int
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &clientType, &votingStatus, &isActive); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}

		if clientType == string(ClientCompany) {
			c.Type = ClientCompany
		} else {
			c.Type = ClientIndividual
		}
		c.VotingStatus = NormalizeVotingStatus(votingStatus)
		c.IsActive = isActive != 0

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating clients: %w", err)
	}

	r.log.Debug().Int("count", len(clients)).Msg("Fetched active clients")
	return clients, nil
}

// Upsert stores a client row. Used by import tooling and tests.
func (r *Repository) Upsert(ctx context.Context, c Client) error {
	isActive := 0
	if c.IsActive {
		isActive = 1
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, email, phone, client_type, voting_status, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			phone = excluded.phone,
			client_type = excluded.client_type,
			voting_status = excluded.voting_status,
			is_active = excluded.is_active`,
		c.ID, c.Name, c.Email, c.Phone, string(c.Type), string(c.VotingStatus), isActive)
	if err != nil {
		return fmt.Errorf("failed to upsert client %s: %w", c.ID, err)
	}
	return nil
}
