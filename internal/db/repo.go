package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"healthai/pkg"
)

// Repository stores consultation history in Postgres.  It is only used when
// DATABASE_URL is configured.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// SaveConsultation inserts c, filling in ID when empty and CreatedAt from the
// database clock.
func (r *Repository) SaveConsultation(ctx context.Context, c *pkg.Consultation) error {
	sessionID, err := uuid.Parse(c.SessionID)
	if err != nil {
		return fmt.Errorf("invalid session id %q: %w", c.SessionID, err)
	}
	id := uuid.New()
	if c.ID != "" {
		if id, err = uuid.Parse(c.ID); err != nil {
			return fmt.Errorf("invalid consultation id %q: %w", c.ID, err)
		}
	}
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO consultations (id, session_id, mode, input, response)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING created_at`,
		id, sessionID, c.Mode, c.Input, c.Response,
	).Scan(&c.CreatedAt)
	if err != nil {
		return err
	}
	c.ID = id.String()
	return nil
}

// ListConsultations returns the newest consultations of a session, newest
// first.  An unparsable session id has no history.
func (r *Repository) ListConsultations(ctx context.Context, sessionID string, limit int) ([]pkg.Consultation, error) {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, nil
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, session_id, mode, input, response, created_at
         FROM consultations
         WHERE session_id = $1
         ORDER BY created_at DESC
         LIMIT $2`, sid, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []pkg.Consultation
	for rows.Next() {
		var c pkg.Consultation
		if err := rows.Scan(&c.ID, &c.SessionID, &c.Mode, &c.Input, &c.Response, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
