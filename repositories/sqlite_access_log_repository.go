package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/blogem/enterprise-api/models"
)

type sqliteAccessLogRepository struct {
	db         *sql.DB
	collection string
}

// NewSQLiteAccessLogRepository creates a new access log repository
func NewSQLiteAccessLogRepository(db *sql.DB, collection string) AccessLogRepository {
	return &sqliteAccessLogRepository{db: db, collection: collection}
}

// Create inserts a new access log entry
func (r *sqliteAccessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode access log: %w", err)
	}

	query := `INSERT INTO documents (collection, id, document) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, r.collection, models.NewStoreID(), string(body)); err != nil {
		return fmt.Errorf("failed to insert access log: %w", err)
	}

	return nil
}

func (r *sqliteAccessLogRepository) Recent(ctx context.Context, limit int) ([]models.AccessLogEntry, error) {
	query := `
		SELECT document FROM documents
		WHERE collection = ?
		ORDER BY seq DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, r.collection, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query access logs: %w", err)
	}
	defer rows.Close()

	var entries []models.AccessLogEntry
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan access log: %w", err)
		}

		var entry models.AccessLogEntry
		if err := json.Unmarshal([]byte(body), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode access log: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access logs: %w", err)
	}

	return entries, nil
}
