package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/blogem/enterprise-api/models"
)

// sqliteEnterpriseRepository stores enterprises as JSON documents in the
// shared documents table, scoped by collection name.
type sqliteEnterpriseRepository struct {
	db         *sql.DB
	collection string
}

// NewSQLiteEnterpriseRepository creates a new enterprise repository
func NewSQLiteEnterpriseRepository(db *sql.DB, collection string) EnterpriseRepository {
	return &sqliteEnterpriseRepository{db: db, collection: collection}
}

const selectFirstBySiret = `
	SELECT seq, id, document
	FROM documents
	WHERE collection = ? AND json_extract(document, '$.siret') = ?
	ORDER BY seq ASC
	LIMIT 1
`

// Insert stores a new document under a freshly generated identifier
func (r *sqliteEnterpriseRepository) Insert(ctx context.Context, doc models.Enterprise) (string, error) {
	body, err := json.Marshal(doc.WithoutIDs())
	if err != nil {
		return "", fmt.Errorf("failed to encode enterprise: %w", err)
	}

	id := models.NewStoreID()
	query := `INSERT INTO documents (collection, id, document) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, r.collection, id, string(body)); err != nil {
		return "", fmt.Errorf("failed to insert enterprise: %w", err)
	}

	return id, nil
}

// FindByID retrieves a document by its surrogate identifier
func (r *sqliteEnterpriseRepository) FindByID(ctx context.Context, id string) (models.Enterprise, error) {
	query := `SELECT document FROM documents WHERE collection = ? AND id = ?`

	var body string
	err := r.db.QueryRowContext(ctx, query, r.collection, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	return decodeDocument(id, body)
}

// FindOneBySiret retrieves the first document inserted with the given siret
func (r *sqliteEnterpriseRepository) FindOneBySiret(ctx context.Context, siret int64) (models.Enterprise, error) {
	var (
		seq  int64
		id   string
		body string
	)
	err := r.db.QueryRowContext(ctx, selectFirstBySiret, r.collection, siret).Scan(&seq, &id, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	return decodeDocument(id, body)
}

// UpdateOneBySiret applies $set semantics: supplied fields overwrite, the
// rest is kept. A field counts as modified only if its value changes.
func (r *sqliteEnterpriseRepository) UpdateOneBySiret(ctx context.Context, siret int64, fields models.Enterprise) (int64, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		seq  int64
		id   string
		body string
	)
	err = tx.QueryRowContext(ctx, selectFirstBySiret, r.collection, siret).Scan(&seq, &id, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get enterprise: %w", err)
	}

	current, err := decodeStored(body)
	if err != nil {
		return 0, 0, err
	}

	// Compare in stored form, so 1.0 in the patch matches a stored 1
	patch, err := json.Marshal(fields.WithoutIDs())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to encode enterprise: %w", err)
	}
	set, err := decodeStored(string(patch))
	if err != nil {
		return 0, 0, err
	}

	changed := false
	for k, v := range set {
		existing, ok := current[k]
		if ok && reflect.DeepEqual(existing, v) {
			continue
		}
		current[k] = v
		changed = true
	}

	if !changed {
		return 1, 0, tx.Commit()
	}

	updated, err := json.Marshal(current)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to encode enterprise: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE documents SET document = ? WHERE seq = ?`, string(updated), seq); err != nil {
		return 0, 0, fmt.Errorf("failed to update enterprise: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit update: %w", err)
	}

	return 1, 1, nil
}

// DeleteOneBySiret removes the first document with the given siret
func (r *sqliteEnterpriseRepository) DeleteOneBySiret(ctx context.Context, siret int64) (int64, error) {
	query := `
		DELETE FROM documents
		WHERE seq = (
			SELECT seq FROM documents
			WHERE collection = ? AND json_extract(document, '$.siret') = ?
			ORDER BY seq ASC
			LIMIT 1
		)
	`

	result, err := r.db.ExecContext(ctx, query, r.collection, siret)
	if err != nil {
		return 0, fmt.Errorf("failed to delete enterprise: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

func (r *sqliteEnterpriseRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func decodeStored(body string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(body)))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}

	normalized, err := models.Normalize(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored document: %w", err)
	}

	return normalized.(map[string]any), nil
}

func decodeDocument(id, body string) (models.Enterprise, error) {
	doc, err := decodeStored(body)
	if err != nil {
		return nil, err
	}
	doc[models.FieldStoreID] = id

	return models.FromStoreDocument(doc), nil
}
