package repositories

import (
	"context"
	"errors"

	"github.com/blogem/enterprise-api/models"
)

// ErrNotFound is returned when no document matches a lookup
var ErrNotFound = errors.New("document not found")

// EnterpriseRepository defines the raw document store operations on the
// enterprise collection. Lookups by siret always act on the first match.
type EnterpriseRepository interface {
	// Insert stores doc verbatim and returns the generated identifier
	Insert(ctx context.Context, doc models.Enterprise) (string, error)
	FindByID(ctx context.Context, id string) (models.Enterprise, error)
	FindOneBySiret(ctx context.Context, siret int64) (models.Enterprise, error)
	// UpdateOneBySiret sets the given fields on the first match and reports
	// how many documents matched and how many were actually changed
	UpdateOneBySiret(ctx context.Context, siret int64, fields models.Enterprise) (matched int64, modified int64, err error)
	DeleteOneBySiret(ctx context.Context, siret int64) (int64, error)
	Ping(ctx context.Context) error
}
