package repositories

import (
	"context"

	"github.com/blogem/enterprise-api/models"
)

// AccessLogRepository handles access log persistence
type AccessLogRepository interface {
	Create(ctx context.Context, entry *models.AccessLogEntry) error
	// Recent returns up to limit entries, newest first
	Recent(ctx context.Context, limit int) ([]models.AccessLogEntry, error)
}
