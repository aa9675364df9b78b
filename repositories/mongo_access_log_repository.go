package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/blogem/enterprise-api/models"
)

type mongoAccessLogRepository struct {
	coll *mongo.Collection
}

// NewMongoAccessLogRepository creates a new access log repository
func NewMongoAccessLogRepository(coll *mongo.Collection) AccessLogRepository {
	return &mongoAccessLogRepository{coll: coll}
}

// Create appends a new access log entry
func (r *mongoAccessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert access log: %w", err)
	}
	return nil
}

func (r *mongoAccessLogRepository) Recent(ctx context.Context, limit int) ([]models.AccessLogEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query access logs: %w", err)
	}

	var entries []models.AccessLogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode access logs: %w", err)
	}

	return entries, nil
}
