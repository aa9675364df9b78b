package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/blogem/enterprise-api/models"
)

// mongoEnterpriseRepository implements EnterpriseRepository on a Mongo collection
type mongoEnterpriseRepository struct {
	coll *mongo.Collection
}

// NewMongoEnterpriseRepository creates a new enterprise repository
func NewMongoEnterpriseRepository(coll *mongo.Collection) EnterpriseRepository {
	return &mongoEnterpriseRepository{coll: coll}
}

func (r *mongoEnterpriseRepository) Insert(ctx context.Context, doc models.Enterprise) (string, error) {
	result, err := r.coll.InsertOne(ctx, bson.M(doc.WithoutIDs()))
	if err != nil {
		return "", fmt.Errorf("failed to insert enterprise: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

func (r *mongoEnterpriseRepository) FindByID(ctx context.Context, id string) (models.Enterprise, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *mongoEnterpriseRepository) FindOneBySiret(ctx context.Context, siret int64) (models.Enterprise, error) {
	return r.findOne(ctx, bson.M{models.FieldSiret: siret})
}

func (r *mongoEnterpriseRepository) findOne(ctx context.Context, filter bson.M) (models.Enterprise, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find enterprise: %w", err)
	}

	return models.FromStoreDocument(fromBSON(doc).(map[string]any)), nil
}

func (r *mongoEnterpriseRepository) UpdateOneBySiret(ctx context.Context, siret int64, fields models.Enterprise) (int64, int64, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{models.FieldSiret: siret},
		bson.M{"$set": bson.M(fields.WithoutIDs())},
	)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to update enterprise: %w", err)
	}

	return result.MatchedCount, result.ModifiedCount, nil
}

func (r *mongoEnterpriseRepository) DeleteOneBySiret(ctx context.Context, siret int64) (int64, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{models.FieldSiret: siret})
	if err != nil {
		return 0, fmt.Errorf("failed to delete enterprise: %w", err)
	}

	return result.DeletedCount, nil
}

func (r *mongoEnterpriseRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, readpref.Primary())
}

// fromBSON maps driver-specific value types onto the plain Go types used by
// models, so records look the same regardless of the backing store.
func fromBSON(v any) any {
	switch val := v.(type) {
	case bson.M:
		return fromBSON(map[string]any(val))
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = fromBSON(item)
		}
		return out
	case primitive.D:
		return fromBSON(map[string]any(val.Map()))
	case primitive.A:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = fromBSON(item)
		}
		return out
	case int32:
		return int64(val)
	case primitive.DateTime:
		return val.Time().UTC()
	default:
		return v
	}
}
