package repositories

import (
	"database/sql"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Enterprise EnterpriseRepository
	AccessLog  AccessLogRepository
}

// NewMongoRepositories creates repositories backed by two collections of db
func NewMongoRepositories(db *mongo.Database, collection, logCollection string) *Repositories {
	return &Repositories{
		Enterprise: NewMongoEnterpriseRepository(db.Collection(collection)),
		AccessLog:  NewMongoAccessLogRepository(db.Collection(logCollection)),
	}
}

// NewSQLiteRepositories creates repositories backed by the embedded document table
func NewSQLiteRepositories(db *sql.DB, collection, logCollection string) *Repositories {
	return &Repositories{
		Enterprise: NewSQLiteEnterpriseRepository(db, collection),
		AccessLog:  NewSQLiteAccessLogRepository(db, logCollection),
	}
}
