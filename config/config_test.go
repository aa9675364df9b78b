package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMongo(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "sirene")
	t.Setenv("COLLECTION_NAME", "etablissements")
	t.Setenv("LOG_COLLECTION_NAME", "requests")
	t.Setenv("LOG_WRITE_TIMEOUT", "250ms")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDBURL)
	assert.Equal(t, "sirene", cfg.DatabaseName)
	assert.Equal(t, "etablissements", cfg.CollectionName)
	assert.Equal(t, "requests", cfg.LogCollectionName)
	assert.Equal(t, 250*time.Millisecond, cfg.LogWriteTimeout)
	assert.True(t, cfg.TrustProxyHeaders)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadSQLiteDefaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("MONGODB_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, "enterprise.db", cfg.SQLitePath)
	assert.Equal(t, "enterprises", cfg.CollectionName)
	assert.Equal(t, "logs", cfg.LogCollectionName)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGODB_URL", "")

	_, err := Load()
	assert.ErrorContains(t, err, "MongoDBURL")
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "StoreDriver")
}
