package service

import (
	"path/filepath"
	"testing"
	"time"

	"onemore-backend/internal/config"
	"onemore-backend/internal/entity"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/repository"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *repository.DocumentStore {
	t.Helper()
	store, err := repository.OpenDocumentStore(filepath.Join(t.TempDir(), "db.json"), logger.NewNop())
	require.NoError(t, err)
	return store
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			SessionTTL:        30 * 24 * time.Hour,
			MinPasswordLength: 6,
		},
	}
}

func testUser(id, name string) entity.User {
	return entity.User{
		Id:    id,
		Email: id + "@example.com",
		Name:  name,
	}
}
