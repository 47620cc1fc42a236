package credentials

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/librarian/internal/entities"
)

func setupTestDB(t *testing.T) *Repository {
	dbPath := filepath.Join(t.TempDir(), "credentials.db")

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entities.Credential{}))

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return NewRepository(db)
}

func TestRepository_SeedIfEmpty(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	created, err := repo.SeedIfEmpty(ctx, &entities.Credential{Username: "admin", Password: "first"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.SeedIfEmpty(ctx, &entities.Credential{Username: "admin", Password: "second"})
	require.NoError(t, err)
	assert.False(t, created)

	created, err = repo.SeedIfEmpty(ctx, &entities.Credential{Username: "other", Password: "third"})
	require.NoError(t, err)
	assert.False(t, created)

	cred, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "first", cred.Password)
}

func TestRepository_GetByUsername_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetByUsername(context.Background(), "admin")

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
