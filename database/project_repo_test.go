package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Frabbi727/mine-portfolio/errs"
	"github.com/Frabbi727/mine-portfolio/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgContainer.Terminate(ctx) })

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test sslmode=disable", host, port.Port())
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, New(db).Migrate())
	return db
}

func storedProject(t *testing.T, repo *ProjectRepo) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:        "Telemetry Dashboard",
		Description:  "Realtime metrics for home sensors",
		Technologies: datatypes.JSONSlice[string]{"Go", "React"},
		Category:     "Web",
	}
	require.NoError(t, repo.Add(project))

	// Re-fetch so the token carries the store's timestamp precision.
	stored, err := repo.FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return stored
}

func TestProjectRepoFlagWriteRefusesStaleToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepo(db)

	stored := storedProject(t, repo)
	token := stored.UpdatedAt

	require.NoError(t, repo.SetPublished(stored.ID, true, token))

	// The successful write rotated updated_at, so the old token no longer
	// matches and a second write through it must be refused.
	err := repo.SetFeatured(stored.ID, true, token)
	require.ErrorIs(t, err, errs.ErrStaleRecord)

	after, err := repo.FindByID(stored.ID)
	require.NoError(t, err)
	require.True(t, after.IsPublished)
	require.False(t, after.IsFeatured)

	// A token from a fresh read goes through.
	require.NoError(t, repo.SetFeatured(stored.ID, true, after.UpdatedAt))

	// A missing row matches nothing, which reads the same as a stale token.
	err = repo.SetPublished(uuid.New(), true, time.Now())
	require.ErrorIs(t, err, errs.ErrStaleRecord)
}
