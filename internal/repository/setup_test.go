package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/just-nibble/cycle-tracker/internal/domain"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(Models()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

var baseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func seedGeneration(t *testing.T, store GenerationStore, name string, startedAt time.Time, active bool) *domain.Generation {
	t.Helper()
	g, err := domain.NewGeneration(name, startedAt)
	require.NoError(t, err)
	g.IsActive = active
	saved, err := store.Save(context.Background(), *g)
	require.NoError(t, err)
	return saved
}

func seedCycle(t *testing.T, store CycleStore, generationID domain.GenerationID, week int, start, end time.Time, issueURL *string) *domain.Cycle {
	t.Helper()
	c, err := domain.NewCycle(generationID, week, start, end, issueURL)
	require.NoError(t, err)
	saved, err := store.Save(context.Background(), *c)
	require.NoError(t, err)
	return saved
}

func seedMember(t *testing.T, store MemberStore, username string) *domain.Member {
	t.Helper()
	m, err := domain.NewMember(username, strings.ToUpper(username), nil)
	require.NoError(t, err)
	saved, err := store.Save(context.Background(), *m)
	require.NoError(t, err)
	return saved
}

func strPtr(s string) *string { return &s }

func seedMemberValue(username string) *domain.Member {
	m, _ := domain.NewMember(username, username, nil)
	return m
}
