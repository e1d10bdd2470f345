package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chapterhub/internal/app"
	"github.com/alexanderramin/chapterhub/internal/testutil"
)

const seedYAML = `
projects:
  - id: p1
    name: Food Bank
shifts:
  - id: s1
    name: Desk
    project_id: p1
    assignees: [ana]
    timeframe:
      start: 2025-05-14T09:00:00Z
      end: 2025-05-14T12:00:00Z
tasks:
  - id: t1
    name: Flyers
    assignee: ana
    start: 2025-05-15T10:00:00Z
    end: 2025-05-15T11:00:00Z
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeed(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSeedService(testutil.NewTestUoW(database))

	resp, err := svc.Seed(context.Background(), app.SeedRequest{Path: writeFixture(t, seedYAML)})
	require.NoError(t, err)
	assert.Equal(t, &app.SeedResponse{Projects: 1, Shifts: 1, Tasks: 1}, resp)
}

func TestSeed_InvalidFixture(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewSeedService(testutil.NewTestUoW(database))

	_, err := svc.Seed(context.Background(), app.SeedRequest{Path: writeFixture(t, "tasks:\n  - id: t1\n")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tasks[0].name is required")
}

func TestSeed_MissingFile(t *testing.T) {
	svc := NewSeedService(testutil.NewTestUoW(testutil.NewTestDB(t)))

	_, err := svc.Seed(context.Background(), app.SeedRequest{Path: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading fixture")
}
