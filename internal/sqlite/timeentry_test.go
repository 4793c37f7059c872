package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func insertEntry(t *testing.T, db *DB, id string, projectID *string, started time.Time, ended *time.Time, durationSec int64) {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO time_entries (id, project_id, started_at, ended_at, duration_sec) VALUES (?, ?, ?, ?, ?)`,
		id, projectID, started, ended, durationSec)
	require.NoError(t, err)
}

func TestTimeEntryRepository_ListStartedBetween(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "p1", "Apollo", "active-delivery", true)

	p1 := "p1"
	inWindow := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	inWindowEnd := inWindow.Add(time.Hour)
	before := time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)
	beforeEnd := before.Add(time.Hour)

	insertEntry(t, db, "e1", &p1, inWindow, &inWindowEnd, 3600)
	insertEntry(t, db, "e2", &p1, before, &beforeEnd, 3600)
	insertEntry(t, db, "e3", nil, inWindow.Add(time.Hour), nil, 0) // running, uncategorized

	repo := NewTimeEntryRepository(db)
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	entries, err := repo.ListStartedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "e1", entries[0].ID)
	require.NotNil(t, entries[0].ProjectID)
	require.Equal(t, "p1", *entries[0].ProjectID)
	require.NotNil(t, entries[0].EndedAt)
	require.Equal(t, int64(3600), entries[0].DurationSec)

	require.Equal(t, "e3", entries[1].ID)
	require.Nil(t, entries[1].ProjectID)
	require.Nil(t, entries[1].EndedAt)
}

func TestTimeEntryRepository_AllocationsAttached(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertProject(t, db, "pA", "Apollo", "active-delivery", true)
	insertProject(t, db, "pB", "Borealis", "indirect", true)

	started := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	ended := started.Add(2 * time.Hour)
	entryID := uuid.NewString()
	insertEntry(t, db, entryID, nil, started, &ended, 7200)

	_, err := db.Exec(
		`INSERT INTO entry_allocations (entry_id, project_id, percent) VALUES (?, ?, ?)`,
		entryID, "pA", 60.0)
	require.NoError(t, err)
	_, err = db.Exec(
		`INSERT INTO entry_allocations (entry_id, project_id, percent) VALUES (?, ?, ?)`,
		entryID, "pB", 40.0)
	require.NoError(t, err)

	repo := NewTimeEntryRepository(db)
	from := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	entries, err := repo.ListStartedBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Allocations, 2)
	require.Equal(t, "pA", entries[0].Allocations[0].ProjectID)
	require.InDelta(t, 60.0, entries[0].Allocations[0].Percent, 1e-9)
	require.Equal(t, "pB", entries[0].Allocations[1].ProjectID)
	require.InDelta(t, 40.0, entries[0].Allocations[1].Percent, 1e-9)
}
