package sqlite

import (
	"context"
	"testing"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
	"github.com/kdaisho/evetrack/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_ListActive(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "Borealis", "transfer-engagement", true)
	insertProject(t, db, "p2", "Apollo", "active-delivery", true)
	insertProject(t, db, "p3", "Archived", "indirect", false)

	repo := NewProjectRepository(db)
	projects, err := repo.ListActive(ctx)
	require.NoError(t, err)

	require.Len(t, projects, 2)
	require.Equal(t, "Apollo", projects[0].Name)
	require.Equal(t, earnedvalue.WorkTypeActiveDelivery, projects[0].WorkType)
	require.Equal(t, "Borealis", projects[1].Name)
	require.Equal(t, earnedvalue.WorkTypeTransfer, projects[1].WorkType)
}

func TestProjectRepository_Get(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	insertProject(t, db, "p1", "Apollo", "indirect", true)

	repo := NewProjectRepository(db)
	proj, err := repo.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, "Apollo", proj.Name)
	require.Equal(t, earnedvalue.WorkTypeIndirect, proj.WorkType)
	require.True(t, proj.Active)

	_, err = repo.Get(ctx, "missing")
	require.Equal(t, repository.ErrNotFound, err)
}
