package store

import (
	"cgpa-calculator/driver"
	"cgpa-calculator/models"
	"cgpa-calculator/utils"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Workspaces {
	t.Helper()
	db, err := driver.ConnectDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", utils.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { driver.Close(db) })
	return NewWorkspaces(db)
}

func assertSameState(t *testing.T, expected, actual models.Workspace) {
	t.Helper()
	assert.Equal(t, expected.ID, actual.ID)
	assert.Equal(t, expected.GradeTable, actual.GradeTable)
	assert.Equal(t, expected.Semesters, actual.Semesters)
	assert.Equal(t, expected.IncludePercentage, actual.IncludePercentage)
	assert.Equal(t, expected.Version, actual.Version)
}

func TestCreateAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ws := models.NewWorkspace(nil).AddSemester().WithPercentage(true)
	grade, credits := "A", "4"
	ws, err := ws.UpdateSubject(ws.Semesters[1].ID, ws.Semesters[1].Subjects[0].ID, models.SubjectPatch{Grade: &grade, Credits: &credits})
	require.NoError(t, err)

	created, err := s.Create(ctx, ws)
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, int64(1), created.Version)

	loaded, err := s.Load(ctx, ws.ID)
	require.NoError(t, err)
	assertSameState(t, created, loaded)

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssignsIDs(t *testing.T) {
	s := newTestStore(t)

	created, err := s.Create(context.Background(), models.Workspace{
		GradeTable: models.DefaultGradeTable(),
		Semesters:  []models.Semester{{Title: "Imported", Subjects: []models.SubjectEntry{{Grade: "A", Credits: "3"}}}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Semesters[0].ID)
	assert.NotEmpty(t, created.Semesters[0].Subjects[0].ID)

	loaded, err := s.Load(context.Background(), created.ID)
	require.NoError(t, err)
	assertSameState(t, created, loaded)
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ws, err := s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)

	updated, err := s.Update(ctx, ws.ID, func(cur models.Workspace) (models.Workspace, error) {
		table, err := cur.GradeTable.Rename("A+", "O")
		if err != nil {
			return cur, err
		}
		return cur.WithGradeTable(table).AddSemester(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "O", updated.GradeTable[0].Grade)
	assert.Len(t, updated.Semesters, 2)
	assert.Equal(t, int64(2), updated.Version)

	loaded, err := s.Load(ctx, ws.ID)
	require.NoError(t, err)
	assertSameState(t, updated, loaded)

	_, err = s.Update(ctx, ws.ID, func(cur models.Workspace) (models.Workspace, error) {
		return cur.RemoveSemester("missing")
	})
	assert.ErrorIs(t, err, models.ErrSemesterNotFound)

	again, err := s.Load(ctx, ws.ID)
	require.NoError(t, err)
	assertSameState(t, updated, again)

	_, err = s.Update(ctx, "missing", func(cur models.Workspace) (models.Workspace, error) {
		return cur, nil
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFailureWritesNothing(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ws, err := s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = s.Update(ctx, ws.ID, func(cur models.Workspace) (models.Workspace, error) {
		return cur.AddSemester(), boom
	})
	assert.ErrorIs(t, err, boom)

	loaded, err := s.Load(ctx, ws.ID)
	require.NoError(t, err)
	assert.Len(t, loaded.Semesters, 1)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ws, err := s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)
	other, err := s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, ws.ID))
	_, err = s.Load(ctx, ws.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, ws.ID), ErrNotFound)

	kept, err := s.Load(ctx, other.ID)
	require.NoError(t, err)
	assertSameState(t, other, kept)
}

func TestPurgeIdle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a, err := s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)
	_, err = s.Create(ctx, models.NewWorkspace(nil))
	require.NoError(t, err)

	n, err := s.PurgeIdle(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = s.PurgeIdle(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = s.Load(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
