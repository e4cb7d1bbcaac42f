package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tardigrade-project/user-service/internal/domain/entity"
)

func TestSave_Insert(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))

	require.NoError(t, err)
	assert.True(t, saved.Persisted())
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestSave_InsertAssignsIncreasingIDs(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)
	second, err := repo.Save(ctx, entity.NewUser("b@b.com", "Al"))
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
}

func TestSave_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)

	_, err = repo.Save(ctx, entity.NewUser("a@b.com", "Al"))
	var exists *entity.EmailAlreadyExistsError
	require.ErrorAs(t, err, &exists)
}

func TestSave_UpdatePreservesCreatedAt(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)

	changed := *created
	changed.Name = "NewName"
	changed.IsActive = false
	changed.CreatedAt = time.Now().Add(48 * time.Hour) // must be ignored

	updated, err := repo.Save(ctx, &changed)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "NewName", updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestSave_UpdateVanishedRowFallsBackToInsert(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	ghost := entity.NewUser("a@b.com", "Jo")
	ghost.ID = 777 // never persisted

	saved, err := repo.Save(ctx, ghost)
	require.NoError(t, err)
	assert.True(t, saved.Persisted())

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@b.com", got.Email)
}

func TestGetByID_Absent(t *testing.T) {
	repo := NewUserRepository()

	u, err := repo.GetByID(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestGetByEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)

	found, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, saved.ID, found.ID)

	absent, err := repo.GetByEmail(ctx, "nobody@b.com")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestDelete(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	again, err := repo.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestListAll_OrderAndPaging(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	emails := []string{"a@x.com", "b@x.com", "c@x.com"}
	for _, e := range emails {
		_, err := repo.Save(ctx, entity.NewUser(e, "User"))
		require.NoError(t, err)
	}

	page1, err := repo.ListAll(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "a@x.com", page1[0].Email)
	assert.Equal(t, "b@x.com", page1[1].Email)

	page2, err := repo.ListAll(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "c@x.com", page2[0].Email)

	empty, err := repo.ListAll(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReturnedEntitiesAreCopies(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, entity.NewUser("a@b.com", "Jo"))
	require.NoError(t, err)

	saved.Name = "Mutated"

	got, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jo", got.Name)
}
