package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"onboarding_backend/internal/feature/users/usecase"
	"onboarding_backend/internal/platform/db/dbtest"
	"onboarding_backend/internal/platform/db/model"
)

// seedUser は指定の作成日時でユーザーを作成し、withProfileならプロフィールも作成します。
func seedUser(t *testing.T, gdb *gorm.DB, email, username string, createdAt time.Time, withProfile bool) string {
	t.Helper()

	id := uuid.NewString()
	require.NoError(t, gdb.Create(&model.User{
		ID: id, Email: email, Username: username, Password: "x", IsActive: true,
		CreatedAt: createdAt, UpdatedAt: createdAt,
	}).Error)
	if withProfile {
		city := "Austin"
		birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
		require.NoError(t, gdb.Create(&model.Profile{
			ID: uuid.NewString(), UserID: id, City: &city, Birthdate: &birth,
		}).Error)
	}
	return id
}

func countProfiles(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, gdb.Model(&model.Profile{}).Count(&n).Error)
	return n
}

func TestUsersGorm_ListWithProfiles(t *testing.T) {
	t.Parallel()

	gdb := dbtest.New(t)
	repo := NewUsersRepository(gdb)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	withID := seedUser(t, gdb, "b@example.com", "b", base, true)
	seedUser(t, gdb, "a@example.com", "a", base, false)
	seedUser(t, gdb, "c@example.com", "c", base.Add(-time.Hour), false)

	got, err := repo.ListWithProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	// created_at順、同時刻はemail順
	assert.Equal(t, "c@example.com", got[0].User.Email)
	assert.Equal(t, "a@example.com", got[1].User.Email)
	assert.Equal(t, "b@example.com", got[2].User.Email)

	assert.Nil(t, got[1].Profile, "user without profile yields nil profile")
	require.NotNil(t, got[2].Profile)
	assert.Equal(t, withID, got[2].Profile.UserID)
	require.NotNil(t, got[2].Profile.City)
	assert.Equal(t, "Austin", *got[2].Profile.City)
	require.NotNil(t, got[2].Profile.Birthdate)
	assert.Equal(t, "1990-05-17", got[2].Profile.Birthdate.Format(time.DateOnly))

	assert.Equal(t, int64(1), countProfiles(t, gdb), "listing must not create profiles")
}

func TestUsersGorm_CreateMissingProfiles(t *testing.T) {
	t.Parallel()

	gdb := dbtest.New(t)
	repo := NewUsersRepository(gdb)
	now := time.Now().UTC()
	seedUser(t, gdb, "a@example.com", "a", now, true)
	seedUser(t, gdb, "b@example.com", "b", now, false)
	seedUser(t, gdb, "c@example.com", "c", now, false)

	created, err := repo.CreateMissingProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, int64(3), countProfiles(t, gdb))

	created, err = repo.CreateMissingProfiles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, created, "second run has nothing to do")
}

func TestUsersGorm_Search(t *testing.T) {
	t.Parallel()

	gdb := dbtest.New(t)
	repo := NewUsersRepository(gdb)
	now := time.Now().UTC()
	seedUser(t, gdb, "zoe@example.com", "zoe", now, false)
	seedUser(t, gdb, "Alice@Example.com", "alice_w", now, false)
	seedUser(t, gdb, "bob@test.io", "Bobby", now, false)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query lists all by email", "", []string{"Alice@Example.com", "bob@test.io", "zoe@example.com"}},
		{"case-insensitive email", "EXAMPLE", []string{"Alice@Example.com", "zoe@example.com"}},
		{"username match", "bobby", []string{"bob@test.io"}},
		{"underscore is literal", "_", []string{"Alice@Example.com"}},
		{"percent is literal", "%", nil},
		{"no match", "nobody", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Search(context.Background(), tt.query)
			require.NoError(t, err)

			var emails []string
			for _, u := range got {
				emails = append(emails, u.Email)
			}
			assert.Equal(t, tt.want, emails)
		})
	}
}

func TestUsersGorm_Delete(t *testing.T) {
	t.Parallel()

	gdb := dbtest.New(t)
	repo := NewUsersRepository(gdb)
	id := seedUser(t, gdb, "del@example.com", "del", time.Now().UTC(), true)
	keep := seedUser(t, gdb, "keep@example.com", "keep", time.Now().UTC(), true)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, id))

	_, err := repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	assert.Equal(t, int64(1), countProfiles(t, gdb))

	_, err = repo.FindByID(ctx, keep)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, id), usecase.ErrUserNotFound)
}

func TestUsersGorm_SetStaff(t *testing.T) {
	t.Parallel()

	gdb := dbtest.New(t)
	repo := NewUsersRepository(gdb)
	id := seedUser(t, gdb, "staff@example.com", "staff", time.Now().UTC(), false)
	ctx := context.Background()

	require.NoError(t, repo.SetStaff(ctx, id, true))
	u, err := repo.FindByEmail(ctx, "staff@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsStaff)

	require.NoError(t, repo.SetStaff(ctx, id, false))
	u, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, u.IsStaff)

	assert.ErrorIs(t, repo.SetStaff(ctx, uuid.NewString(), true), usecase.ErrUserNotFound)
}
