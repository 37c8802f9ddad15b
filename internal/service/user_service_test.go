package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoflip/backend/internal/model"
	"github.com/autoflip/backend/internal/model/dto"
	"github.com/autoflip/backend/internal/repository"
	"github.com/autoflip/backend/internal/testutil"
)

func TestUserService_Upsert_CreatesUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	userRepo := repository.NewUserRepository(db)
	svc := NewUserService(userRepo)

	err := svc.Upsert(&dto.UpsertUserRequest{Email: "ana@example.com", Name: "Ana"})
	require.NoError(t, err)

	user, err := userRepo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestUserService_Upsert_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	userRepo := repository.NewUserRepository(db)
	svc := NewUserService(userRepo)

	require.NoError(t, svc.Upsert(&dto.UpsertUserRequest{Email: "ana@example.com", Name: "Ana"}))
	require.NoError(t, svc.Upsert(&dto.UpsertUserRequest{Email: "ana@example.com", Name: "Ana Silva"}))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	user, err := userRepo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", user.Name)
}
