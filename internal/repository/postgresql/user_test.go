package postgresql_test

import (
	"context"
	"testing"

	"github.com/paybooks/paybooks-backend-go/internal/domain/user"
	"github.com/paybooks/paybooks-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ===== USER REPOSITORY TESTS =====

func TestUserRepository_Create_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("securepass"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	newUser := user.User{
		Email:        "newuser@example.com",
		PasswordHash: &hashedStr,
		FullName:     "New User",
		Role:         user.RoleOwner,
	}

	created, err := userRepo.Create(ctx, newUser)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, newUser.Email, created.Email)
	assert.Equal(t, newUser.FullName, created.FullName)
	assert.Equal(t, user.RoleOwner, created.Role)
	assert.NotNil(t, created.CreatedAt)
	assert.NotNil(t, created.UpdatedAt)
}

func TestUserRepository_GetByEmail_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	testUser := createTestUser(t, ctx, "test@example.com")

	retrieved, err := userRepo.GetByEmail(ctx, "test@example.com")

	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, retrieved.ID)
	assert.Equal(t, testUser.Email, retrieved.Email)
	assert.NotNil(t, retrieved.PasswordHash)
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	_, err := userRepo.GetByEmail(ctx, "missing@example.com")

	assert.Error(t, err)
}

func TestUserRepository_GetByID_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	testUser := createTestUser(t, ctx, "test@example.com")

	retrieved, err := userRepo.GetByID(ctx, testUser.ID)

	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, retrieved.ID)
	assert.Equal(t, testUser.Email, retrieved.Email)
}

func TestUserRepository_LinkGoogleAccount_Success(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	testUser := createTestUser(t, ctx, "test@example.com")

	linked, err := userRepo.LinkGoogleAccount(ctx, "google-id-12345", testUser.Email)

	assert.NoError(t, err)
	assert.Equal(t, testUser.ID, linked.ID)
	require.NotNil(t, linked.OAuthProvider)
	assert.Equal(t, "google", *linked.OAuthProvider)
	require.NotNil(t, linked.OAuthProviderID)
	assert.Equal(t, "google-id-12345", *linked.OAuthProviderID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(testDB)

	createTestUser(t, ctx, "dup@example.com")

	_, err := userRepo.Create(ctx, user.User{
		Email:    "dup@example.com",
		FullName: "Duplicate",
		Role:     user.RoleOwner,
	})

	assert.Error(t, err)
}
