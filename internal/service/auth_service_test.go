package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mercuryins/pas-service/internal/auth"
	"github.com/mercuryins/pas-service/internal/model"
)

type mockTokenIssuer struct {
	mock.Mock
}

func (m *mockTokenIssuer) Issue(user *model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("normalizes email and hashes the password", func(t *testing.T) {
		users := new(mockUserRepository)
		tokens := new(mockTokenIssuer)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", mock.Anything, "jane.doe@mercury.com").Return(nil, gorm.ErrRecordNotFound)
		users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
		tokens.On("Issue", mock.AnythingOfType("*model.User")).Return("signed-token", nil)

		result, err := svc.Register(context.Background(), RegisterInput{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "  Jane.Doe@Mercury.com ",
			Password:  "Secr3t!pass",
			Role:      model.RoleCustomer,
		})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.AccessToken)
		assert.Equal(t, "Bearer", result.TokenType)

		created := users.Calls[1].Arguments.Get(1).(*model.User)
		assert.Equal(t, "jane.doe@mercury.com", created.Email)
		assert.NotEqual(t, "Secr3t!pass", created.PasswordHash)
		assert.NoError(t, auth.CheckPassword(created.PasswordHash, "Secr3t!pass"))
	})

	t.Run("duplicate email", func(t *testing.T) {
		users := new(mockUserRepository)
		svc := NewAuthService(users, new(mockTokenIssuer))

		users.On("GetByEmail", mock.Anything, "jane.doe@mercury.com").
			Return(&model.User{ID: uuid.New(), Email: "jane.doe@mercury.com"}, nil)

		_, err := svc.Register(context.Background(), RegisterInput{
			Email:    "jane.doe@mercury.com",
			Password: "whatever",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("Customer@123")
	require.NoError(t, err)
	user := &model.User{
		ID:           uuid.New(),
		Email:        "customer@mercury.com",
		PasswordHash: hash,
		Role:         model.RoleCustomer,
	}

	t.Run("valid credentials", func(t *testing.T) {
		users := new(mockUserRepository)
		tokens := new(mockTokenIssuer)
		svc := NewAuthService(users, tokens)

		users.On("GetByEmail", mock.Anything, "customer@mercury.com").Return(user, nil)
		tokens.On("Issue", user).Return("signed-token", nil)

		result, err := svc.Login(context.Background(), "Customer@Mercury.com", "Customer@123")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := new(mockUserRepository)
		svc := NewAuthService(users, new(mockTokenIssuer))

		users.On("GetByEmail", mock.Anything, "customer@mercury.com").Return(user, nil)

		_, err := svc.Login(context.Background(), "customer@mercury.com", "wrong")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown email maps to the same error as a bad password", func(t *testing.T) {
		users := new(mockUserRepository)
		svc := NewAuthService(users, new(mockTokenIssuer))

		users.On("GetByEmail", mock.Anything, "nobody@mercury.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), "nobody@mercury.com", "whatever")
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	hash, err := auth.HashPassword("old-password")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "agent@mercury.com", PasswordHash: hash}

	users := new(mockUserRepository)
	svc := NewAuthService(users, new(mockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "agent@mercury.com").Return(user, nil)
	users.On("Update", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	require.NoError(t, svc.ResetPassword(context.Background(), "agent@mercury.com", "new-password"))

	updated := users.Calls[1].Arguments.Get(1).(*model.User)
	assert.NoError(t, auth.CheckPassword(updated.PasswordHash, "new-password"))
}
