package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopbook/shopbook-api/pkg/apperror"
	"github.com/shopbook/shopbook-api/pkg/utils"
)

func newAuthService(env *testEnv) *AuthService {
	return NewAuthService(env.userRepo, utils.NewJWTManager("test-secret", time.Hour))
}

func TestRegister_SingleOwner(t *testing.T) {
	// GIVEN: no account exists
	// WHEN: registering twice
	// THEN: the first registration succeeds, the second is rejected

	env := newTestEnv(t)
	auth := newAuthService(env)
	ctx := context.Background()

	user, err := auth.Register(ctx, &RegisterInput{
		Name: "Owner", Email: "owner@shop.test", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", user.Password) // stored hashed

	_, err = auth.Register(ctx, &RegisterInput{
		Name: "Someone", Email: "other@shop.test", Password: "battery-staple",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)
	ctx := context.Background()

	_, err := auth.Register(ctx, &RegisterInput{
		Name: "Owner", Email: "owner@shop.test", Password: "correct-horse",
	})
	require.NoError(t, err)

	result, err := auth.Login(ctx, "owner@shop.test", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "owner@shop.test", result.User.Email)

	_, err = auth.Login(ctx, "owner@shop.test", "wrong-password")
	require.Error(t, err)

	_, err = auth.Login(ctx, "nobody@shop.test", "correct-horse")
	require.Error(t, err)
}

func TestRegister_PasswordTooShort(t *testing.T) {
	env := newTestEnv(t)
	auth := newAuthService(env)

	_, err := auth.Register(context.Background(), &RegisterInput{
		Name: "Owner", Email: "owner@shop.test", Password: "short",
	})
	require.Error(t, err)
}
