package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("some-user-id", "user")
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", userID)
	assert.Equal(t, "user", role)
}

func TestResetTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenResetPassword(map[string]any{
		"user_id": "some-user-id",
	}, time.Minute*30)
	require.NoError(t, err)

	claims, err := service.ValidateTokenResetPassword(token)
	require.NoError(t, err)
	assert.Equal(t, "some-user-id", claims["user_id"])
}

func TestExpiredResetTokenRejected(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenResetPassword(map[string]any{
		"user_id": "some-user-id",
	}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenResetPassword(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.Error(t, err)
}
