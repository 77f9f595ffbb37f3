package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"eduhub/config"
	"eduhub/models"
)

func withAppConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateToken(userID, "teacher@example.com", "Test Teacher", models.RoleModerator)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "teacher@example.com", claims.Email)
	assert.Equal(t, "Test Teacher", claims.FullName)
	assert.Equal(t, models.RoleModerator, claims.Role)
	assert.Equal(t, userID.Hex(), claims.Subject)
}

func TestTokenUsesConfiguredSecret(t *testing.T) {
	withAppConfig(t, &config.Config{JWTSecret: "configured-secret"})

	token, err := GenerateToken(primitive.NewObjectID(), "a@example.com", "A", models.RoleStudent)
	require.NoError(t, err)

	// Signed with the loaded configuration, not the env-default secret.
	_, err = jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("configured-secret"), nil
	})
	assert.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("your-secret-key"), nil
	})
	assert.Error(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestTokenSecretChangeInvalidatesOldTokens(t *testing.T) {
	withAppConfig(t, &config.Config{JWTSecret: "first-secret"})
	token, err := GenerateToken(primitive.NewObjectID(), "a@example.com", "A", models.RoleStudent)
	require.NoError(t, err)

	config.AppConfig = &config.Config{JWTSecret: "rotated-secret"}
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenUsesConfiguredTTL(t *testing.T) {
	withAppConfig(t, &config.Config{JWTSecret: "configured-secret", AccessTokenTTL: time.Hour})

	token, err := GenerateToken(primitive.NewObjectID(), "a@example.com", "A", models.RoleStudent)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, time.Hour, ttl)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	token, err := GenerateToken(primitive.NewObjectID(), "a@example.com", "A", models.RoleStudent)
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)
}
