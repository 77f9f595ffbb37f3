// utils/jwt.go
package utils

import (
	"errors"
	"os"
	"time"

	"eduhub/config"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Claims struct {
	UserID   primitive.ObjectID `json:"user_id"`
	Email    string             `json:"email"`
	FullName string             `json:"full_name"`
	Role     string             `json:"role"`
	jwt.RegisteredClaims
}

// signingSecret resolves the secret from the loaded configuration. The
// env fallback covers code paths that run before LoadConfig; reading it
// here rather than at package init keeps a .env-supplied secret in
// effect.
func signingSecret() []byte {
	if config.AppConfig != nil && config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	return []byte(getEnv("JWT_SECRET", "your-secret-key"))
}

func accessTokenTTL() time.Duration {
	if config.AppConfig != nil && config.AppConfig.AccessTokenTTL > 0 {
		return config.AppConfig.AccessTokenTTL
	}
	return 24 * time.Hour
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GenerateToken creates a new signed session token.
func GenerateToken(userID primitive.ObjectID, email, fullName, role string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		FullName: fullName,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "eduhub",
			Subject:   userID.Hex(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret())
}

// ValidateToken validates and parses a session token.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return signingSecret(), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
