package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "pathclear-test",
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name        string
		userID      string
		role        models.Role
		expectError bool
	}{
		{name: "Driver token", userID: "driver-1", role: models.RoleDriver},
		{name: "Rider token", userID: "rider-1", role: models.RoleRider},
		{name: "Unknown role", userID: "x", role: models.Role("passenger"), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.role, getTestConfig())
			if tt.expectError {
				assert.ErrorIs(t, err, models.ErrInvalidRole)
				assert.Empty(t, tokenString)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			claims, err := ValidateToken(tokenString, getTestConfig().Secret)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.role, claims.Role)
			assert.Equal(t, "pathclear-test", claims.Issuer)
		})
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	tokenString, _, err := GenerateToken("rider-1", models.RoleRider, getTestConfig())
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "another-secret")
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	claims := models.WebSocketClaims{
		UserID: "rider-1",
		Role:   models.RoleRider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(getTestConfig().Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, getTestConfig().Secret)
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	_, err := ValidateToken("not-a-token", getTestConfig().Secret)
	assert.Error(t, err)
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := models.WebSocketClaims{UserID: "rider-1", Role: models.RoleRider}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, getTestConfig().Secret)
	assert.Error(t, err)
}
