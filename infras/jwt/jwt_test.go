package jwt_test

import (
	"carrental/config"
	"testing"
	"time"

	carjwt "carrental/infras/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "access-secret"

func sign(t *testing.T, claims carjwt.Claims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func newService() carjwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = testSecret
	cfg.JWT.Issuer = "accounts"

	return carjwt.New(cfg)
}

func validClaims() carjwt.Claims {
	now := time.Now()

	return carjwt.Claims{
		UserID: "42",
		Role:   "customer",
		Type:   carjwt.AccessToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "accounts",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	tests := []struct {
		name      string
		token     func(t *testing.T) string
		wantErr   error
		wantClaim string
	}{
		{
			name:      "valid token",
			token:     func(t *testing.T) string { return sign(t, validClaims(), testSecret) },
			wantClaim: "42",
		},
		{
			name:    "wrong secret",
			token:   func(t *testing.T) string { return sign(t, validClaims(), "other") },
			wantErr: carjwt.ErrInvalidToken,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

				return sign(t, c, testSecret)
			},
			wantErr: carjwt.ErrExpiredToken,
		},
		{
			name: "foreign issuer",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Issuer = "someone-else"

				return sign(t, c, testSecret)
			},
			wantErr: carjwt.ErrInvalidToken,
		},
		{
			name: "refresh token is rejected",
			token: func(t *testing.T) string {
				c := validClaims()
				c.Type = "refresh"

				return sign(t, c, testSecret)
			},
			wantErr: carjwt.ErrInvalidClaim,
		},
	}

	svc := newService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantClaim, claims.UserID)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := carjwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = carjwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = carjwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)
}
