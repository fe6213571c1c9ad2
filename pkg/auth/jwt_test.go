package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateJWT(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	tests := []struct {
		name           string
		userID         int
		login          string
		expirationTime time.Time
	}{
		{
			name:           "Valid Token",
			userID:         123,
			login:          "alice",
			expirationTime: time.Now().Add(time.Hour),
		},
		{
			name:           "Expired Token",
			userID:         123,
			login:          "alice",
			expirationTime: time.Now().Add(-time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwtService.GenerateJWT(tt.userID, tt.login, tt.expirationTime)
			assert.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestValidateToken(t *testing.T) {
	jwtService := NewJWTService(testSecret)

	sign := func(claims jwt.Claims, secret string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name          string
		tokenString   string
		setup         func() string
		expectedLogin string
		expectedErr   error
	}{
		{
			name: "Valid Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, "alice", time.Now().Add(time.Hour))
				return token
			},
			expectedLogin: "alice",
		},
		{
			name:        "Invalid Token",
			tokenString: "invalid.token.string",
			expectedErr: ErrInvalidToken,
		},
		{
			name: "Expired Token",
			setup: func() string {
				token, _ := jwtService.GenerateJWT(123, "alice", time.Now().Add(-time.Hour))
				return token
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "Signed With Another Secret",
			setup: func() string {
				token, _ := NewJWTService("other-secret").GenerateJWT(123, "alice", time.Now().Add(time.Hour))
				return token
			},
			expectedErr: ErrInvalidToken,
		},
		{
			name: "Missing Login",
			setup: func() string {
				return sign(Claims{
					UserID: 123,
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    Issuer,
					},
				}, testSecret)
			},
			expectedErr: ErrInvalidClaims,
		},
		{
			name: "Foreign Issuer",
			setup: func() string {
				return sign(Claims{
					UserID: 123,
					Login:  "alice",
					StandardClaims: jwt.StandardClaims{
						ExpiresAt: time.Now().Add(time.Hour).Unix(),
						Issuer:    "other-service",
					},
				}, testSecret)
			},
			expectedErr: ErrInvalidClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString := tt.tokenString
			if tt.setup != nil {
				tokenString = tt.setup()
			}

			claims, err := jwtService.ValidateToken(tokenString)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLogin, claims.Login)
			assert.Equal(t, 123, claims.UserID)
		})
	}
}
