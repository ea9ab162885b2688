package utils

import (
	"strings"
	"testing"
	"time"

	"pharmacy-pos-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-secret-test-secret-test-secret-0123"
	testPasetoKey = "0123456789abcdef0123456789abcdef"
)

func makers(t *testing.T) map[string]TokenMaker {
	jwtMaker, err := NewJWTMaker(testJWTSecret)
	require.NoError(t, err)
	pasetoMaker, err := NewPasetoMaker(testPasetoKey)
	require.NoError(t, err)

	return map[string]TokenMaker{"jwt": jwtMaker, "paseto": pasetoMaker}
}

func TestTokenMakerRoundTrip(t *testing.T) {
	for name, maker := range makers(t) {
		t.Run(name, func(t *testing.T) {
			token, err := maker.CreateToken(42, "alice", TokenTypeAccess, time.Minute)
			require.NoError(t, err)

			claims, err := maker.VerifyToken(token)
			require.NoError(t, err)
			assert.EqualValues(t, 42, claims.UserID)
			assert.Equal(t, "alice", claims.Username)
			assert.Equal(t, TokenTypeAccess, claims.Type)
			assert.NotEmpty(t, claims.TokenID)
			assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
		})
	}
}

func TestTokenMakerRejectsExpired(t *testing.T) {
	for name, maker := range makers(t) {
		t.Run(name, func(t *testing.T) {
			token, err := maker.CreateToken(1, "bob", TokenTypeRefresh, -time.Minute)
			require.NoError(t, err)

			_, err = maker.VerifyToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenMakerRejectsTampered(t *testing.T) {
	for name, maker := range makers(t) {
		t.Run(name, func(t *testing.T) {
			token, err := maker.CreateToken(1, "bob", TokenTypeAccess, time.Minute)
			require.NoError(t, err)

			_, err = maker.VerifyToken(token + "x")
			assert.ErrorIs(t, err, ErrInvalidToken)
			_, err = maker.VerifyToken("not-a-token")
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenMakersDoNotAcceptEachOther(t *testing.T) {
	all := makers(t)
	token, err := all["jwt"].CreateToken(1, "bob", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = all["paseto"].VerifyToken(token)
	assert.Error(t, err)
}

func TestJWTMakerRejectsOtherSecret(t *testing.T) {
	issuer, err := NewJWTMaker(testJWTSecret)
	require.NoError(t, err)
	verifier, err := NewJWTMaker(strings.Repeat("z", 40))
	require.NoError(t, err)

	token, err := issuer.CreateToken(1, "bob", TokenTypeAccess, time.Minute)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenMakerValidation(t *testing.T) {
	_, err := NewJWTMaker("short")
	assert.Error(t, err)

	_, err = NewPasetoMaker("too-short")
	assert.Error(t, err)

	_, err = NewTokenMaker(&config.Config{TokenFormat: "saml"})
	assert.Error(t, err)

	maker, err := NewTokenMaker(&config.Config{TokenFormat: "paseto", PasetoSymmetricKey: testPasetoKey})
	require.NoError(t, err)
	assert.IsType(t, &PasetoMaker{}, maker)
}

func TestTokenServiceValidateTokenType(t *testing.T) {
	service, err := NewTokenService(&config.Config{
		TokenFormat:     "jwt",
		JwtSecret:       testJWTSecret,
		AccessTokenTTL:  15,
		RefreshTokenTTL: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, service.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, service.RefreshTTL)

	refresh, err := service.GenerateRefreshToken(3, "carol")
	require.NoError(t, err)

	_, err = service.ValidateToken(refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrWrongTokenType)

	claims, err := service.ValidateToken(refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.EqualValues(t, 3, claims.UserID)
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(true, false, "pharmacist"))
	assert.True(t, IsAdmin(false, true, "pharmacist"))
	assert.True(t, IsAdmin(false, false, "Admin"))
	assert.True(t, IsAdmin(false, false, "ADMIN"))
	assert.False(t, IsAdmin(false, false, "administrator"))
	assert.False(t, IsAdmin(false, false, "pharmacist"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPasswordHash("correct horse", hash))
	assert.False(t, CheckPasswordHash("battery staple", hash))
}
