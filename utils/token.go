package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"pharmacy-pos-backend/config"

	"aidanwoods.dev/go-paseto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrWrongTokenType = errors.New("invalid token type")
)

type TokenClaims struct {
	TokenID   string
	UserID    uint
	Username  string
	Type      string
	ExpiresAt time.Time
}

// TokenMaker signs and verifies bearer tokens
type TokenMaker interface {
	CreateToken(userID uint, username, tokenType string, ttl time.Duration) (string, error)
	VerifyToken(token string) (*TokenClaims, error)
}

// NewTokenMaker picks the implementation named by TOKEN_FORMAT
func NewTokenMaker(cfg *config.Config) (TokenMaker, error) {
	switch cfg.TokenFormat {
	case "", "jwt":
		return NewJWTMaker(cfg.JwtSecret)
	case "paseto":
		return NewPasetoMaker(cfg.PasetoSymmetricKey)
	default:
		return nil, fmt.Errorf("unsupported TOKEN_FORMAT %q", cfg.TokenFormat)
	}
}

// TokenService issues the access/refresh pair with the configured lifetimes
type TokenService struct {
	Maker      TokenMaker
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewTokenService(cfg *config.Config) (*TokenService, error) {
	maker, err := NewTokenMaker(cfg)
	if err != nil {
		return nil, err
	}
	return &TokenService{
		Maker:      maker,
		AccessTTL:  time.Duration(cfg.AccessTokenTTL) * time.Minute,
		RefreshTTL: time.Duration(cfg.RefreshTokenTTL) * 24 * time.Hour,
	}, nil
}

func (s *TokenService) GenerateAccessToken(userID uint, username string) (string, error) {
	return s.Maker.CreateToken(userID, username, TokenTypeAccess, s.AccessTTL)
}

func (s *TokenService) GenerateRefreshToken(userID uint, username string) (string, error) {
	return s.Maker.CreateToken(userID, username, TokenTypeRefresh, s.RefreshTTL)
}

// ValidateToken verifies token and checks it is of the expected type
func (s *TokenService) ValidateToken(token, expectedType string) (*TokenClaims, error) {
	claims, err := s.Maker.VerifyToken(token)
	if err != nil {
		return nil, err
	}
	if claims.Type != expectedType {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// JWTMaker signs HS256 JSON Web Tokens
type JWTMaker struct {
	secret []byte
}

const minJWTSecretLength = 32

type jwtClaims struct {
	UserID    uint   `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func NewJWTMaker(secret string) (*JWTMaker, error) {
	if len(secret) < minJWTSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters", minJWTSecretLength)
	}
	return &JWTMaker{secret: []byte(secret)}, nil
}

func (m *JWTMaker) CreateToken(userID uint, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *JWTMaker) VerifyToken(token string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwtClaims)
	if !ok || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		TokenID:   claims.ID,
		UserID:    claims.UserID,
		Username:  claims.Username,
		Type:      claims.TokenType,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// PasetoMaker issues v4.local tokens
type PasetoMaker struct {
	key paseto.V4SymmetricKey
}

func NewPasetoMaker(symmetricKey string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromBytes([]byte(symmetricKey))
	if err != nil {
		return nil, fmt.Errorf("invalid PASETO symmetric key: %w", err)
	}
	return &PasetoMaker{key: key}, nil
}

func (m *PasetoMaker) CreateToken(userID uint, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := paseto.NewToken()
	token.SetJti(uuid.NewString())
	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(ttl))
	token.SetString("userId", strconv.FormatUint(uint64(userID), 10))
	token.SetString("username", username)
	token.SetString("type", tokenType)

	return token.V4Encrypt(m.key, nil), nil
}

func (m *PasetoMaker) VerifyToken(tokenString string) (*TokenClaims, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())

	token, err := parser.ParseV4Local(m.key, tokenString, nil)
	if err != nil {
		return nil, ErrInvalidToken
	}

	rawUserID, err := token.GetString("userId")
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseUint(rawUserID, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := token.GetString("username")
	tokenType, _ := token.GetString("type")
	jti, _ := token.GetJti()
	expiresAt, err := token.GetExpiration()
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		TokenID:   jti,
		UserID:    uint(userID),
		Username:  username,
		Type:      tokenType,
		ExpiresAt: expiresAt,
	}, nil
}
