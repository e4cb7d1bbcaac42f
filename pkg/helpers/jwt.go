package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token type discriminators carried in the "type" claim. Access tokens are
// the only kind the auth middleware accepts; refresh tokens are only good
// for minting a new pair.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrWrongTokenType   = errors.New("wrong token type")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
)

// JWTManager issues and validates HS256 bearer tokens. It is stateless:
// there is no server-side session record, a token is valid until it
// expires.
type JWTManager struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJWTManager(secret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

// Claims is the payload for both token kinds; TokenType discriminates.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs an access token for the given subject.
func (m *JWTManager) GenerateAccessToken(subject string) (string, time.Time, error) {
	return m.generate(subject, TokenTypeAccess, m.AccessTTL)
}

// GenerateRefreshToken signs a refresh token for the given subject.
func (m *JWTManager) GenerateRefreshToken(subject string) (string, time.Time, error) {
	return m.generate(subject, TokenTypeRefresh, m.RefreshTTL)
}

func (m *JWTManager) generate(subject, tokenType string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(m.Secret)
	return s, exp, err
}

// ParseAccessToken validates the signature, expiry, and access type.
func (m *JWTManager) ParseAccessToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, TokenTypeAccess)
}

// ParseRefreshToken validates the signature, expiry, and refresh type.
func (m *JWTManager) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return m.parse(tokenStr, TokenTypeRefresh)
}

func (m *JWTManager) parse(tokenStr, wantType string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedMethod
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrWrongTokenType, claims.TokenType, wantType)
	}
	return claims, nil
}
