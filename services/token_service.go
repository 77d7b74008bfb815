// File: /services/token_service.go
package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)

var (
	// ErrTokenMalformed marks token strings that are not even structurally
	// JWTs. Surfaced as 422 so clients can tell a broken token apart from a
	// merely rejected one.
	ErrTokenMalformed = errors.New("token is not valid")
	// ErrTokenInvalid covers everything else: bad signature, expiry, wrong
	// kind, wrong issuer. Surfaced as 401.
	ErrTokenInvalid = errors.New("invalid token")
)

type TokenClaims struct {
	Kind string `json:"kind"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the two bearer token kinds: short-lived
// access tokens for regular endpoints and longer-lived refresh tokens that
// only mint new access tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret, issuer string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *TokenService) IssueAccess(userID uint) (string, error) {
	return s.issue(userID, TokenKindAccess, s.accessTTL)
}

func (s *TokenService) IssueRefresh(userID uint) (string, error) {
	return s.issue(userID, TokenKindRefresh, s.refreshTTL)
}

func (s *TokenService) issue(userID uint, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses tokenStr and returns the embedded user id. requireRefresh
// selects which token kind is acceptable; a valid token of the other kind is
// rejected as ErrTokenInvalid.
func (s *TokenService) Verify(tokenStr string, requireRefresh bool) (uint, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return 0, ErrTokenMalformed
		}
		return 0, ErrTokenInvalid
	}

	claims, ok := t.Claims.(*TokenClaims)
	if !ok || !t.Valid {
		return 0, ErrTokenInvalid
	}

	wantKind := TokenKindAccess
	if requireRefresh {
		wantKind = TokenKindRefresh
	}
	if claims.Kind != wantKind {
		return 0, ErrTokenInvalid
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrTokenInvalid
	}
	return uint(userID), nil
}
