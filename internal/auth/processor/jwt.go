package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insight-mailer/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken    = errors.New("token expired")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
	ErrNotAdmin        = errors.New("token does not grant admin access")
)

const (
	RoleAdmin = "admin"
	issuer    = "insight-mailer"
)

// AdminClaims are the claims carried by an admin token
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthProcessor signs and validates admin tokens with a shared HMAC secret
type AuthProcessor struct {
	secret []byte
	logger *observability.Logger
}

func New(secret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{secret: []byte(secret), logger: logger}
}

// GenerateAdminToken issues a token for an admin, used by operators and tests
func (p *AuthProcessor) GenerateAdminToken(ctx context.Context, adminID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{issuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateAdminToken parses token and requires the admin role
func (p *AuthProcessor) ValidateAdminToken(ctx context.Context, token string) (AdminClaims, error) {
	var claims AdminClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.InfoWithError(ctx, "token expired", err)
			return AdminClaims{}, ErrExpiredToken
		}
		p.logger.InfoWithError(ctx, "failed to parse token", err)
		return AdminClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return AdminClaims{}, ErrInvalidJWTToken
	}
	if claims.Role != RoleAdmin || claims.Subject == "" {
		return AdminClaims{}, ErrNotAdmin
	}
	return claims, nil
}
