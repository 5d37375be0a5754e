package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"garrison/internal/shared/authorization"
)

// Claims carries the signed session identity. Field names match what API
// clients expect in the token payload.
type Claims struct {
	UserID uint                   `json:"userId"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	BaseID *uint                  `json:"base_id"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the authorization identity used by the
// permission gate.
func (c *Claims) Identity() authorization.Identity {
	return authorization.Identity{
		UserID: c.UserID,
		Email:  c.Email,
		Role:   c.Role,
		BaseID: c.BaseID,
	}
}

type JWTService struct {
	secret         []byte
	expiresInHours int
}

func NewJWTService(secret string, expiresInHours int) *JWTService {
	if expiresInHours <= 0 {
		expiresInHours = 24
	}
	return &JWTService{
		secret:         []byte(secret),
		expiresInHours: expiresInHours,
	}
}

// Generate signs a token for the given identity.
func (s *JWTService) Generate(identity authorization.Identity) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		BaseID: identity.BaseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiresInHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
