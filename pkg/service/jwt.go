package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	apperrors "agrorent-api/pkg/errors"
)

// JwtCustomClaim carries the subject user id and email inside the access
// token, mirroring what clients expect from the /auth endpoints.
type JwtCustomClaim struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID string, email string) (string, error)
	ValidateToken(tokenString string) (*JwtCustomClaim, error)
	AccessTokenTTL() time.Duration
}

type jwtService struct {
	secretKey      string
	accessTokenTTL time.Duration
}

func NewJWTService(secretKey string, accessTokenTTL time.Duration) JWTService {
	return &jwtService{
		secretKey:      secretKey,
		accessTokenTTL: accessTokenTTL,
	}
}

func (s *jwtService) GenerateToken(userID string, email string) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaim{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and verifies an access token. Every failure mode is
// reported through the same small set of auth errors so the response layer
// never leaks which part of the token was wrong.
func (s *jwtService) ValidateToken(tokenString string) (*JwtCustomClaim, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*JwtCustomClaim)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	return claims, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTokenTTL
}
