package service

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "taller-system/pkg/errors"
)

// SessionClaims carries the whole session identity so handlers never have to
// re-fetch the user mid-request.
type SessionClaims struct {
	UserID   uint64 `json:"userId"`
	Role     string `json:"rol"`
	BranchID uint64 `json:"sucursalId"`
	jwt.RegisteredClaims
}

type JWTService interface {
	GenerateToken(userID uint64, role string, branchID uint64) (string, error)
	ValidateToken(tokenString string) (*SessionClaims, error)
	AccessTokenTTL() time.Duration
}

type jwtService struct {
	secretKey string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewJWTService(secretKey string, tokenTTL time.Duration, logger *zap.Logger) JWTService {
	return &jwtService{secretKey: secretKey, tokenTTL: tokenTTL, logger: logger}
}

func (s *jwtService) GenerateToken(userID uint64, role string, branchID uint64) (string, error) {
	claims := &SessionClaims{
		UserID:   userID,
		Role:     role,
		BranchID: branchID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *jwtService) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrInvalidSigningMethod
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		s.logger.Debug("token validation failed", zap.Error(err))
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}
	return claims, nil
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.tokenTTL
}
