package jwt

import (
	"errors"
	"time"

	"diagnolab/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims carry the session identity. Role and vendor approval status
// ride in the token so route gating does not need a DB round trip.
type Claims struct {
	UserID         uuid.UUID `json:"user_id"`
	Email          string    `json:"email"`
	RoleID         int       `json:"role_id"`
	ApprovalStatus string    `json:"approval_status,omitempty"`
	TokenType      TokenType `json:"token_type"`
	TokenID        string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.JWTConfig
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// Identity is the claim payload shared by both token kinds
type Identity struct {
	UserID         uuid.UUID
	Email          string
	RoleID         int
	ApprovalStatus string
}

func (s *JWTService) GenerateAccessToken(id Identity) (string, string, error) {
	return s.generate(id, AccessToken, s.config.AccessExpiry)
}

func (s *JWTService) GenerateRefreshToken(id Identity) (string, string, error) {
	return s.generate(id, RefreshToken, s.config.RefreshExpiry)
}

func (s *JWTService) generate(id Identity, tokenType TokenType, expiry time.Duration) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:         id.UserID,
		Email:          id.Email,
		RoleID:         id.RoleID,
		ApprovalStatus: id.ApprovalStatus,
		TokenType:      tokenType,
		TokenID:        tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetAccessExpiry() time.Duration {
	return s.config.AccessExpiry
}

func (s *JWTService) GetRefreshExpiry() time.Duration {
	return s.config.RefreshExpiry
}
