package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clovera/admin-api/internal"
	"github.com/golang-jwt/jwt/v5"
)

// Admin is the authenticated console operator. Its serialized form is the
// durable session record and must round-trip byte-for-byte.
type Admin struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// State is what the gate currently knows about the session. Loading covers
// the window between process start and the durable-record restore, so route
// guards can defer instead of redirecting prematurely.
type State string

const (
	StateLoading State = "loading"
	StateAbsent  State = "absent"
	StateActive  State = "active"
)

// Session is what a successful login hands to the UI.
type Session struct {
	Admin       Admin  `json:"admin"`
	AccessToken string `json:"access_token"`
}

// Claims represents JWT token claims.
type Claims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// TokenGenerator creates and validates session tokens.
type TokenGenerator interface {
	GenerateAccessToken(admin Admin) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type JWTTokenGenerator struct {
	Secret []byte
	TTL    time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret: []byte(secret),
		TTL:    ttl,
	}
}

func (j *JWTTokenGenerator) GenerateAccessToken(admin Admin) (string, error) {
	now := time.Now()
	claims := &Claims{
		AdminID: admin.ID,
		Email:   admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   admin.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, internal.ErrInvalidToken
}

// ContextWithAdmin stores the authenticated admin on the request context.
func ContextWithAdmin(ctx context.Context, admin *Admin) context.Context {
	return context.WithValue(ctx, internal.ContextAdminKey, admin)
}

// AdminFromContext retrieves the authenticated admin from context.
func AdminFromContext(ctx context.Context) (*Admin, bool) {
	if ctx == nil {
		return nil, false
	}
	admin, ok := ctx.Value(internal.ContextAdminKey).(*Admin)
	return admin, ok && admin != nil
}
