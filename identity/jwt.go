// identity/jwt.go
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

const supabaseAudience = "authenticated"

// SupabaseClaims are the claims Supabase puts in user access tokens.
type SupabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier resolves tokens locally by checking the HS256 signature with
// the project's JWT secret.
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("jwt secret is not configured")
	}
	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithAudience(supabaseAudience),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

func (v *JWTVerifier) GetUser(_ context.Context, token string) (*model.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, bc_errors.ErrInvalidToken
	}

	claims := &SupabaseClaims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, bc_errors.ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, bc_errors.ErrInvalidToken
	}
	return &model.Identity{ID: claims.Subject, Email: claims.Email}, nil
}
