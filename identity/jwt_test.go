// identity/jwt_test.go
package identity_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/identity"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims identity.SupabaseClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims() identity.SupabaseClaims {
	return identity.SupabaseClaims{
		Email: "admin@example.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_GetUser(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)

	t.Run("Valid", func(t *testing.T) {
		user, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
		require.NoError(t, err)
		assert.Equal(t, "u-1", user.ID)
		assert.Equal(t, "admin@example.com", user.Email)
	})

	t.Run("Expired", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		_, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})

	t.Run("NoExpiry", func(t *testing.T) {
		claims := validClaims()
		claims.ExpiresAt = nil
		_, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte("another-secret"), validClaims()))
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		claims := validClaims()
		claims.Audience = jwt.ClaimStrings{"anon"}
		_, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), claims))
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})

	t.Run("WrongAlgorithm", func(t *testing.T) {
		_, err := verifier.GetUser(context.Background(), sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims()))
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := verifier.GetUser(context.Background(), "not.a.jwt")
		assert.ErrorIs(t, err, bc_errors.ErrInvalidToken)
	})
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := identity.NewJWTVerifier("  ")
	assert.Error(t, err)
}

func TestNewProvider_SplitsResolverAndAdmin(t *testing.T) {
	verifier, err := identity.NewJWTVerifier(testSecret)
	require.NoError(t, err)
	gotrue := identity.NewGoTrueClient("http://127.0.0.1:1", "anon", "")

	provider := identity.NewProvider(verifier, gotrue)

	user, err := provider.GetUser(context.Background(), sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims()))
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.ErrorIs(t, provider.DeleteUser(context.Background(), "u-1"), bc_errors.ErrIdentityDeleteFailed)
}
