package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("segredo-de-teste", 15*time.Minute)

	token, err := svc.GenerateToken("3f1c9b52-0b2e-4d55-9e0b-9c1d2c3e4f5a", "joao@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "3f1c9b52-0b2e-4d55-9e0b-9c1d2c3e4f5a", claims.Subject)
	assert.Equal(t, "joao@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewJWTService("segredo-a", 15*time.Minute)
	verifier := NewJWTService("segredo-b", 15*time.Minute)

	token, err := issuer.GenerateToken("user-id", "a@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewJWTService("segredo-de-teste", -1*time.Minute)

	token, err := svc.GenerateToken("user-id", "a@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewJWTService("segredo-de-teste", 15*time.Minute)

	_, err := svc.ValidateToken("isto-não-é-um-jwt")
	assert.Error(t, err)
}
