// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/sec"
)

// newTestTokenService builds a TokenService around a throwaway RSA key pair.
func newTestTokenService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	service, err := sec.NewTokenServiceFromPEM(privatePEM, publicPEM, issuer)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that issued tokens verify and carry claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTestTokenService(t, "press.test")

	token, err := service.GenerateAccessToken("u-1", "writer", string(sec.RoleAuthor), time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "writer", claims.Username)
	assert.Equal(t, "author", claims.Role)
}

/*
TestTokenService_Expired verifies that expired tokens are rejected.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTestTokenService(t, "press.test")

	token, err := service.GenerateAccessToken("u-1", "writer", "author", -time.Minute)
	require.NoError(t, err)

	_, err = service.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestTokenService_ForeignIssuer verifies that a token signed by another service is rejected.
*/
func TestTokenService_ForeignIssuer(t *testing.T) {
	issuerA := newTestTokenService(t, "a.test")
	issuerB := newTestTokenService(t, "b.test")

	token, err := issuerA.GenerateAccessToken("u-1", "writer", "author", time.Minute)
	require.NoError(t, err)

	_, err = issuerB.VerifyToken(token)
	assert.Error(t, err)
}

/*
TestSecureToken verifies randomness and stable hashing.
*/
func TestSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
	assert.NotEqual(t, sec.HashToken(first), sec.HashToken(second))
	assert.Len(t, sec.HashToken(first), 64)
}

/*
TestPasswordHash verifies bcrypt round-trip.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("wrong horse", hash))
}

/*
TestUserRole_AtLeast verifies the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAuthor))
	assert.True(t, sec.RoleAuthor.AtLeast(sec.RoleAuthor))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleAuthor))
	assert.False(t, sec.UserRole("ghost").IsValid())
}
