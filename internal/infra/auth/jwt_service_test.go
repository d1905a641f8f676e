package auth

import (
	"testing"
	"time"

	"referidos/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(newJWTConfig("", ""))
	assert.Error(t, err)

	_, err = NewJWTService(newJWTConfig("access-secret", ""))
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	subjectID := uuid.New()
	access, refresh, err := svc.GenerateTokens(subjectID, []string{"socio"})
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, subjectID, claims.SubjectID)
	assert.Equal(t, "access", claims.Type)
	assert.Equal(t, []string{"socio"}, claims.Roles)
}

func TestJWTService_RefreshTokenRejectedAsAccess(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	_, refresh, err := svc.GenerateTokens(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	// The refresh token is signed with the refresh secret, so validating it
	// against the access secret must fail.
	_, err = svc.ValidateToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	access, _, err := svc.GenerateTokens(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access + "x")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	other, err := NewJWTService(newJWTConfig("other-secret", "other-refresh"))
	require.NoError(t, err)

	access, _, err := other.GenerateTokens(uuid.New(), []string{"admin"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.Error(t, err)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newJWTConfig("access-secret", "refresh-secret"))
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, svc.GetRefreshTokenDuration())
}
