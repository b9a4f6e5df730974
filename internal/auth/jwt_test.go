package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-signing-secret-32-chars"

func TestIssueAndValidateProviderToken(t *testing.T) {
	t.Parallel()

	providerID := uuid.New()

	token, err := IssueProviderToken(testSecret, providerID, 15*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, providerID.String(), claims.ProviderID)
	assert.Equal(t, providerID.String(), claims.Subject)
	assert.Equal(t, "agendahub", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := IssueProviderToken(testSecret, uuid.New(), -time.Second)
	require.NoError(t, err)

	claims, err := ValidateToken(testSecret, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueProviderToken(testSecret, uuid.New(), 15*time.Minute)
	require.NoError(t, err)

	claims, err := ValidateToken("another-secret-also-32-chars-long", token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := ValidateToken(testSecret, "not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}
