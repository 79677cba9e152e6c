package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuePairAndValidate(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")

	pair, err := IssuePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := ValidateToken(pair.Access, TokenTypeAccess)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)

	claims, err = ValidateToken(pair.Refresh, TokenTypeRefresh)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
}

func TestValidateTokenRejectsWrongType(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")

	pair, err := IssuePair(7)
	require.NoError(t, err)

	_, err = ValidateToken(pair.Refresh, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ValidateToken(pair.Access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")
	token, err := IssueAccess(1)
	require.NoError(t, err)

	_, err = ValidateToken(token+"x", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = ValidateToken("not-a-token", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed under one secret must fail under another.
	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
