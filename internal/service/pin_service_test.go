package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2PINService_HashAndVerify(t *testing.T) {
	svc := NewArgon2PINService()

	pin := "4921"
	hash, err := svc.Hash(pin)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Format check
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v="), "hash should start with $argon2id$v=")

	match, err := svc.Verify(pin, hash)
	require.NoError(t, err)
	assert.True(t, match, "correct PIN should verify")
}

func TestArgon2PINService_VerifyWrongPIN(t *testing.T) {
	svc := NewArgon2PINService()

	hash, err := svc.Hash("4921")
	require.NoError(t, err)

	match, err := svc.Verify("0000", hash)
	require.NoError(t, err)
	assert.False(t, match, "wrong PIN should not verify")
}

func TestArgon2PINService_UniqueSalts(t *testing.T) {
	svc := NewArgon2PINService()

	hash1, err := svc.Hash("4921")
	require.NoError(t, err)

	hash2, err := svc.Hash("4921")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2, "same PIN should produce different hashes (different salts)")
}

func TestArgon2PINService_VerifyInvalidFormat(t *testing.T) {
	svc := NewArgon2PINService()

	_, err := svc.Verify("4921", "not-a-valid-hash")
	assert.Error(t, err)
}

func TestArgon2PINService_HashContainsParams(t *testing.T) {
	svc := NewArgon2PINService()

	hash, err := svc.Hash("4921")
	require.NoError(t, err)

	assert.Contains(t, hash, "m=65536,t=1,p=4", "hash should contain Argon2id params")
}
