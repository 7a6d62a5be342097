package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePIN(t *testing.T) {
	assert.NoError(t, ValidatePIN("0000"))
	assert.NoError(t, ValidatePIN("4821"))

	assert.Error(t, ValidatePIN(""))
	assert.Error(t, ValidatePIN("123"))
	assert.Error(t, ValidatePIN("12345"))
	assert.Error(t, ValidatePIN("12a4"))
	assert.Error(t, ValidatePIN("12 4"))
}

func TestHashAndCheckPIN(t *testing.T) {
	hash, err := HashPIN("4821")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "4821", hash)

	assert.True(t, CheckPINHash("4821", hash))
	assert.False(t, CheckPINHash("4822", hash))
	assert.False(t, CheckPINHash("4821", "not-a-hash"))
}

func TestNormalizeMobile(t *testing.T) {
	assert.Equal(t, "+919876543210", NormalizeMobile("+91 98765 43210"))
	assert.Equal(t, "9876543210", NormalizeMobile("98765-43210"))
	assert.Equal(t, "9876543210", NormalizeMobile("(98765) 43210"))
	assert.Equal(t, "9876543210", NormalizeMobile("98765+43210"))
}
