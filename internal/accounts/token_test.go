package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, time.Hour)
	require.NoError(t, err)

	id, err := AccountIDFromToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", id)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = AccountIDFromToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("acc-1", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = AccountIDFromToken(token, testSecret)
	assert.Error(t, err)
}
