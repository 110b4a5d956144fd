package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

func withSigningKey(t *testing.T, key string) {
	t.Helper()
	viper.Set(constants.ViperSigningKeyKey, key)
	t.Cleanup(func() { viper.Set(constants.ViperSigningKeyKey, "") })
}

func TestAuthTokenRoundTrip(t *testing.T) {
	withSigningKey(t, "signing-key")

	token, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "s3cret"})
	require.NoError(t, err)

	parsed, err := ParseAuthToken(token)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", parsed.Secret)
	assert.Greater(t, parsed.ExpiresAt, time.Now().Unix())
}

func TestParseAuthTokenRejectsForeignKey(t *testing.T) {
	withSigningKey(t, "first")
	token, err := GenerateAuthToken(&AuthTokenWrapper{Secret: "s3cret"})
	require.NoError(t, err)

	viper.Set(constants.ViperSigningKeyKey, "second")
	_, err = ParseAuthToken(token)
	assert.True(t, errors.Is(err, constants.ErrUnauthorized))
}

func TestParseAuthTokenRejectsExpired(t *testing.T) {
	withSigningKey(t, "signing-key")
	wrapper := &AuthTokenWrapper{Secret: "s3cret"}
	wrapper.ExpiresAt = time.Now().Add(-time.Hour).Unix()
	token, err := GenerateAuthToken(wrapper)
	require.NoError(t, err)

	_, err = ParseAuthToken(token)
	assert.Error(t, err)
}

func TestGenerateAuthTokenNeedsKey(t *testing.T) {
	withSigningKey(t, "")
	_, err := GenerateAuthToken(&AuthTokenWrapper{})
	assert.ErrorIs(t, err, constants.ErrMissingSigningKey)
}
