package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/spf13/viper"

	"github.com/ihbirlik/geocoord-pro/internal/pkg/constants"
)

const adminTokenTTL = 24 * time.Hour

type AuthTokenWrapper struct {
	jwt.StandardClaims
	Secret string `json:"secret,omitempty"`
}

func signingKey() ([]byte, error) {
	key := viper.GetString(constants.ViperSigningKeyKey)
	if key == "" {
		return nil, constants.ErrMissingSigningKey
	}
	return []byte(key), nil
}

// GenerateAuthToken signs the wrapper with the configured key. A zero expiry
// is replaced with the default admin token lifetime.
func GenerateAuthToken(wrapper *AuthTokenWrapper) (string, error) {
	key, err := signingKey()
	if err != nil {
		return "", err
	}

	if wrapper.ExpiresAt == 0 {
		wrapper.ExpiresAt = time.Now().Add(adminTokenTTL).Unix()
	}
	if wrapper.IssuedAt == 0 {
		wrapper.IssuedAt = time.Now().Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}
	return signed, nil
}

func ParseAuthToken(tokenString string) (*AuthTokenWrapper, error) {
	key, err := signingKey()
	if err != nil {
		return nil, err
	}

	wrapper := new(AuthTokenWrapper)
	_, err = jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnauthorized, err.Error())
	}

	return wrapper, nil
}
