package env

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/config"
)

const (
	accessTokenKeyEnvName       = "ACCESS_TOKEN"
	accessTokenDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshTokenDurationEnvName = "REFRESH_TOKEN_DURATION"

	// Секрет из оригинального демо. Приложение учебное,
	// поэтому при пустом окружении стартуем на нем, а не падаем
	demoSecretKey = "demo-secret-key-yahoobank"

	defaultAccessTokenDuration  = 15 * time.Minute
	defaultRefreshTokenDuration = 30 * 24 * time.Hour
)

type authConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

func NewAuthConfig() (config.AuthConfig, error) {
	secretKey := os.Getenv(accessTokenKeyEnvName)
	if len(secretKey) == 0 {
		log.Printf("%s not set, using the insecure demo secret", accessTokenKeyEnvName)
		secretKey = demoSecretKey
	}

	accessTokenDuration := defaultAccessTokenDuration
	if raw := os.Getenv(accessTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid access token duration: %w", err)
		}
		accessTokenDuration = parsed
	}

	refreshTokenDuration := defaultRefreshTokenDuration
	if raw := os.Getenv(refreshTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid refresh token duration: %w", err)
		}
		refreshTokenDuration = parsed
	}

	return &authConfig{
		accessTokenSecretKey: secretKey,
		accessTokenDuration:  accessTokenDuration,
		refreshTokenDuration: refreshTokenDuration,
	}, nil
}

func (cfg *authConfig) AccessTokenSecretKey() []byte {
	return []byte(cfg.accessTokenSecretKey)
}

func (cfg *authConfig) AccessTokenDuration() time.Duration {
	return cfg.accessTokenDuration
}

func (cfg *authConfig) RefreshTokenDuration() time.Duration {
	return cfg.refreshTokenDuration
}
