package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	minSecretLength = 16
	// clockSkew tolerated between the backend issuing tokens and this service.
	clockSkew = 30 * time.Second
)

// JWTConfig is the resolved token setup shared by the server and the token command.
type JWTConfig struct {
	Secret []byte
	TTL    time.Duration
	Leeway time.Duration
}

// NewJWTConfig checks the shared secret and converts the lifetime in hours.
func NewJWTConfig(secret string, expirationHours int) (*JWTConfig, error) {
	switch {
	case secret == "":
		return nil, errors.New("auth.jwt_secret (TALENTBRIDGE_AUTH_JWT_SECRET or JWT_SECRET) is required but not set")
	case len(secret) < minSecretLength:
		return nil, fmt.Errorf("auth.jwt_secret must be at least %d characters, got: %d", minSecretLength, len(secret))
	case expirationHours < 1:
		return nil, fmt.Errorf("auth.jwt_expiration_hours must be at least 1 hour, got: %d", expirationHours)
	}

	return &JWTConfig{
		Secret: []byte(secret),
		TTL:    time.Duration(expirationHours) * time.Hour,
		Leeway: clockSkew,
	}, nil
}

// JWT derives the token configuration from the auth section.
func (c *Config) JWT() (*JWTConfig, error) {
	return NewJWTConfig(c.Auth.JWTSecret, c.Auth.JWTExpirationHours)
}
