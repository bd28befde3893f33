package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jonathan/talentbridge/internal/config"
	"github.com/jonathan/talentbridge/internal/server/middleware"
)

// Claims are the HS256 claims issued by the marketplace backend. The subject is the
// user ID.
type Claims struct {
	Role     string `json:"role"`
	ClientID string `json:"client_id,omitempty"`
	jwt.RegisteredClaims
}

// GetPrincipal implements middleware.PrincipalGetter.
func (c *Claims) GetPrincipal() (middleware.Principal, error) {
	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return middleware.Principal{}, fmt.Errorf("invalid subject: %w", err)
	}

	p := middleware.Principal{UserID: userID, Role: c.Role}
	if c.ClientID != "" {
		p.ClientID, err = uuid.Parse(c.ClientID)
		if err != nil {
			return middleware.Principal{}, fmt.Errorf("invalid client_id: %w", err)
		}
	}
	if p.Role == middleware.RoleClient && p.ClientID == uuid.Nil {
		return middleware.Principal{}, errors.New("client token without client_id")
	}
	return p, nil
}

// JWTService issues and checks tokens signed with the shared backend secret.
type JWTService struct {
	config *config.JWTConfig
	parser *jwt.Parser
}

// NewJWTService builds a service that accepts HS256 tokens with an expiry only.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{
		config: cfg,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(cfg.Leeway),
		),
	}
}

// AsTokenValidator adapts the service to middleware.TokenValidator.
func (s *JWTService) AsTokenValidator() middleware.TokenValidator {
	return tokenValidator{s}
}

type tokenValidator struct{ *JWTService }

func (v tokenValidator) ValidateToken(token string) (middleware.PrincipalGetter, error) {
	claims, err := v.JWTService.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateToken signs a token for p that expires after the configured TTL. Production
// tokens come from the marketplace backend; this serves the token command and tests.
func (s *JWTService) GenerateToken(p middleware.Principal) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: p.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
		},
	}
	if p.ClientID != uuid.Nil {
		claims.ClientID = p.ClientID.String()
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.config.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// tokenFailures maps parser errors to the message shown to the client, most specific
// first.
var tokenFailures = []struct {
	err     error
	message string
}{
	{jwt.ErrTokenSignatureInvalid, "invalid token signature"},
	{jwt.ErrTokenExpired, "token expired"},
	{jwt.ErrTokenMalformed, "malformed token"},
}

// ValidateToken parses and verifies a token and returns its claims.
func (s *JWTService) ValidateToken(token string) (*Claims, error) {
	if token == "" {
		return nil, errors.New("token string is empty")
	}

	claims := &Claims{}
	parsed, err := s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.config.Secret, nil
	})
	if err != nil {
		for _, f := range tokenFailures {
			if errors.Is(err, f.err) {
				return nil, fmt.Errorf("%s: %w", f.message, err)
			}
		}
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}
