// Package token issues and verifies the HS256 access tokens handed out on login.
package token

import (
	"errors"
	"time"

	"aggregat4/jwttoken/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Lifetime is how long an issued token stays valid.
const Lifetime = 20 * time.Minute

// Subject is the fixed subject claim of every issued token.
const Subject = "Sai"

var ErrMissingSigningKey = errors.New("token: signing key is not configured")

// Claims is the claim set carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
}

type Option func(*options)

type options struct {
	now   func() time.Time
	newID func() string
}

// WithClock overrides the time source used for iat, nbf, exp and lifetime checks.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithIDGenerator overrides how the jti claim is produced.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}

func applyOptions(opts []Option) options {
	o := options{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Service signs new tokens. It is safe for concurrent use.
type Service struct {
	config domain.JwtConfiguration
	opts   options
}

func NewService(config domain.JwtConfiguration, opts ...Option) (*Service, error) {
	if len(config.Key) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Service{config: config, opts: applyOptions(opts)}, nil
}

// GenerateToken returns a freshly signed compact token valid for Lifetime.
func (s *Service) GenerateToken() (string, error) {
	if s == nil || len(s.config.Key) == 0 {
		return "", ErrMissingSigningKey
	}
	now := s.opts.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   Subject,
			ID:        s.opts.newID(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(Lifetime)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.config.Key)
}
