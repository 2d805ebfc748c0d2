package token

import (
	"errors"
	"fmt"

	"aggregat4/jwttoken/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token: malformed")
	ErrTokenSignature = errors.New("token: signature invalid")
	ErrTokenIssuer    = errors.New("token: issuer mismatch")
	ErrTokenExpired   = errors.New("token: outside validity window")
	ErrTokenInvalid   = errors.New("token: invalid")
)

// Verifier checks tokens produced by a Service configured with the same key and issuer.
type Verifier struct {
	config domain.JwtConfiguration
	parser *jwt.Parser
}

func NewVerifier(config domain.JwtConfiguration, opts ...Option) (*Verifier, error) {
	if len(config.Key) == 0 {
		return nil, ErrMissingSigningKey
	}
	o := applyOptions(opts)
	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(config.ClockSkew),
		jwt.WithTimeFunc(o.now),
	}
	if config.ValidateIssuer {
		parserOptions = append(parserOptions, jwt.WithIssuer(config.Issuer))
	}
	return &Verifier{config: config, parser: jwt.NewParser(parserOptions...)}, nil
}

// Parse verifies structure, signature, issuer and lifetime, in that order of precedence.
func (v *Verifier) Parse(raw string) (*Claims, error) {
	claims := &Claims{}
	t, err := v.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return v.config.Key, nil
	})
	if err != nil {
		return nil, classify(err)
	}
	if !t.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenSignature, err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return fmt.Errorf("%w: %w", ErrTokenIssuer, err)
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
}
