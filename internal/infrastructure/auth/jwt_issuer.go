package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/maurinmaster/SIA-FKBA/internal/domain/staff"
	"github.com/maurinmaster/SIA-FKBA/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

type staffClaims struct {
	Username string `json:"username"`
	IsStaff  bool   `json:"staff"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewJWTIssuer validates settings and builds the issuer.
func NewJWTIssuer(settings *config.AuthSettings) (*JWTIssuer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &JWTIssuer{
		secret: []byte(settings.JWTSecret),
		ttl:    settings.TokenTTL,
		issuer: settings.Issuer,
	}, nil
}

func (i *JWTIssuer) Issue(user *staff.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.ttl)
	claims := staffClaims{
		Username: user.Username,
		IsStaff:  user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies the signature, algorithm, issuer and expiry of token.
func (i *JWTIssuer) Parse(token string) (*staff.Claims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()}
	if i.issuer != "" {
		options = append(options, jwt.WithIssuer(i.issuer))
	}

	var claims staffClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, options...)
	if err != nil {
		return nil, errors.Join(staff.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, staff.ErrInvalidToken
	}

	return &staff.Claims{
		UserID:    claims.Subject,
		Username:  claims.Username,
		IsStaff:   claims.IsStaff,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
